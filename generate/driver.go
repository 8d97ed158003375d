// Package generate drives randomized application of the synthesis rules:
// single random rewrites with a bounded retry budget, and weighted batch
// generation that grows a net by many rewrites in one call.
package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/petri"
	"github.com/pflow-xyz/go-synthesis/synthesis"
)

// DefaultRetryBudget bounds the (target, end node) attempts for one random
// rule application.
const DefaultRetryBudget = 15

// ErrBudgetExhausted is returned when no valid application was found
// within the retry budget. It is distinct from the structural precondition
// errors in the synthesis package, so a host can suggest manual rule
// application instead of random.
var ErrBudgetExhausted = errors.New("no valid application found")

// Driver applies rules at random targets, retrying under invariant failure.
type Driver struct {
	rng    *rand.Rand
	logger *zap.Logger
	budget int
}

// Option configures a Driver.
type Option func(*Driver)

// WithSeed makes the driver's random choices reproducible.
func WithSeed(seed int64) Option {
	return func(d *Driver) { d.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithRetryBudget overrides the per-application attempt budget.
func WithRetryBudget(budget int) Option {
	return func(d *Driver) { d.budget = budget }
}

// New creates a Driver seeded from the clock unless WithSeed is given.
func New(opts ...Option) *Driver {
	d := &Driver{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: zap.NewNop(),
		budget: DefaultRetryBudget,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ApplyRandom selects one of the rules uniformly at random and attempts up
// to the retry budget of random legal targets (with a coin-flip choice of
// end node for rules that accept one) until a rewrite passes the
// invariants. On success it returns the new graph and the request that
// produced it; when the budget is exhausted the input graph is returned
// unchanged with ErrBudgetExhausted.
func (d *Driver) ApplyRandom(g *petri.Graph) (*petri.Graph, synthesis.Request, error) {
	rules := synthesis.AllRules()
	rule := rules[d.rng.Intn(len(rules))]
	return d.applyRule(g, rule)
}

func (d *Driver) applyRule(g *petri.Graph, rule synthesis.Rule) (*petri.Graph, synthesis.Request, error) {
	for attempt := 0; attempt < d.budget; attempt++ {
		req, ok := d.randomRequest(g, rule)
		if !ok {
			continue
		}
		out, err := synthesis.Apply(g, req, synthesis.WithRand(d.rng))
		if err != nil {
			d.logger.Debug("rewrite attempt rejected",
				zap.String("rule", string(rule)),
				zap.String("target", req.TargetID),
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			continue
		}
		d.logger.Debug("rewrite applied",
			zap.String("rule", string(rule)),
			zap.String("target", req.TargetID),
			zap.String("end_node", req.EndNodeID))
		return out, req, nil
	}
	return g, synthesis.Request{}, fmt.Errorf("%s: %w", rule, ErrBudgetExhausted)
}

// randomRequest draws a random legal target for the rule, and for rules
// accepting an end node, flips a coin on whether to splice into a random
// compatible node.
func (d *Driver) randomRequest(g *petri.Graph, rule synthesis.Rule) (synthesis.Request, bool) {
	candidates := nodesOfKind(g, rule.TargetKind())
	if len(candidates) == 0 {
		return synthesis.Request{}, false
	}
	req := synthesis.Request{
		Rule:     rule,
		TargetID: candidates[d.rng.Intn(len(candidates))].ID,
	}
	if rule.AcceptsEndNode() && d.rng.Intn(2) == 0 {
		pool := nodesOfKind(g, rule.EndNodeKind())
		if len(pool) > 0 {
			req.EndNodeID = pool[d.rng.Intn(len(pool))].ID
		}
	}
	return req, true
}

func nodesOfKind(g *petri.Graph, kind petri.NodeKind) []*petri.Node {
	if kind == petri.PlaceNode {
		return g.Places()
	}
	return g.Transitions()
}
