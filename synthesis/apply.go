package synthesis

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/pflow-xyz/go-synthesis/petri"
	"github.com/pflow-xyz/go-synthesis/validation"
)

type pickFunc func(candidates []string) string

type coinFunc func() bool

type config struct {
	alloc Allocator
	rng   *rand.Rand
}

// Option configures Apply.
type Option func(*config)

// WithAllocator injects a fresh-id allocator.
func WithAllocator(a Allocator) Option {
	return func(c *config) { c.alloc = a }
}

// WithRand makes the non-deterministic choices in psiP and psiTD random
// draws from rng. Without it Apply is deterministic: the first candidate
// in sorted id order is chosen and no optional second input is added.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// Apply performs one rewrite. On success it returns a new accepted graph
// and a nil error; the input graph is never modified. On any failure the
// input graph is returned unchanged together with a sentinel error:
// precondition errors (wrong kind, missing nodes, no qualifying arcs) mean
// the transform never ran, ErrInvariantViolated means a structurally valid
// rewrite was discarded because the result failed the invariants.
func Apply(g *petri.Graph, req Request, opts ...Option) (*petri.Graph, error) {
	cfg := &config{alloc: DefaultAllocator}
	for _, opt := range opts {
		opt(cfg)
	}

	if !req.Rule.Known() {
		return g, fmt.Errorf("%w: %q", ErrUnknownRule, req.Rule)
	}
	target := g.Node(req.TargetID)
	if target == nil {
		return g, fmt.Errorf("%w: %q", ErrTargetNotFound, req.TargetID)
	}
	if target.Kind != req.Rule.TargetKind() {
		return g, fmt.Errorf("%w: %s targets a %s, got %s %q",
			ErrWrongTargetKind, req.Rule, req.Rule.TargetKind(), target.Kind, target.ID)
	}
	if req.EndNodeID != "" {
		if !req.Rule.AcceptsEndNode() {
			return g, fmt.Errorf("%w: %s takes no end node", ErrWrongEndNodeKind, req.Rule)
		}
		end := g.Node(req.EndNodeID)
		if end == nil {
			return g, fmt.Errorf("%w: %q", ErrEndNodeNotFound, req.EndNodeID)
		}
		if end.Kind != req.Rule.EndNodeKind() {
			return g, fmt.Errorf("%w: %s splices into a %s, got %s %q",
				ErrWrongEndNodeKind, req.Rule, req.Rule.EndNodeKind(), end.Kind, end.ID)
		}
	}

	pick := firstCandidate
	coin := func() bool { return false }
	if cfg.rng != nil {
		rng := cfg.rng
		pick = func(candidates []string) string {
			return candidates[rng.Intn(len(candidates))]
		}
		coin = func() bool { return rng.Intn(2) == 0 }
	}

	out := g.Clone()
	var err error
	switch req.Rule {
	case Abstraction:
		err = applyAbstraction(out, req.TargetID, cfg.alloc)
	case LinearTransition:
		err = applyLinearTransition(out, req.TargetID, req.EndNodeID, cfg.alloc)
	case LinearPlace:
		err = applyLinearPlace(out, req.TargetID, cfg.alloc, pick)
	case DualAbstraction:
		err = applyDualAbstraction(out, req.TargetID, req.EndNodeID, cfg.alloc)
	case LinearTransitionDependency:
		err = applyDependency(out, req.TargetID, cfg.alloc, pick, coin)
	}
	if err != nil {
		return g, fmt.Errorf("%s on %q: %w", req.Rule, req.TargetID, err)
	}

	if !validation.Accept(out) {
		return g, fmt.Errorf("%s on %q: %w", req.Rule, req.TargetID, ErrInvariantViolated)
	}
	return out, nil
}

// firstCandidate is the deterministic choice: lowest id wins.
func firstCandidate(candidates []string) string {
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)
	return sorted[0]
}
