package generate

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/petri"
	"github.com/pflow-xyz/go-synthesis/synthesis"
)

// BatchOptions controls a batch generation run.
type BatchOptions struct {
	// Count is the number of rewrites to apply.
	Count int

	// UseRandom draws each rule uniformly from the full rule set,
	// ignoring Rules and Weights.
	UseRandom bool

	// Rules restricts the draw to a subset; empty means all rules.
	Rules []synthesis.Rule

	// Weights maps rules to percentages in [0, 100]. Rules in the
	// selection without an explicit weight share the remaining mass
	// evenly. Weights summing over 100 are scaled down.
	Weights map[synthesis.Rule]float64
}

// BatchResult reports the outcome of a batch run.
type BatchResult struct {
	Graph    *petri.Graph
	Applied  int
	Attempts int

	// Warning is set when fewer than Count rewrites were applied
	// before the attempt budget ran out.
	Warning string
}

// Batch grows the graph by Count rewrites, drawing a rule per attempt and
// applying it at a random target. The total attempt budget is 3*Count;
// falling short is reported through BatchResult.Warning, not an error, and
// the partially grown graph is still returned.
func (d *Driver) Batch(g *petri.Graph, opts BatchOptions) (BatchResult, error) {
	rules := opts.Rules
	if opts.UseRandom || len(rules) == 0 {
		rules = synthesis.AllRules()
	}
	for _, rule := range rules {
		if !rule.Known() {
			return BatchResult{Graph: g}, fmt.Errorf("%s: %w", rule, synthesis.ErrUnknownRule)
		}
	}
	ranges := cumulative(rules, opts.Weights)

	res := BatchResult{Graph: g}
	maxAttempts := 3 * opts.Count
	for res.Applied < opts.Count && res.Attempts < maxAttempts {
		res.Attempts++
		rule := d.draw(ranges)
		req, ok := d.randomRequest(res.Graph, rule)
		if !ok {
			continue
		}
		out, err := synthesis.Apply(res.Graph, req, synthesis.WithRand(d.rng))
		if err != nil {
			continue
		}
		res.Graph = out
		res.Applied++
	}
	if res.Applied < opts.Count {
		res.Warning = fmt.Sprintf("applied %d of %d requested rewrites", res.Applied, opts.Count)
		d.logger.Warn("batch fell short",
			zap.Int("applied", res.Applied),
			zap.Int("requested", opts.Count),
			zap.Int("attempts", res.Attempts))
	}
	return res, nil
}

// ruleRange is one slot of the cumulative distribution over [0, 100).
type ruleRange struct {
	rule  synthesis.Rule
	upper float64
}

// cumulative builds the draw distribution: explicit weights are scaled so
// their sum stays within 100, then the leftover mass is split evenly among
// the unweighted rules. When every rule carries a weight the weights are
// renormalized to fill the whole range.
func cumulative(rules []synthesis.Rule, weights map[synthesis.Rule]float64) []ruleRange {
	sorted := make([]synthesis.Rule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var explicit float64
	unweighted := 0
	for _, rule := range sorted {
		if w, ok := weights[rule]; ok && w > 0 {
			explicit += w
		} else {
			unweighted++
		}
	}
	scale := 1.0
	if explicit > 100 || (unweighted == 0 && explicit > 0) {
		scale = 100 / explicit
	}
	share := 0.0
	if unweighted > 0 {
		share = (100 - explicit*scale) / float64(unweighted)
	}

	ranges := make([]ruleRange, 0, len(sorted))
	var total float64
	for _, rule := range sorted {
		if w, ok := weights[rule]; ok && w > 0 {
			total += w * scale
		} else {
			total += share
		}
		ranges = append(ranges, ruleRange{rule: rule, upper: total})
	}
	return ranges
}

// draw maps a single uniform sample in [0, 100) onto the cumulative ranges.
func (d *Driver) draw(ranges []ruleRange) synthesis.Rule {
	x := d.rng.Float64() * 100
	for _, r := range ranges {
		if x < r.upper {
			return r.rule
		}
	}
	return ranges[len(ranges)-1].rule
}
