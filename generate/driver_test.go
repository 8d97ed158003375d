package generate

import (
	"errors"
	"math"
	"testing"

	"github.com/pflow-xyz/go-synthesis/petri"
	"github.com/pflow-xyz/go-synthesis/synthesis"
	"github.com/pflow-xyz/go-synthesis/validation"
)

func TestApplyRandomGrowsNet(t *testing.T) {
	d := New(WithSeed(7))
	g := petri.Workflow()
	grown := 0
	for i := 0; i < 25; i++ {
		out, req, err := d.ApplyRandom(g)
		if err != nil {
			if !errors.Is(err, ErrBudgetExhausted) {
				t.Fatalf("ApplyRandom: %v", err)
			}
			if out != g {
				t.Fatal("exhausted budget must return the input graph")
			}
			continue
		}
		if !req.Rule.Known() {
			t.Fatalf("request reports unknown rule %q", req.Rule)
		}
		if !validation.Accept(out) {
			t.Fatalf("accepted rewrite %s violates invariants", req.Rule)
		}
		if len(out.Nodes()) <= len(g.Nodes()) {
			t.Fatalf("rewrite %s did not grow the net", req.Rule)
		}
		g = out
		grown++
	}
	if grown == 0 {
		t.Fatal("no rewrite applied in 25 tries")
	}
}

func TestApplyRuleExhaustsBudget(t *testing.T) {
	// Linear-Place needs a second transition; the seed net has one.
	d := New(WithSeed(1), WithRetryBudget(5))
	g := petri.Workflow()
	out, _, err := d.applyRule(g, synthesis.LinearPlace)
	if !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("err = %v, want ErrBudgetExhausted", err)
	}
	if out != g {
		t.Fatal("failed application must return the input graph")
	}
}

func TestBatch(t *testing.T) {
	d := New(WithSeed(42))
	res, err := d.Batch(petri.Workflow(), BatchOptions{Count: 10, UseRandom: true})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if res.Applied > 10 || res.Attempts > 30 {
		t.Fatalf("applied %d in %d attempts, want at most 10 in 30", res.Applied, res.Attempts)
	}
	if (res.Warning != "") != (res.Applied < 10) {
		t.Fatalf("warning %q inconsistent with applied %d", res.Warning, res.Applied)
	}
	if !validation.Accept(res.Graph) {
		t.Fatal("batch result violates invariants")
	}
	if res.Applied > 0 && len(res.Graph.Nodes()) <= 3 {
		t.Fatal("batch applied rewrites but the net did not grow")
	}
}

func TestBatchRejectsUnknownRule(t *testing.T) {
	d := New(WithSeed(1))
	_, err := d.Batch(petri.Workflow(), BatchOptions{Count: 1, Rules: []synthesis.Rule{"psiX"}})
	if !errors.Is(err, synthesis.ErrUnknownRule) {
		t.Fatalf("err = %v, want ErrUnknownRule", err)
	}
}

func TestCumulativeSharesResidualMass(t *testing.T) {
	ranges := cumulative(synthesis.AllRules(), map[synthesis.Rule]float64{
		synthesis.Abstraction: 50,
	})
	// Rules sort as psiA, psiD, psiP, psiT, psiTD; the four unweighted
	// ones split the remaining 50 evenly.
	want := []float64{50, 62.5, 75, 87.5, 100}
	for i, r := range ranges {
		if math.Abs(r.upper-want[i]) > 1e-9 {
			t.Fatalf("range %d (%s) upper = %v, want %v", i, r.rule, r.upper, want[i])
		}
	}
}

func TestCumulativeScalesOverweight(t *testing.T) {
	rules := []synthesis.Rule{synthesis.Abstraction, synthesis.DualAbstraction}
	ranges := cumulative(rules, map[synthesis.Rule]float64{
		synthesis.Abstraction:     150,
		synthesis.DualAbstraction: 150,
	})
	if math.Abs(ranges[0].upper-50) > 1e-9 || math.Abs(ranges[1].upper-100) > 1e-9 {
		t.Fatalf("uppers = %v, %v, want 50, 100", ranges[0].upper, ranges[1].upper)
	}
}

func TestCumulativeRenormalizesFullWeights(t *testing.T) {
	weights := make(map[synthesis.Rule]float64)
	for _, rule := range synthesis.AllRules() {
		weights[rule] = 10
	}
	ranges := cumulative(synthesis.AllRules(), weights)
	if math.Abs(ranges[0].upper-20) > 1e-9 {
		t.Fatalf("first upper = %v, want 20", ranges[0].upper)
	}
	if math.Abs(ranges[len(ranges)-1].upper-100) > 1e-9 {
		t.Fatalf("last upper = %v, want 100", ranges[len(ranges)-1].upper)
	}
}

func TestDrawFrequency(t *testing.T) {
	d := New(WithSeed(99))
	ranges := cumulative(synthesis.AllRules(), map[synthesis.Rule]float64{
		synthesis.Abstraction: 80,
	})
	const n = 20000
	hits := 0
	for i := 0; i < n; i++ {
		if d.draw(ranges) == synthesis.Abstraction {
			hits++
		}
	}
	freq := float64(hits) / n
	if math.Abs(freq-0.8) > 0.02 {
		t.Fatalf("psiA frequency = %v, want about 0.8", freq)
	}
}
