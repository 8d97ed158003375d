package petri

import (
	"errors"
	"testing"
)

func TestWorkflowSeed(t *testing.T) {
	g := Workflow()

	if g.PlaceCount() != 2 {
		t.Errorf("Expected 2 places, got %d", g.PlaceCount())
	}
	if g.TransitionCount() != 1 {
		t.Errorf("Expected 1 transition, got %d", g.TransitionCount())
	}
	if !g.HasArc(Start, "T0") || !g.HasArc("T0", End) {
		t.Error("Seed net should connect P0 -> T0 -> P_out")
	}
	if g.Node(Start).Tokens != 1 {
		t.Errorf("P0 should hold 1 token, got %d", g.Node(Start).Tokens)
	}
}

func TestAddNodeErrors(t *testing.T) {
	g := NewGraph()

	if _, err := g.AddPlace("", 0); !errors.Is(err, ErrEmptyID) {
		t.Errorf("Expected ErrEmptyID, got %v", err)
	}
	if _, err := g.AddPlace("P0", -1); !errors.Is(err, ErrNegativeTokens) {
		t.Errorf("Expected ErrNegativeTokens, got %v", err)
	}
	if _, err := g.AddPlace("P0", 1); err != nil {
		t.Fatalf("AddPlace failed: %v", err)
	}
	if _, err := g.AddTransition("P0"); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}
}

func TestAddArcLegality(t *testing.T) {
	g := NewGraph()
	g.AddPlace("P0", 1)
	g.AddPlace("P1", 0)
	g.AddTransition("T0")

	if _, err := g.AddArc("P0", "P1"); !errors.Is(err, ErrSameKindArc) {
		t.Errorf("Place to place should fail with ErrSameKindArc, got %v", err)
	}
	if _, err := g.AddArc("P0", "missing"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
	if _, err := g.AddArc("P0", "T0"); err != nil {
		t.Fatalf("AddArc failed: %v", err)
	}
	if _, err := g.AddArc("P0", "T0"); !errors.Is(err, ErrDuplicateArc) {
		t.Errorf("Expected ErrDuplicateArc, got %v", err)
	}
}

func TestRemoveArc(t *testing.T) {
	g := Workflow()

	if err := g.RemoveArc("T0", End); err != nil {
		t.Fatalf("RemoveArc failed: %v", err)
	}
	if g.HasArc("T0", End) {
		t.Error("Arc should be gone")
	}
	if len(g.OutputArcs("T0")) != 0 {
		t.Error("Output index should be updated")
	}
	if len(g.InputArcs(End)) != 0 {
		t.Error("Input index should be updated")
	}
	if err := g.RemoveArc("T0", End); !errors.Is(err, ErrArcNotFound) {
		t.Errorf("Expected ErrArcNotFound, got %v", err)
	}
}

func TestAdjacencyQueries(t *testing.T) {
	g, err := NewBuilder().
		Place("P0", 1).
		Place("P_out", 0).
		Place("P1", 0).
		Transition("T0").
		Arc("P0", "T0").
		Arc("P1", "T0").
		Arc("T0", "P_out").
		Done()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if len(g.InputArcs("T0")) != 2 {
		t.Errorf("Expected 2 input arcs, got %d", len(g.InputArcs("T0")))
	}
	if len(g.OutputArcs("T0")) != 1 {
		t.Errorf("Expected 1 output arc, got %d", len(g.OutputArcs("T0")))
	}

	places := g.Places()
	if len(places) != 3 || places[0].ID != "P0" || places[2].ID != "P_out" {
		t.Errorf("Places should be sorted by id, got %v", ids(places))
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := Workflow()
	c := g.Clone()

	if !g.Equal(c) {
		t.Fatal("Clone should be structurally equal")
	}

	c.AddPlace("P1", 0)
	c.RemoveArc("T0", End)

	if g.Node("P1") != nil {
		t.Error("Adding to clone should not affect original")
	}
	if !g.HasArc("T0", End) {
		t.Error("Removing from clone should not affect original")
	}
}

func TestEqual(t *testing.T) {
	a := Workflow()
	b := Workflow()

	if !a.Equal(b) {
		t.Error("Identical graphs should be equal")
	}

	b.AddTransition("T1")
	if a.Equal(b) {
		t.Error("Extra node should break equality")
	}

	c := Workflow()
	c.Node(Start).Tokens = 2
	if a.Equal(c) {
		t.Error("Different token counts should break equality")
	}
}

func TestChainBuilder(t *testing.T) {
	g, err := NewBuilder().Chain(1, "P0", "T0", "P1", "T1", "P_out").Done()
	if err != nil {
		t.Fatalf("Chain failed: %v", err)
	}
	if g.PlaceCount() != 3 || g.TransitionCount() != 2 {
		t.Errorf("Expected 3 places and 2 transitions, got %d and %d",
			g.PlaceCount(), g.TransitionCount())
	}
	for _, want := range [][2]string{{"P0", "T0"}, {"T0", "P1"}, {"P1", "T1"}, {"T1", "P_out"}} {
		if !g.HasArc(want[0], want[1]) {
			t.Errorf("Missing arc %s -> %s", want[0], want[1])
		}
	}

	if _, err := NewBuilder().Chain(1, "P0", "T0").Done(); !errors.Is(err, ErrBadChain) {
		t.Errorf("Even-length chain should fail, got %v", err)
	}
}

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
