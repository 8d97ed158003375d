package validation

import (
	"testing"

	"github.com/pflow-xyz/go-synthesis/petri"
)

func TestIsConnected(t *testing.T) {
	g := petri.Workflow()
	if !IsConnected(g) {
		t.Error("Seed net should be connected")
	}

	// Scenario D: a disconnected extra place
	g.AddPlace("P9", 0)
	if IsConnected(g) {
		t.Error("Graph with isolated place should not be connected")
	}
}

func TestIsConnectedMissingStart(t *testing.T) {
	g := petri.NewGraph()
	g.AddPlace("P_out", 0)
	if IsConnected(g) {
		t.Error("Missing start place should report false, not panic")
	}
}

func TestOnPathFromStartToEnd(t *testing.T) {
	g := petri.Workflow()
	if !OnPathFromStartToEnd(g) {
		t.Error("Seed net nodes are all on the P0 -> P_out path")
	}

	// A transition reachable from P0 but unable to reach P_out.
	g.AddTransition("T1")
	g.AddArc(petri.Start, "T1")
	if OnPathFromStartToEnd(g) {
		t.Error("Dead-end transition should fail coverage")
	}
}

func TestOnPathMissingEndpoints(t *testing.T) {
	g := petri.NewGraph()
	g.AddPlace(petri.Start, 1)
	if OnPathFromStartToEnd(g) {
		t.Error("Missing end place should report false")
	}
}

func TestHasIllegalConnections(t *testing.T) {
	t.Run("seed net is legal", func(t *testing.T) {
		if HasIllegalConnections(petri.Workflow()) {
			t.Error("Seed net should have no illegal connections")
		}
	})

	t.Run("isolated place", func(t *testing.T) {
		g := petri.Workflow()
		g.AddPlace("P9", 0)
		if !HasIllegalConnections(g) {
			t.Error("Isolated place should be illegal")
		}
	})

	t.Run("transition without output", func(t *testing.T) {
		g := petri.Workflow()
		g.AddTransition("T1")
		g.AddArc(petri.Start, "T1")
		if !HasIllegalConnections(g) {
			t.Error("Transition without output should be illegal")
		}
	})

	t.Run("endpoints may be one-sided", func(t *testing.T) {
		// P0 is source-only and P_out sink-only in the seed net.
		if HasIllegalConnections(petri.Workflow()) {
			t.Error("One-sided endpoints are the permitted configuration")
		}
	})
}

func TestAccept(t *testing.T) {
	if !Accept(petri.Workflow()) {
		t.Error("Seed net should be accepted")
	}

	g := petri.Workflow()
	g.AddPlace("P9", 0)
	if Accept(g) {
		t.Error("Graph with isolated place should be rejected")
	}
}

func TestCheckReport(t *testing.T) {
	g := petri.Workflow()
	g.AddPlace("P9", 0)

	result := Check(g)
	if result.Valid {
		t.Error("Report should be invalid")
	}
	if result.Summary.Places != 3 || result.Summary.Transitions != 1 {
		t.Errorf("Summary mismatch: %+v", result.Summary)
	}

	found := false
	for _, issue := range result.Errors {
		if issue.Category == "isolation" {
			found = true
		}
	}
	if !found {
		t.Error("Report should contain an isolation error for P9")
	}
}

func TestCheckMissingEndpoints(t *testing.T) {
	g := petri.NewGraph()
	g.AddPlace("A", 0)

	result := Check(g)
	if result.Valid {
		t.Error("Graph without P0/P_out should be invalid")
	}
	endpointErrors := 0
	for _, issue := range result.Errors {
		if issue.Category == "endpoints" {
			endpointErrors++
		}
	}
	if endpointErrors != 2 {
		t.Errorf("Expected 2 endpoint errors, got %d", endpointErrors)
	}
}
