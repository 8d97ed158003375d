package validation

import (
	"fmt"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// Result contains the outcome of a full validation pass.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
	Summary  Summary `json:"summary"`
}

// Issue represents a single validation finding.
type Issue struct {
	Severity   string   `json:"severity"` // "error" or "warning"
	Category   string   `json:"category"` // "endpoints", "arcs", "isolation", "connectivity", "coverage"
	Message    string   `json:"message"`
	Location   []string `json:"location,omitempty"` // affected node ids
	Suggestion string   `json:"suggestion,omitempty"`
}

// Summary provides an overview of the validated graph.
type Summary struct {
	Places      int `json:"places"`
	Transitions int `json:"transitions"`
	Arcs        int `json:"arcs"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
}

// Validator accumulates issues while checking a graph.
type Validator struct {
	graph  *petri.Graph
	result *Result
}

// NewValidator creates a validator for a graph.
func NewValidator(g *petri.Graph) *Validator {
	return &Validator{
		graph: g,
		result: &Result{
			Valid: true,
			Summary: Summary{
				Places:      g.PlaceCount(),
				Transitions: g.TransitionCount(),
				Arcs:        len(g.Arcs()),
			},
		},
	}
}

// Validate runs all checks and returns the report. A graph may fail
// validation and still be displayed for editing; only rule application and
// path enumeration require a valid graph.
func (v *Validator) Validate() *Result {
	v.checkEndpoints()
	v.checkArcs()
	v.checkIsolation()
	v.checkConnectivity()
	v.checkCoverage()

	v.result.Valid = len(v.result.Errors) == 0
	v.result.Summary.Errors = len(v.result.Errors)
	v.result.Summary.Warnings = len(v.result.Warnings)
	return v.result
}

// Check is a convenience wrapper running a full validation pass.
func Check(g *petri.Graph) *Result {
	return NewValidator(g).Validate()
}

func (v *Validator) checkEndpoints() {
	if v.graph.Node(petri.Start) == nil {
		v.addError("endpoints", fmt.Sprintf("Start place %q is missing", petri.Start), nil,
			"Add the start place before applying rules or enumerating paths")
	}
	if v.graph.Node(petri.End) == nil {
		v.addError("endpoints", fmt.Sprintf("End place %q is missing", petri.End), nil,
			"Add the end place before applying rules or enumerating paths")
	}
	if start := v.graph.Node(petri.Start); start != nil && start.Tokens == 0 {
		v.addWarning("endpoints", fmt.Sprintf("Start place %q holds no token", petri.Start), []string{petri.Start},
			"The illustrative animation starts from a marked start place")
	}
}

func (v *Validator) checkArcs() {
	for _, a := range v.graph.Arcs() {
		src, dst := v.graph.Node(a.Source), v.graph.Node(a.Target)
		if src == nil || dst == nil {
			v.addError("arcs", fmt.Sprintf("Arc %s -> %s references a missing node", a.Source, a.Target),
				[]string{a.Source, a.Target}, "Remove the dangling arc")
			continue
		}
		if src.Kind == dst.Kind {
			v.addError("arcs", fmt.Sprintf("Arc %s -> %s connects two %ss", a.Source, a.Target, src.Kind),
				[]string{a.Source, a.Target}, "Arcs must alternate between places and transitions")
		}
	}
}

func (v *Validator) checkIsolation() {
	for _, n := range v.graph.Nodes() {
		in := len(v.graph.InputArcs(n.ID))
		out := len(v.graph.OutputArcs(n.ID))
		switch n.Kind {
		case petri.PlaceNode:
			if n.ID == petri.Start || n.ID == petri.End {
				continue
			}
			if in == 0 && out == 0 {
				v.addError("isolation", fmt.Sprintf("Place %q has no arcs", n.ID),
					[]string{n.ID}, "Connect the place or remove it")
			}
		case petri.TransitionNode:
			if in == 0 {
				v.addError("isolation", fmt.Sprintf("Transition %q has no incoming arc", n.ID),
					[]string{n.ID}, "Every transition needs at least one input place")
			}
			if out == 0 {
				v.addError("isolation", fmt.Sprintf("Transition %q has no outgoing arc", n.ID),
					[]string{n.ID}, "Every transition needs at least one output place")
			}
		}
	}
}

func (v *Validator) checkConnectivity() {
	if v.graph.Node(petri.Start) == nil {
		return // already reported by checkEndpoints
	}
	if !IsConnected(v.graph) {
		v.addError("connectivity", "Graph is not connected", nil,
			"Every node must be reachable from the start place, ignoring arc direction")
	}
}

func (v *Validator) checkCoverage() {
	if v.graph.Node(petri.Start) == nil || v.graph.Node(petri.End) == nil {
		return
	}
	if !OnPathFromStartToEnd(v.graph) {
		v.addError("coverage", "Some nodes are not on any start-to-end path", nil,
			"Every node must be reachable from the start place and able to reach the end place")
	}
}

func (v *Validator) addError(category, message string, location []string, suggestion string) {
	v.result.Errors = append(v.result.Errors, Issue{
		Severity:   "error",
		Category:   category,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}

func (v *Validator) addWarning(category, message string, location []string, suggestion string) {
	v.result.Warnings = append(v.result.Warnings, Issue{
		Severity:   "warning",
		Category:   category,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}
