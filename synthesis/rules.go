// Package synthesis implements the structure-preserving rewrite rules that
// grow a workflow net: abstraction (psiA), linear transition (psiT), linear
// place (psiP), dual abstraction (psiD), and the linear-transition
// dependency variant (psiTD).
//
// Rules are pure structural transforms with no validation of their own.
// Apply is the single choke point: it checks preconditions, clones the
// input, runs the transform on the clone, and gates the result with the
// structural invariants. The input graph is never modified; on any failure
// it is returned unchanged alongside a sentinel error.
package synthesis

import (
	"github.com/pflow-xyz/go-synthesis/petri"
)

// Rule names a rewrite rule.
type Rule string

const (
	// Abstraction (psiA) inserts a place and a transition between a
	// transition and its output places.
	Abstraction Rule = "psiA"

	// LinearTransition (psiT) hangs a new transition off a place, feeding
	// either an existing place or a fresh one.
	LinearTransition Rule = "psiT"

	// LinearPlace (psiP) hangs a new place off a transition, feeding one
	// other existing transition.
	LinearPlace Rule = "psiP"

	// DualAbstraction (psiD) inserts a transition and a place between a
	// transition's input places and a final target.
	DualAbstraction Rule = "psiD"

	// LinearTransitionDependency (psiTD) hangs a new transition off a
	// place, feeding another place and optionally consuming from a second
	// input place.
	LinearTransitionDependency Rule = "psiTD"
)

// AllRules returns every rule in a stable order.
func AllRules() []Rule {
	return []Rule{
		Abstraction,
		LinearTransition,
		LinearPlace,
		DualAbstraction,
		LinearTransitionDependency,
	}
}

// Known reports whether r names a rule.
func (r Rule) Known() bool {
	for _, rule := range AllRules() {
		if rule == r {
			return true
		}
	}
	return false
}

// TargetKind returns the node kind a rule rewrites.
func (r Rule) TargetKind() petri.NodeKind {
	switch r {
	case LinearTransition, LinearTransitionDependency:
		return petri.PlaceNode
	default:
		return petri.TransitionNode
	}
}

// AcceptsEndNode reports whether the rule can splice into an existing node
// instead of creating a fresh one.
func (r Rule) AcceptsEndNode() bool {
	return r == LinearTransition || r == DualAbstraction
}

// EndNodeKind returns the kind an end node must have for rules that accept
// one: a place for linear transition, a transition for dual abstraction.
func (r Rule) EndNodeKind() petri.NodeKind {
	if r == LinearTransition {
		return petri.PlaceNode
	}
	return petri.TransitionNode
}

// Request describes one rewrite: the rule, its target, and for rules that
// accept one, an existing node to splice into.
type Request struct {
	Rule      Rule
	TargetID  string
	EndNodeID string
}

// applyAbstraction rewires target's output places O through a fresh place
// and transition: target -> p -> t -> O.
func applyAbstraction(g *petri.Graph, target string, alloc Allocator) error {
	outputs := placeNeighbors(g.OutputArcs(target), false, g)
	if len(outputs) == 0 {
		return ErrNoQualifyingArcs
	}
	p := alloc.Next(g, petri.PlaceNode)
	if _, err := g.AddPlace(p, 0); err != nil {
		return err
	}
	t := alloc.Next(g, petri.TransitionNode)
	if _, err := g.AddTransition(t); err != nil {
		return err
	}
	for _, o := range outputs {
		if err := g.RemoveArc(target, o); err != nil {
			return err
		}
		if _, err := g.AddArc(t, o); err != nil {
			return err
		}
	}
	if _, err := g.AddArc(target, p); err != nil {
		return err
	}
	_, err := g.AddArc(p, t)
	return err
}

// applyLinearTransition adds a transition consuming from target and feeding
// endNode when given, else a fresh place.
func applyLinearTransition(g *petri.Graph, target, endNode string, alloc Allocator) error {
	t := alloc.Next(g, petri.TransitionNode)
	if _, err := g.AddTransition(t); err != nil {
		return err
	}
	if _, err := g.AddArc(target, t); err != nil {
		return err
	}
	out := endNode
	if out == "" {
		out = alloc.Next(g, petri.PlaceNode)
		if _, err := g.AddPlace(out, 0); err != nil {
			return err
		}
	}
	_, err := g.AddArc(t, out)
	return err
}

// applyLinearPlace adds a place fed by target and feeding one other
// transition, chosen by pick.
func applyLinearPlace(g *petri.Graph, target string, alloc Allocator, pick pickFunc) error {
	others := otherIDs(g.Transitions(), target)
	if len(others) == 0 {
		return ErrTooFewTransitions
	}
	p := alloc.Next(g, petri.PlaceNode)
	if _, err := g.AddPlace(p, 0); err != nil {
		return err
	}
	if _, err := g.AddArc(target, p); err != nil {
		return err
	}
	_, err := g.AddArc(p, pick(others))
	return err
}

// applyDualAbstraction rewires target's input places I through a
// transition and a fresh place: I -> t -> p -> target. The transition t is
// endNode when given (spliced into, not created) and fresh otherwise.
func applyDualAbstraction(g *petri.Graph, target, endNode string, alloc Allocator) error {
	inputs := placeNeighbors(g.InputArcs(target), true, g)
	if len(inputs) == 0 {
		return ErrNoQualifyingArcs
	}
	t := endNode
	if t == "" {
		t = alloc.Next(g, petri.TransitionNode)
		if _, err := g.AddTransition(t); err != nil {
			return err
		}
	}
	for _, i := range inputs {
		if err := g.RemoveArc(i, target); err != nil {
			return err
		}
		if !g.HasArc(i, t) {
			if _, err := g.AddArc(i, t); err != nil {
				return err
			}
		}
	}
	p := alloc.Next(g, petri.PlaceNode)
	if _, err := g.AddPlace(p, 0); err != nil {
		return err
	}
	if _, err := g.AddArc(t, p); err != nil {
		return err
	}
	_, err := g.AddArc(p, target)
	return err
}

// applyDependency adds a transition consuming from target and feeding
// another place; coin decides whether a second input place is wired in.
func applyDependency(g *petri.Graph, target string, alloc Allocator, pick pickFunc, coin coinFunc) error {
	others := otherIDs(g.Places(), target)
	if len(others) == 0 {
		return ErrTooFewPlaces
	}
	t := alloc.Next(g, petri.TransitionNode)
	if _, err := g.AddTransition(t); err != nil {
		return err
	}
	if _, err := g.AddArc(target, t); err != nil {
		return err
	}
	out := pick(others)
	if _, err := g.AddArc(t, out); err != nil {
		return err
	}
	if coin() {
		second := pick(others)
		if !g.HasArc(second, t) && second != target {
			if _, err := g.AddArc(second, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// placeNeighbors collects the place endpoints of the given arcs: sources
// when incoming is true, targets otherwise.
func placeNeighbors(arcs []*petri.Arc, incoming bool, g *petri.Graph) []string {
	out := make([]string, 0, len(arcs))
	for _, a := range arcs {
		id := a.Target
		if incoming {
			id = a.Source
		}
		if n := g.Node(id); n != nil && n.Kind == petri.PlaceNode {
			out = append(out, id)
		}
	}
	return out
}

// otherIDs returns the ids of nodes excluding the given one, preserving
// the sorted order of the input.
func otherIDs(nodes []*petri.Node, exclude string) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.ID != exclude {
			out = append(out, n.ID)
		}
	}
	return out
}
