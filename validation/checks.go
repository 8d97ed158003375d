// Package validation provides structural analysis for place/transition
// graphs. The predicates here gate every synthesis rewrite: a rewritten
// graph is accepted only when it stays connected and keeps every node on
// some path from the start place to the end place.
package validation

import (
	"github.com/pflow-xyz/go-synthesis/petri"
)

// IsConnected reports whether every node is reachable from the start place
// when arcs are treated as undirected edges. Returns false when the start
// place is absent.
func IsConnected(g *petri.Graph) bool {
	if g.Node(petri.Start) == nil {
		return false
	}
	seen := undirectedReach(g, petri.Start)
	return len(seen) == len(g.Nodes())
}

// OnPathFromStartToEnd reports whether every node lies on some directed
// path from the start place to the end place: reachable from P0 by forward
// traversal and able to reach P_out by backward traversal. Returns false
// when either endpoint is missing.
func OnPathFromStartToEnd(g *petri.Graph) bool {
	if g.Node(petri.Start) == nil || g.Node(petri.End) == nil {
		return false
	}
	forward := directedReach(g, petri.Start, false)
	backward := directedReach(g, petri.End, true)
	for _, n := range g.Nodes() {
		if !forward[n.ID] || !backward[n.ID] {
			return false
		}
	}
	return true
}

// HasIllegalConnections reports whether the graph violates connection
// legality: a same-kind arc, a place with no arcs (other than the start
// place as a pure source or the end place as a pure sink), a transition
// missing an input or output, or a node off every start-to-end path.
func HasIllegalConnections(g *petri.Graph) bool {
	for _, a := range g.Arcs() {
		src, dst := g.Node(a.Source), g.Node(a.Target)
		if src == nil || dst == nil || src.Kind == dst.Kind {
			return true
		}
	}
	for _, n := range g.Nodes() {
		in := len(g.InputArcs(n.ID))
		out := len(g.OutputArcs(n.ID))
		switch n.Kind {
		case petri.PlaceNode:
			if n.ID == petri.Start || n.ID == petri.End {
				continue
			}
			if in == 0 && out == 0 {
				return true
			}
		case petri.TransitionNode:
			if in == 0 || out == 0 {
				return true
			}
		}
	}
	return !OnPathFromStartToEnd(g)
}

// Accept is the gate every rewrite must pass: connected and free of
// illegal connections.
func Accept(g *petri.Graph) bool {
	return IsConnected(g) && !HasIllegalConnections(g)
}

// undirectedReach runs BFS from the given node ignoring arc direction.
func undirectedReach(g *petri.Graph, from string) map[string]bool {
	seen := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, a := range g.OutputArcs(id) {
			if !seen[a.Target] {
				seen[a.Target] = true
				queue = append(queue, a.Target)
			}
		}
		for _, a := range g.InputArcs(id) {
			if !seen[a.Source] {
				seen[a.Source] = true
				queue = append(queue, a.Source)
			}
		}
	}
	return seen
}

// directedReach runs BFS from the given node following arcs forward, or
// backward when reversed is true.
func directedReach(g *petri.Graph, from string, reversed bool) map[string]bool {
	seen := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		var next []string
		if reversed {
			for _, a := range g.InputArcs(id) {
				next = append(next, a.Source)
			}
		} else {
			for _, a := range g.OutputArcs(id) {
				next = append(next, a.Target)
			}
		}
		for _, n := range next {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}
