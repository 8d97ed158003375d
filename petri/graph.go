// Package petri implements the bipartite place/transition graph that the
// synthesis rules rewrite. A graph consists of Places (token holders),
// Transitions (events), and directed Arcs that always connect a place to a
// transition or a transition to a place.
//
// Graphs are value-like: every rewrite produces a fresh graph via Clone and
// never edits its input in place. The only mutators are AddPlace,
// AddTransition, AddArc and RemoveArc, which enforce local legality (unique
// ids, kind alternation, no duplicate arcs) and are used while constructing
// a new value.
package petri

import (
	"sort"
)

// Well-known place ids. Every graph accepted by the rewriting engine has a
// distinguished start place and end place with these ids.
const (
	Start = "P0"
	End   = "P_out"
)

// NodeKind discriminates places from transitions.
type NodeKind int

const (
	PlaceNode NodeKind = iota
	TransitionNode
)

// String returns the node-link type tag used in the JSON interchange format.
func (k NodeKind) String() string {
	if k == PlaceNode {
		return "place"
	}
	return "transition"
}

// Node is a place or transition. Identity is the ID; nodes are otherwise
// value types. Tokens is meaningful for places only.
type Node struct {
	ID     string
	Kind   NodeKind
	Tokens int
}

// Arc is a directed edge between a place and a transition. Weight
// round-trips through the interchange format but the rewriting engine
// always treats it as 1.
type Arc struct {
	Source string
	Target string
	Weight int
}

// Graph holds the nodes and arcs of a place/transition net, with input and
// output indexes for fast adjacency queries.
type Graph struct {
	nodes   map[string]*Node
	arcs    []*Arc
	inputs  map[string][]*Arc
	outputs map[string][]*Arc
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		arcs:    make([]*Arc, 0),
		inputs:  make(map[string][]*Arc),
		outputs: make(map[string][]*Arc),
	}
}

// Workflow creates the seed workflow net: P0 holding one token, a single
// transition T0, and the end place P_out, connected P0 -> T0 -> P_out.
func Workflow() *Graph {
	g := NewGraph()
	g.mustAddPlace(Start, 1)
	g.mustAddPlace(End, 0)
	g.mustAddTransition("T0")
	g.mustAddArc(Start, "T0")
	g.mustAddArc("T0", End)
	return g
}

func (g *Graph) mustAddPlace(id string, tokens int) {
	if _, err := g.AddPlace(id, tokens); err != nil {
		panic(err)
	}
}

func (g *Graph) mustAddTransition(id string) {
	if _, err := g.AddTransition(id); err != nil {
		panic(err)
	}
}

func (g *Graph) mustAddArc(source, target string) {
	if _, err := g.AddArc(source, target); err != nil {
		panic(err)
	}
}

// AddPlace adds a place with the given id and initial token count.
func (g *Graph) AddPlace(id string, tokens int) (*Node, error) {
	if tokens < 0 {
		return nil, ErrNegativeTokens
	}
	return g.addNode(&Node{ID: id, Kind: PlaceNode, Tokens: tokens})
}

// AddTransition adds a transition with the given id.
func (g *Graph) AddTransition(id string) (*Node, error) {
	return g.addNode(&Node{ID: id, Kind: TransitionNode})
}

func (g *Graph) addNode(n *Node) (*Node, error) {
	if n.ID == "" {
		return nil, ErrEmptyID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return nil, ErrDuplicateID
	}
	g.nodes[n.ID] = n
	return n, nil
}

// AddArc adds a directed arc. Both endpoints must exist, must be of
// different kinds, and the arc must not already exist.
func (g *Graph) AddArc(source, target string) (*Arc, error) {
	src, ok := g.nodes[source]
	if !ok {
		return nil, ErrNodeNotFound
	}
	dst, ok := g.nodes[target]
	if !ok {
		return nil, ErrNodeNotFound
	}
	if src.Kind == dst.Kind {
		return nil, ErrSameKindArc
	}
	if g.HasArc(source, target) {
		return nil, ErrDuplicateArc
	}
	a := &Arc{Source: source, Target: target, Weight: 1}
	g.arcs = append(g.arcs, a)
	g.outputs[source] = append(g.outputs[source], a)
	g.inputs[target] = append(g.inputs[target], a)
	return a, nil
}

// RemoveArc deletes the arc from source to target.
func (g *Graph) RemoveArc(source, target string) error {
	if !g.HasArc(source, target) {
		return ErrArcNotFound
	}
	g.arcs = removeArc(g.arcs, source, target)
	g.outputs[source] = removeArc(g.outputs[source], source, target)
	g.inputs[target] = removeArc(g.inputs[target], source, target)
	return nil
}

func removeArc(arcs []*Arc, source, target string) []*Arc {
	out := arcs[:0]
	for _, a := range arcs {
		if a.Source == source && a.Target == target {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// HasArc reports whether an arc from source to target exists.
func (g *Graph) HasArc(source, target string) bool {
	for _, a := range g.outputs[source] {
		if a.Target == target {
			return true
		}
	}
	return false
}

// Nodes returns all nodes sorted by id.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Places returns all places sorted by id.
func (g *Graph) Places() []*Node {
	return g.nodesOfKind(PlaceNode)
}

// Transitions returns all transitions sorted by id.
func (g *Graph) Transitions() []*Node {
	return g.nodesOfKind(TransitionNode)
}

func (g *Graph) nodesOfKind(kind NodeKind) []*Node {
	out := make([]*Node, 0)
	for _, n := range g.nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PlaceCount returns the number of places.
func (g *Graph) PlaceCount() int {
	return g.countOfKind(PlaceNode)
}

// TransitionCount returns the number of transitions.
func (g *Graph) TransitionCount() int {
	return g.countOfKind(TransitionNode)
}

func (g *Graph) countOfKind(kind NodeKind) int {
	count := 0
	for _, n := range g.nodes {
		if n.Kind == kind {
			count++
		}
	}
	return count
}

// Arcs returns all arcs. The slice is a copy; the arcs are shared.
func (g *Graph) Arcs() []*Arc {
	out := make([]*Arc, len(g.arcs))
	copy(out, g.arcs)
	return out
}

// InputArcs returns the arcs whose target is the given node.
func (g *Graph) InputArcs(id string) []*Arc {
	out := make([]*Arc, len(g.inputs[id]))
	copy(out, g.inputs[id])
	return out
}

// OutputArcs returns the arcs whose source is the given node.
func (g *Graph) OutputArcs(id string) []*Arc {
	out := make([]*Arc, len(g.outputs[id]))
	copy(out, g.outputs[id])
	return out
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	for id, n := range g.nodes {
		copied := *n
		out.nodes[id] = &copied
	}
	for _, a := range g.arcs {
		copied := *a
		out.arcs = append(out.arcs, &copied)
		out.outputs[a.Source] = append(out.outputs[a.Source], &copied)
		out.inputs[a.Target] = append(out.inputs[a.Target], &copied)
	}
	return out
}

// Equal reports structural equality: identical node sets (id, kind,
// tokens) and identical arc sets. Arc order is irrelevant.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}
	if len(g.nodes) != len(other.nodes) || len(g.arcs) != len(other.arcs) {
		return false
	}
	for id, n := range g.nodes {
		o := other.nodes[id]
		if o == nil || o.Kind != n.Kind || o.Tokens != n.Tokens {
			return false
		}
	}
	for _, a := range g.arcs {
		if !other.HasArc(a.Source, a.Target) {
			return false
		}
	}
	return true
}
