package petri

import "errors"

// ErrBadChain is returned by Builder.Chain for an even or too-short
// element list (the chain must alternate place, transition, ..., place).
var ErrBadChain = errors.New("chain needs an odd number of elements, at least 3")

// Builder provides a fluent API for constructing graphs.
// The first error encountered is remembered and returned by Done; later
// calls become no-ops, so a chain can be written without per-call checks.
//
// Example:
//
//	g, err := petri.NewBuilder().
//	    Place("P0", 1).
//	    Place("P_out", 0).
//	    Transition("T0").
//	    Arc("P0", "T0").
//	    Arc("T0", "P_out").
//	    Done()
type Builder struct {
	graph *Graph
	err   error
}

// NewBuilder creates a Builder over an empty graph.
func NewBuilder() *Builder {
	return &Builder{graph: NewGraph()}
}

// Place adds a place with the given id and initial token count.
func (b *Builder) Place(id string, tokens int) *Builder {
	if b.err == nil {
		_, b.err = b.graph.AddPlace(id, tokens)
	}
	return b
}

// Transition adds a transition with the given id.
func (b *Builder) Transition(id string) *Builder {
	if b.err == nil {
		_, b.err = b.graph.AddTransition(id)
	}
	return b
}

// Arc adds an arc from source to target.
func (b *Builder) Arc(source, target string) *Builder {
	if b.err == nil {
		_, b.err = b.graph.AddArc(source, target)
	}
	return b
}

// Chain creates a sequential chain of places connected by transitions,
// alternating place, transition, place, transition, place...
//
// Example:
//
//	b.Chain(1, "P0", "T0", "P1", "T1", "P_out")
//	// Creates: P0(1) -> T0 -> P1 -> T1 -> P_out
func (b *Builder) Chain(initialTokens int, elements ...string) *Builder {
	if b.err != nil {
		return b
	}
	if len(elements) < 3 || len(elements)%2 == 0 {
		b.err = ErrBadChain
		return b
	}
	b.Place(elements[0], initialTokens)
	for i := 1; i < len(elements); i += 2 {
		b.Transition(elements[i])
		b.Place(elements[i+1], 0)
		b.Arc(elements[i-1], elements[i])
		b.Arc(elements[i], elements[i+1])
	}
	return b
}

// Done returns the completed graph, or the first construction error.
func (b *Builder) Done() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.graph, nil
}
