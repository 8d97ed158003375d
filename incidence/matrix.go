// Package incidence derives the place/transition incidence matrix of a
// graph and offers structural checks over it. Rows are places and columns
// are transitions, both in ascending id order; an entry is the transition's
// net token effect on the place.
package incidence

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// Labels returns the row (place) and column (transition) ids of the
// matrix, in the order Matrix uses them.
func Labels(g *petri.Graph) (places, transitions []string) {
	for _, p := range g.Places() {
		places = append(places, p.ID)
	}
	for _, t := range g.Transitions() {
		transitions = append(transitions, t.ID)
	}
	return places, transitions
}

// Matrix builds the incidence matrix of g: entry (p, t) is the weight of
// the arc t→p minus the weight of the arc p→t.
func Matrix(g *petri.Graph) *mat.Dense {
	places, transitions := Labels(g)
	row := make(map[string]int, len(places))
	for i, id := range places {
		row[id] = i
	}
	col := make(map[string]int, len(transitions))
	for i, id := range transitions {
		col[id] = i
	}

	m := mat.NewDense(len(places), len(transitions), nil)
	for _, a := range g.Arcs() {
		if i, ok := row[a.Source]; ok {
			m.Set(i, col[a.Target], m.At(i, col[a.Target])-float64(a.Weight))
		} else {
			m.Set(row[a.Target], col[a.Source], m.At(row[a.Target], col[a.Source])+float64(a.Weight))
		}
	}
	return m
}

// SourceSink locates the rows acting as the net's source and sink: a
// source row consumes only (all entries ≤ 0, at least one negative), a
// sink row produces only. The second return of each pair is false when no
// such row, or more than one, exists.
func SourceSink(m *mat.Dense) (source int, sink int, ok bool) {
	rows, cols := m.Dims()
	source, sink = -1, -1
	for i := 0; i < rows; i++ {
		neg, pos := false, false
		for j := 0; j < cols; j++ {
			switch v := m.At(i, j); {
			case v < 0:
				neg = true
			case v > 0:
				pos = true
			}
		}
		switch {
		case neg && !pos:
			if source >= 0 {
				return -1, -1, false
			}
			source = i
		case pos && !neg:
			if sink >= 0 {
				return -1, -1, false
			}
			sink = i
		}
	}
	return source, sink, source >= 0 && sink >= 0
}

// IsWorkflow reports whether the matrix has workflow shape: no zero row
// or column, every transition both consumes and produces, and exactly one
// source row and one sink row.
func IsWorkflow(m *mat.Dense) bool {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return false
	}
	for i := 0; i < rows; i++ {
		zero := true
		for j := 0; j < cols; j++ {
			if m.At(i, j) != 0 {
				zero = false
				break
			}
		}
		if zero {
			return false
		}
	}
	for j := 0; j < cols; j++ {
		neg, pos := false, false
		for i := 0; i < rows; i++ {
			switch v := m.At(i, j); {
			case v < 0:
				neg = true
			case v > 0:
				pos = true
			}
		}
		if !neg || !pos {
			return false
		}
	}
	_, _, ok := SourceSink(m)
	return ok
}
