package synthesis

import (
	"strconv"
	"strings"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// Allocator produces fresh node ids for a graph. The default continues the
// P0, P1, ... / T0, T1, ... numbering one past the highest suffix in use,
// so it never collides even when ids are sparse or were chosen by hand
// (P_out and other non-numbered ids are simply ignored).
type Allocator interface {
	Next(g *petri.Graph, kind petri.NodeKind) string
}

// DefaultAllocator is the counting allocator used when none is injected.
var DefaultAllocator Allocator = countingAllocator{}

type countingAllocator struct{}

func (countingAllocator) Next(g *petri.Graph, kind petri.NodeKind) string {
	prefix := "T"
	nodes := g.Transitions()
	if kind == petri.PlaceNode {
		prefix = "P"
		nodes = g.Places()
	}
	next := 0
	for _, n := range nodes {
		suffix, ok := strings.CutPrefix(n.ID, prefix)
		if !ok {
			continue
		}
		num, err := strconv.Atoi(suffix)
		if err != nil || num < 0 {
			continue
		}
		if num+1 > next {
			next = num + 1
		}
	}
	return prefix + strconv.Itoa(next)
}
