package eventlog

import (
	"fmt"
	"sort"
	"time"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// Options bounds an enumeration run.
type Options struct {
	// MaxPathLength abandons any walk longer than this many nodes.
	MaxPathLength int

	// MaxPaths stops enumeration after this many recorded paths; the
	// sentinel path is appended to mark the cut.
	MaxPaths int

	// IncludeTransitions keeps transitions in the recorded steps;
	// otherwise a path lists only the places visited.
	IncludeTransitions bool

	// Base and Step control the synthetic timestamps: path i is
	// stamped Base + i*Step.
	Base time.Time
	Step time.Duration
}

// DefaultOptions returns the standard enumeration bounds.
func DefaultOptions() Options {
	return Options{
		MaxPathLength: 100,
		MaxPaths:      1000,
		Base:          time.Unix(0, 0).UTC(),
		Step:          time.Second,
	}
}

// frame is one pending branch of the traversal. Each branch owns its trail
// and visited set, so sibling branches may revisit nodes this one has
// excluded.
type frame struct {
	node    string
	trail   []string
	visited map[string]bool
}

// Enumerate walks every simple path from the start place to the end place
// and returns them as a log. The traversal uses an explicit work stack and
// is bounded by the options' length and count guards; hitting the count
// guard truncates the log rather than failing.
func Enumerate(g *petri.Graph, opts Options) (*Log, error) {
	if g.Node(petri.Start) == nil || g.Node(petri.End) == nil {
		return nil, fmt.Errorf("enumerate: %w", ErrMissingEndpoint)
	}

	log := &Log{}
	seen := make(map[string]bool)
	stack := []frame{{
		node:    petri.Start,
		trail:   []string{petri.Start},
		visited: map[string]bool{petri.Start: true},
	}}

	for len(stack) > 0 && !log.Truncated {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node == petri.End {
			p := Path{Steps: record(g, f.trail, opts.IncludeTransitions)}
			if key := p.Key(); !seen[key] {
				seen[key] = true
				log.Paths = append(log.Paths, p)
				if len(log.Paths) >= opts.MaxPaths {
					log.Paths = append(log.Paths, Path{Steps: []string{TruncatedCase}})
					log.Truncated = true
				}
			}
			continue
		}
		if len(f.trail) >= opts.MaxPathLength {
			continue
		}

		next := successors(g, f.node)
		// Reverse push order keeps the walk in ascending id order.
		for i := len(next) - 1; i >= 0; i-- {
			id := next[i]
			if f.visited[id] {
				continue
			}
			trail := make([]string, len(f.trail), len(f.trail)+1)
			copy(trail, f.trail)
			visited := make(map[string]bool, len(f.visited)+1)
			for k := range f.visited {
				visited[k] = true
			}
			visited[id] = true
			stack = append(stack, frame{node: id, trail: append(trail, id), visited: visited})
		}
	}

	stamp(log, opts)
	return log, nil
}

// record projects a trail into the steps kept in the log.
func record(g *petri.Graph, trail []string, includeTransitions bool) []string {
	steps := make([]string, 0, len(trail))
	for _, id := range trail {
		if !includeTransitions && g.Node(id).Kind != petri.PlaceNode {
			continue
		}
		steps = append(steps, id)
	}
	return steps
}

func successors(g *petri.Graph, id string) []string {
	arcs := g.OutputArcs(id)
	out := make([]string, 0, len(arcs))
	for _, a := range arcs {
		out = append(out, a.Target)
	}
	sort.Strings(out)
	return out
}

// stamp assigns the synthetic timestamps and the uniform 1/n probability.
// The sentinel path keeps probability zero.
func stamp(log *Log, opts Options) {
	n := len(log.Paths)
	if log.Truncated {
		n--
	}
	for i := range log.Paths {
		log.Paths[i].Timestamp = opts.Base.Add(time.Duration(i) * opts.Step)
		if !log.Truncated || i < n {
			log.Paths[i].Probability = 1 / float64(n)
		}
	}
}
