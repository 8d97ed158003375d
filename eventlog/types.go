// Package eventlog enumerates end-to-end paths through a workflow net and
// exports them as a process event log. Each simple path from the start
// place to the end place becomes one case; the places visited along it
// become the case's activities, stamped with synthetic timestamps.
package eventlog

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// TruncatedCase is the case id of the sentinel path appended when
// enumeration hits the path-count limit.
const TruncatedCase = "limit reached"

// ErrMissingEndpoint is returned when the graph lacks the start or end
// place enumeration is anchored on.
var ErrMissingEndpoint = errors.New("graph has no start or end place")

// Path is one simple walk from the start place to the end place. Steps
// holds the visited node ids in order; Timestamp and Probability are
// assigned after enumeration completes.
type Path struct {
	Steps       []string
	Timestamp   time.Time
	Probability float64
}

// Key returns the ordered id sequence as a single string, used to
// deduplicate paths reached via different traversal orders.
func (p Path) Key() string {
	return strings.Join(p.Steps, ",")
}

// Log is the outcome of one enumeration run. It is regenerated wholesale
// from a graph snapshot, never patched incrementally.
type Log struct {
	Paths []Path

	// Truncated is set when enumeration stopped at the path-count
	// limit; the last entry is then the sentinel path.
	Truncated bool
}

// Activities returns the sorted set of node ids appearing in any path.
func (l *Log) Activities() []string {
	seen := make(map[string]bool)
	for _, p := range l.Paths {
		for _, step := range p.Steps {
			seen[step] = true
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Keys returns the set of path keys, for comparing runs.
func (l *Log) Keys() map[string]bool {
	keys := make(map[string]bool, len(l.Paths))
	for _, p := range l.Paths {
		keys[p.Key()] = true
	}
	return keys
}
