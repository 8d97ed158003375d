// Package history keeps an append-only stack of graph snapshots, one per
// accepted rewrite, so a host can undo by restoring the previous value.
// Two backends are provided: an in-memory store and a SQLite store.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// ErrEmpty is returned when the stack has nothing to return or undo.
var ErrEmpty = errors.New("history is empty")

// Action describes one recorded snapshot.
type Action struct {
	ID          uuid.UUID `json:"id"`
	Seq         int       `json:"seq"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// Store is the snapshot stack. Push records a graph, Undo discards the
// newest snapshot and returns the one beneath it. Implementations must
// store copies: a pushed graph is never aliased by the caller's value.
type Store interface {
	// Push appends a snapshot of g with a human-readable description.
	Push(ctx context.Context, g *petri.Graph, description string) (Action, error)

	// Undo removes the newest snapshot and returns the graph that is
	// now current. It fails with ErrEmpty when there is at most one
	// snapshot left.
	Undo(ctx context.Context) (*petri.Graph, error)

	// Current returns the newest snapshot's graph, or ErrEmpty.
	Current(ctx context.Context) (*petri.Graph, error)

	// Len reports the number of snapshots.
	Len(ctx context.Context) (int, error)

	// Actions lists the recorded actions in push order.
	Actions(ctx context.Context) ([]Action, error)

	// Close releases the backing resources.
	Close() error
}
