package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// snapshot pairs an action with the graph it recorded.
type snapshot struct {
	action Action
	graph  *petri.Graph
}

// MemoryStore keeps the stack in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	stack []snapshot
}

// NewMemoryStore creates an empty in-memory history.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Push(_ context.Context, g *petri.Graph, description string) (Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := Action{
		ID:          uuid.New(),
		Seq:         len(s.stack) + 1,
		Timestamp:   time.Now().UTC(),
		Description: description,
	}
	s.stack = append(s.stack, snapshot{action: action, graph: g.Clone()})
	return action, nil
}

func (s *MemoryStore) Undo(_ context.Context) (*petri.Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) < 2 {
		return nil, ErrEmpty
	}
	s.stack = s.stack[:len(s.stack)-1]
	return s.stack[len(s.stack)-1].graph.Clone(), nil
}

func (s *MemoryStore) Current(_ context.Context) (*petri.Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) == 0 {
		return nil, ErrEmpty
	}
	return s.stack[len(s.stack)-1].graph.Clone(), nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stack), nil
}

func (s *MemoryStore) Actions(_ context.Context) ([]Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions := make([]Action, len(s.stack))
	for i, snap := range s.stack {
		actions[i] = snap.action
	}
	return actions, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
