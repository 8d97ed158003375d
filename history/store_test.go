package history_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pflow-xyz/go-synthesis/history"
	"github.com/pflow-xyz/go-synthesis/petri"
	"github.com/pflow-xyz/go-synthesis/synthesis"
)

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func() history.Store {
		return history.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, func() history.Store {
		store, err := history.NewSQLiteStore(":memory:")
		if err != nil {
			t.Fatalf("failed to create sqlite store: %v", err)
		}
		return store
	})
}

func runStoreTests(t *testing.T, newStore func() history.Store) {
	t.Run("PushAndCurrent", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		seed := petri.Workflow()
		action, err := store.Push(ctx, seed, "seed net")
		if err != nil {
			t.Fatalf("push failed: %v", err)
		}
		if action.Seq != 1 {
			t.Errorf("expected seq 1, got %d", action.Seq)
		}
		if action.Description != "seed net" {
			t.Errorf("unexpected description %q", action.Description)
		}

		current, err := store.Current(ctx)
		if err != nil {
			t.Fatalf("current failed: %v", err)
		}
		if !current.Equal(seed) {
			t.Error("current graph differs from pushed graph")
		}
	})

	t.Run("Undo", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		seed := petri.Workflow()
		if _, err := store.Push(ctx, seed, "seed net"); err != nil {
			t.Fatalf("push failed: %v", err)
		}

		grown, err := synthesis.Apply(seed, synthesis.Request{
			Rule:     synthesis.Abstraction,
			TargetID: "T0",
		})
		if err != nil {
			t.Fatalf("rewrite failed: %v", err)
		}
		if _, err := store.Push(ctx, grown, "abstraction on T0"); err != nil {
			t.Fatalf("push failed: %v", err)
		}

		restored, err := store.Undo(ctx)
		if err != nil {
			t.Fatalf("undo failed: %v", err)
		}
		if !restored.Equal(seed) {
			t.Error("undo did not restore the previous graph")
		}
		if n, _ := store.Len(ctx); n != 1 {
			t.Errorf("expected 1 snapshot after undo, got %d", n)
		}
	})

	t.Run("UndoEmpty", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		if _, err := store.Undo(ctx); !errors.Is(err, history.ErrEmpty) {
			t.Errorf("expected ErrEmpty, got: %v", err)
		}

		// One snapshot has nothing beneath it to restore.
		if _, err := store.Push(ctx, petri.Workflow(), "seed net"); err != nil {
			t.Fatalf("push failed: %v", err)
		}
		if _, err := store.Undo(ctx); !errors.Is(err, history.ErrEmpty) {
			t.Errorf("expected ErrEmpty, got: %v", err)
		}
	})

	t.Run("CurrentEmpty", func(t *testing.T) {
		store := newStore()
		defer store.Close()

		if _, err := store.Current(context.Background()); !errors.Is(err, history.ErrEmpty) {
			t.Errorf("expected ErrEmpty, got: %v", err)
		}
	})

	t.Run("Actions", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		descriptions := []string{"seed net", "abstraction on T0", "linear transition on P1"}
		for _, d := range descriptions {
			if _, err := store.Push(ctx, petri.Workflow(), d); err != nil {
				t.Fatalf("push failed: %v", err)
			}
		}

		actions, err := store.Actions(ctx)
		if err != nil {
			t.Fatalf("actions failed: %v", err)
		}
		if len(actions) != len(descriptions) {
			t.Fatalf("expected %d actions, got %d", len(descriptions), len(actions))
		}
		for i, a := range actions {
			if a.Description != descriptions[i] {
				t.Errorf("action %d: expected %q, got %q", i, descriptions[i], a.Description)
			}
			if a.Seq != i+1 {
				t.Errorf("action %d: expected seq %d, got %d", i, i+1, a.Seq)
			}
		}
	})

	t.Run("StoredCopyIsIndependent", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		g := petri.Workflow()
		if _, err := store.Push(ctx, g, "seed net"); err != nil {
			t.Fatalf("push failed: %v", err)
		}
		if _, err := g.AddPlace("P9", 0); err != nil {
			t.Fatalf("mutating caller graph: %v", err)
		}

		current, err := store.Current(ctx)
		if err != nil {
			t.Fatalf("current failed: %v", err)
		}
		if current.Node("P9") != nil {
			t.Error("stored snapshot aliases the caller's graph")
		}
	})
}
