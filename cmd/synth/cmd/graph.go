package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-synthesis/petri"
)

// loadNet reads the working graph from the --net file.
func loadNet() (*petri.Graph, error) {
	data, err := os.ReadFile(netFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", netFile, err)
	}
	g := petri.NewGraph()
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", netFile, err)
	}
	return g, nil
}

// saveNet writes the graph back to the --net file.
func saveNet(g *petri.Graph) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding graph: %w", err)
	}
	if err := os.WriteFile(netFile, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", netFile, err)
	}
	return nil
}

// commit saves the graph and, when a history database is configured,
// records a snapshot.
func commit(ctx context.Context, g *petri.Graph, description string) error {
	if err := saveNet(g); err != nil {
		return err
	}
	if dbFile == "" {
		return nil
	}
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()
	if _, err := store.Push(ctx, g, description); err != nil {
		return fmt.Errorf("recording history: %w", err)
	}
	return nil
}
