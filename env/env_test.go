package env

import (
	"testing"

	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	e := Load(zap.NewNop())
	if e.RetryBudget != 15 {
		t.Errorf("RetryBudget = %d, want 15", e.RetryBudget)
	}
	if e.MaxPaths != 1000 {
		t.Errorf("MaxPaths = %d, want 1000", e.MaxPaths)
	}
	if e.MaxPathLength != 100 {
		t.Errorf("MaxPathLength = %d, want 100", e.MaxPathLength)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SYNTH_HISTORY_PATH", "synth.db")
	t.Setenv("SYNTH_SEED", "42")
	t.Setenv("SYNTH_RETRY_BUDGET", "5")

	e := Load(zap.NewNop())
	if e.HistoryPath != "synth.db" {
		t.Errorf("HistoryPath = %q, want synth.db", e.HistoryPath)
	}
	if e.Seed != 42 {
		t.Errorf("Seed = %d, want 42", e.Seed)
	}
	if e.RetryBudget != 5 {
		t.Errorf("RetryBudget = %d, want 5", e.RetryBudget)
	}
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("SYNTH_MAX_PATHS", "lots")

	e := Load(zap.NewNop())
	if e.MaxPaths != 1000 {
		t.Errorf("MaxPaths = %d, want the default 1000", e.MaxPaths)
	}
}
