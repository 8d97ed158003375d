// Package env loads runtime configuration from the process environment,
// with an optional .env file for local development.
package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment holds the tunables read from SYNTH_* variables.
type Environment struct {
	// HistoryPath is the SQLite file backing the snapshot history;
	// empty selects the in-memory store.
	HistoryPath string

	// Seed fixes the random source of the rule driver; zero means
	// seed from the clock.
	Seed int64

	// RetryBudget bounds the attempts of one random rule application.
	RetryBudget int

	// MaxPaths and MaxPathLength bound path enumeration.
	MaxPaths      int
	MaxPathLength int
}

// Load reads the environment, first merging a .env file when one exists.
// Unparseable values fall back to their defaults with a logged warning;
// configuration mistakes should not stop the process.
func Load(logger *zap.Logger) Environment {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env file", zap.Error(err))
	}
	return Environment{
		HistoryPath:   os.Getenv("SYNTH_HISTORY_PATH"),
		Seed:          intVar(logger, "SYNTH_SEED", 0),
		RetryBudget:   int(intVar(logger, "SYNTH_RETRY_BUDGET", 15)),
		MaxPaths:      int(intVar(logger, "SYNTH_MAX_PATHS", 1000)),
		MaxPathLength: int(intVar(logger, "SYNTH_MAX_PATH_LENGTH", 100)),
	}
}

func intVar(logger *zap.Logger, name string, fallback int64) int64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("ignoring unparseable variable",
			zap.String("name", name),
			zap.String("value", raw),
			zap.Error(err))
		return fallback
	}
	return v
}
