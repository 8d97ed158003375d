// Package cmd implements the synth command line tool: building, rewriting
// and analyzing workflow nets from the shell.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/env"
	"github.com/pflow-xyz/go-synthesis/history"
)

var (
	netFile string
	dbFile  string

	logger  *zap.Logger
	environ env.Environment
)

var rootCmd = &cobra.Command{
	Use:   "synth",
	Short: "grow and analyze workflow nets by graph rewriting",
	Long: `synth builds place/transition nets by applying structure-preserving
rewrite rules, enumerates their end-to-end paths as an event log, and
keeps an undoable history of every accepted rewrite.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if logger, err = zap.NewProduction(); err != nil {
			return err
		}
		environ = env.Load(logger)
		if dbFile == "" {
			dbFile = environ.HistoryPath
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&netFile, "net", "net.json", "graph file to read and write")
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", "", "sqlite history database (default in-memory)")
}

// openHistory selects the history backend from the --db flag.
func openHistory() (history.Store, error) {
	if dbFile == "" {
		return history.NewMemoryStore(), nil
	}
	return history.NewSQLiteStore(dbFile)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
