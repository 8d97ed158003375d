package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pflow-xyz/go-synthesis/eventlog"
)

var (
	pathsFormat      string
	pathsOutput      string
	pathsTransitions bool
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "enumerate all start-to-end paths as an event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadNet()
		if err != nil {
			return err
		}
		opts := eventlog.DefaultOptions()
		opts.MaxPaths = environ.MaxPaths
		opts.MaxPathLength = environ.MaxPathLength
		opts.IncludeTransitions = pathsTransitions
		log, err := eventlog.Enumerate(g, opts)
		if err != nil {
			return err
		}
		if log.Truncated {
			fmt.Fprintln(os.Stderr, "warning: path limit reached, log is truncated")
		}

		var w io.Writer = os.Stdout
		if pathsOutput != "" {
			f, err := os.Create(pathsOutput)
			if err != nil {
				return fmt.Errorf("creating %s: %w", pathsOutput, err)
			}
			defer f.Close()
			w = f
		}
		switch pathsFormat {
		case "csv":
			return log.WriteCSV(w)
		case "jsonl":
			return log.WriteJSONL(w)
		default:
			return fmt.Errorf("unknown format %q (want csv or jsonl)", pathsFormat)
		}
	},
}

func init() {
	pathsCmd.Flags().StringVar(&pathsFormat, "format", "csv", "output format: csv or jsonl")
	pathsCmd.Flags().StringVarP(&pathsOutput, "output", "o", "", "output file (default stdout)")
	pathsCmd.Flags().BoolVar(&pathsTransitions, "include-transitions", false, "keep transitions in the recorded paths")
	rootCmd.AddCommand(pathsCmd)
}
