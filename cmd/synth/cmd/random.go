package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pflow-xyz/go-synthesis/generate"
)

var randomSeed int64

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "apply one randomly chosen rewrite",
	Long: `pick a rule uniformly at random and retry random targets until a
rewrite passes the invariants or the retry budget runs out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadNet()
		if err != nil {
			return err
		}
		opts := []generate.Option{
			generate.WithLogger(logger),
			generate.WithRetryBudget(environ.RetryBudget),
		}
		if randomSeed != 0 {
			opts = append(opts, generate.WithSeed(randomSeed))
		} else if environ.Seed != 0 {
			opts = append(opts, generate.WithSeed(environ.Seed))
		}
		out, req, err := generate.New(opts...).ApplyRandom(g)
		if err != nil {
			return err
		}
		fmt.Printf("applied %s at %s\n", req.Rule, req.TargetID)
		return commit(cmd.Context(), out, fmt.Sprintf("%s on %s (random)", req.Rule, req.TargetID))
	},
}

func init() {
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 0, "seed for reproducible draws")
	rootCmd.AddCommand(randomCmd)
}
