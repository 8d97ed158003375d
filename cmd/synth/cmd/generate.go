package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pflow-xyz/go-synthesis/generate"
	"github.com/pflow-xyz/go-synthesis/synthesis"
)

var (
	genCount     int
	genSeed      int64
	genUseRandom bool
	genRules     []string
	genWeights   []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "grow the net by a batch of random rewrites",
	Long: `apply up to --count rewrites drawn from the selected rules. Explicit
weights are percentages, e.g. --weight psiA=50 --weight psiT=25; rules
without a weight share the remaining mass evenly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadNet()
		if err != nil {
			return err
		}
		weights, err := parseWeights(genWeights)
		if err != nil {
			return err
		}
		rules := make([]synthesis.Rule, len(genRules))
		for i, name := range genRules {
			rules[i] = synthesis.Rule(name)
		}
		opts := []generate.Option{generate.WithLogger(logger)}
		if genSeed != 0 {
			opts = append(opts, generate.WithSeed(genSeed))
		}
		res, err := generate.New(opts...).Batch(g, generate.BatchOptions{
			Count:     genCount,
			UseRandom: genUseRandom,
			Rules:     rules,
			Weights:   weights,
		})
		if err != nil {
			return err
		}
		fmt.Printf("applied %d rewrites in %d attempts\n", res.Applied, res.Attempts)
		if res.Warning != "" {
			fmt.Printf("warning: %s\n", res.Warning)
		}
		return commit(cmd.Context(), res.Graph, fmt.Sprintf("batch of %d rewrites", res.Applied))
	},
}

func parseWeights(raw []string) (map[synthesis.Rule]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	weights := make(map[synthesis.Rule]float64, len(raw))
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("weight %q is not rule=percent", entry)
		}
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", entry, err)
		}
		weights[synthesis.Rule(name)] = w
	}
	return weights, nil
}

func init() {
	generateCmd.Flags().IntVar(&genCount, "count", 10, "number of rewrites to apply")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "seed for reproducible draws")
	generateCmd.Flags().BoolVar(&genUseRandom, "use-random", false, "draw uniformly from all rules")
	generateCmd.Flags().StringSliceVar(&genRules, "rule", nil, "restrict the draw to these rules")
	generateCmd.Flags().StringArrayVar(&genWeights, "weight", nil, "rule=percent weight (repeatable)")
	rootCmd.AddCommand(generateCmd)
}
