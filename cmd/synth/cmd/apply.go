package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pflow-xyz/go-synthesis/synthesis"
)

var (
	applyRule    string
	applyTarget  string
	applyEndNode string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "apply one rewrite rule at a chosen target",
	Long: `apply one of the rewrite rules (psiA, psiT, psiP, psiD, psiTD) at the
given target node. psiT and psiD optionally splice into an existing node
via --end-node instead of creating a fresh one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadNet()
		if err != nil {
			return err
		}
		req := synthesis.Request{
			Rule:      synthesis.Rule(applyRule),
			TargetID:  applyTarget,
			EndNodeID: applyEndNode,
		}
		out, err := synthesis.Apply(g, req)
		if err != nil {
			return fmt.Errorf("applying %s at %s: %w", applyRule, applyTarget, err)
		}
		logger.Info("rewrite applied",
			zap.String("rule", applyRule),
			zap.String("target", applyTarget),
			zap.Int("places", out.PlaceCount()),
			zap.Int("transitions", out.TransitionCount()))
		return commit(cmd.Context(), out, fmt.Sprintf("%s on %s", applyRule, applyTarget))
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyRule, "rule", "", "rule name (psiA, psiT, psiP, psiD, psiTD)")
	applyCmd.Flags().StringVar(&applyTarget, "target", "", "target node id")
	applyCmd.Flags().StringVar(&applyEndNode, "end-node", "", "existing node to splice into (psiT, psiD)")
	_ = applyCmd.MarkFlagRequired("rule")
	_ = applyCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(applyCmd)
}
