package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pflow-xyz/go-synthesis/petri"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "create the seed workflow net",
	Long:  "create the minimal workflow net P0 -> T0 -> P_out and write it to the graph file",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := petri.Workflow()
		if err := commit(cmd.Context(), g, "seed net"); err != nil {
			return err
		}
		fmt.Printf("wrote seed net to %s\n", netFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
