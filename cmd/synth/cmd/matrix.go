package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/pflow-xyz/go-synthesis/incidence"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "print the incidence matrix of the net",
	Long: `print the place/transition incidence matrix: rows are places, columns
are transitions, entries are each transition's net token effect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadNet()
		if err != nil {
			return err
		}
		places, transitions := incidence.Labels(g)
		m := incidence.Matrix(g)

		fmt.Printf("places:      %v\n", places)
		fmt.Printf("transitions: %v\n", transitions)
		fmt.Printf("%v\n", mat.Formatted(m))
		if incidence.IsWorkflow(m) {
			fmt.Println("workflow shape: yes")
		} else {
			fmt.Println("workflow shape: no")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}
