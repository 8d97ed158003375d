package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pflow-xyz/go-synthesis/history"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "list the recorded rewrite history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dbFile == "" {
			return errors.New("log needs a history database (--db)")
		}
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		actions, err := store.Actions(cmd.Context())
		if err != nil {
			return err
		}
		for _, a := range actions {
			fmt.Printf("%4d  %s  %s  %s\n",
				a.Seq, a.Timestamp.Format(time.RFC3339), a.ID, a.Description)
		}
		return nil
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "discard the newest rewrite and restore the previous net",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dbFile == "" {
			return errors.New("undo needs a history database (--db)")
		}
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		g, err := store.Undo(cmd.Context())
		if err != nil {
			if errors.Is(err, history.ErrEmpty) {
				return errors.New("nothing to undo")
			}
			return err
		}
		if err := saveNet(g); err != nil {
			return err
		}
		fmt.Printf("restored previous net to %s\n", netFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(undoCmd)
}
