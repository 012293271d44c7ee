package main

import (
	"fmt"

	"github.com/noitatools/noitasave/internal/ops"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "Replace the live game with a saved one",
	Long: `Replace the live save directory with a saved game.

Before anything is touched, the current live save is copied into the
backup slot, overwriting whatever the previous load put there. If the
load fails partway, that backup holds the last-known-good state.

With no name, prints the list of saves instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println("Please specify which save to load")
		return listSaves(m, ops.ScopeActive)
	}
	name := args[0]

	if _, err := m.Load(name); err != nil {
		if reportNotFound(err) {
			return nil
		}
		return err
	}

	fmt.Printf("Save [%s] successfully loaded!\n", name)
	return nil
}
