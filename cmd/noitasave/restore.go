package main

import (
	"fmt"

	"github.com/noitatools/noitasave/internal/ops"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [name]",
	Short: "Bring a saved game back from the trash",
	Long: `Bring a saved game back from the trash.

The save keeps its original creation time and snapshot.

With no name, prints the trash listing instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println("Please specify which save to restore")
		return listSaves(m, ops.ScopeTrashed)
	}
	name := args[0]

	if err := m.Restore(name); err != nil {
		if reportNotFound(err) {
			return nil
		}
		return err
	}

	fmt.Printf("Restored [%s] from the trash\n", name)
	return nil
}
