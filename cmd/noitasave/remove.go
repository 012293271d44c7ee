package main

import (
	"fmt"

	"github.com/noitatools/noitasave/internal/ops"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Move a saved game to the trash",
	Long: `Move a saved game to the trash.

Nothing is deleted from disk; the save can be brought back with
"noitasave restore" or deleted for good with "noitasave delete".

With no name, prints the list of saves instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println("Please specify which save to remove")
		return listSaves(m, ops.ScopeActive)
	}
	name := args[0]

	if err := m.Remove(name); err != nil {
		if reportNotFound(err) {
			return nil
		}
		return err
	}

	fmt.Printf("Moved [%s] to the trash\n", name)
	return nil
}
