package main

import (
	"fmt"

	"github.com/noitatools/noitasave/internal/ops"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Permanently delete a trashed save",
	Long: `Permanently delete a save from the trash.

Only trashed saves can be deleted; active saves must be moved to the
trash first with "noitasave remove". Deletion removes the snapshot from
disk and cannot be undone.

With no name, prints the trash listing instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println("Please specify which save to delete")
		return listSaves(m, ops.ScopeTrashed)
	}
	name := args[0]

	if err := m.Delete(name); err != nil {
		if reportNotFound(err) {
			return nil
		}
		return err
	}

	fmt.Printf("Permanently deleted [%s]\n", name)
	return nil
}
