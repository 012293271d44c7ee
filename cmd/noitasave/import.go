package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <path> <name>",
	Short: "Import a save directory from outside the game",
	Long: `Import an arbitrary directory as a named save.

The directory is copied into managed storage; the original is not touched.
Useful for saves shared by other players or recovered from old backups.

Example:
  noitasave import ~/Downloads/great-run "great run"`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path, name := args[0], args[1]

	m, _, err := newManager()
	if err != nil {
		return err
	}

	if _, err := m.Import(name, path); err != nil {
		return err
	}

	fmt.Printf("Successfully imported %s with name: %s\n", path, name)
	return nil
}
