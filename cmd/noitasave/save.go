package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current game under a name",
	Long: `Save the current game under a name.

Captures the live save directory into managed storage. The name is only a
display key; it may contain spaces or any other characters.

Examples:
  noitasave save "before the boss"
  noitasave save lucky-seed`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	name := args[0]

	m, _, err := newManager()
	if err != nil {
		return err
	}

	if _, err := m.Save(name); err != nil {
		return err
	}

	fmt.Printf("Successfully saved game with name: %s\n", name)
	return nil
}
