package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setDirCmd = &cobra.Command{
	Use:   "set-external-dir <path>",
	Short: "Set the path to Noita's root directory",
	Long: `Set the path to Noita's root directory.

This is where the game keeps its live save (the save00 subdirectory).
Every other command requires it to be set.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetDir,
}

func init() {
	rootCmd.AddCommand(setDirCmd)
}

func runSetDir(cmd *cobra.Command, args []string) error {
	path := args[0]

	m, _, err := newManager()
	if err != nil {
		return err
	}

	if err := m.SetRootDir(path); err != nil {
		return err
	}

	fmt.Printf("External game directory set to %s\n", path)
	return nil
}
