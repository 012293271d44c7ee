package main

import (
	"fmt"

	"github.com/noitatools/noitasave/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [removed]",
	Short: "List saved games",
	Long: `List saved games, newest first.

With the "removed" argument, lists the trash instead:

  noitasave list
  noitasave list removed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	scope := ops.ScopeActive
	if len(args) == 1 {
		if args[0] != "removed" {
			return fmt.Errorf("unknown listing %q (did you mean \"removed\"?)", args[0])
		}
		scope = ops.ScopeTrashed
	}

	m, _, err := newManager()
	if err != nil {
		return err
	}
	return listSaves(m, scope)
}
