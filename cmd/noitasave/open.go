package main

import (
	"fmt"

	"github.com/noitatools/noitasave/internal/cli"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [target]",
	Short: "Open a directory in the file browser",
	Long: `Open a directory in the platform file browser.

Targets:
  game   the configured Noita root directory (default)
  saves  the managed storage directory holding snapshots and the backup`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"game", "saves"},
	RunE:      runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	target := "game"
	if len(args) == 1 {
		target = args[0]
	}

	m, st, err := newManager()
	if err != nil {
		return err
	}

	var dir string
	switch target {
	case "game":
		dir, err = m.RootDir()
		if err != nil {
			return err
		}
	case "saves":
		dir = st.Root()
	default:
		return fmt.Errorf("unknown open target %q (expected \"game\" or \"saves\")", target)
	}

	return cli.OpenFileBrowser(dir)
}
