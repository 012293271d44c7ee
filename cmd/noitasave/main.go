// Package main is the entry point for the noitasave CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "noitasave",
	Short: "noitasave - named, recoverable snapshots of your Noita save",
	Long: `noitasave captures the live Noita save directory under a name so you
can restore it later. Saves can be listed, loaded back into the game,
moved to a trash, restored from it, or deleted for good.

Before any other command, point the tool at your Noita installation:

  noitasave set-external-dir <path to Noita's root directory>

Loading always keeps a backup of the live save it replaces, so a failed
load never loses the state you were playing.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetVersionTemplate("noitasave version {{.Version}}\n")
}
