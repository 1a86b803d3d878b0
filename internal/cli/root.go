// Package cli defines Cobra command definitions for the voxboard CLI.
// This file contains the root command, which launches the TUI when run
// on a terminal with no subcommand.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxboard-dev/voxboard/internal/player"
	"github.com/voxboard-dev/voxboard/internal/tui"
	"github.com/voxboard-dev/voxboard/internal/tui/app"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "voxboard",
	Short: "Admin console for the voice-AI call-handling platform",
	Long: `Voxboard is the operator console for the voice-AI call-handling
platform: review calls and recordings, manage appointments, knowledge
bases, conversation scripts, and platform configuration.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch TUI if TTY, show help
		// otherwise.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		d, err := buildDeps()
		if err != nil {
			return err
		}
		defer d.Close()

		return tui.Run(app.New(d.client, d.store, player.New()))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(callsCmd)
	rootCmd.AddCommand(appointmentsCmd)
	rootCmd.AddCommand(kbCmd)
	rootCmd.AddCommand(scriptsCmd)
	rootCmd.AddCommand(settingsCmd)
}
