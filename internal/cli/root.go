// Package cli implements the heropath command-line interface using Cobra.
// Each subcommand maps to one engine operation (log, status, rollover, ...).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "heropath",
	Short: "heropath — gamify your daily habits",
	Long: `heropath is a personal habit-gamification engine.
Log small daily actions, earn points, keep your streak alive, and walk the
six stages of the hero's journey every month — all on your own machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
