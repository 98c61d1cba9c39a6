package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heropath-app/heropath/internal/daemon"
)

func init() {
	rootCmd.AddCommand(activitiesCmd)
}

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List the activity catalog",
	Args:  cobra.NoArgs,
	RunE:  runActivities,
}

func runActivities(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	for _, a := range d.Engine.Activities() {
		fmt.Printf("%-24s +%d pts\n", a.Label, a.Points)
	}
	return nil
}
