package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heropath-app/heropath/internal/daemon"
)

func init() {
	rootCmd.AddCommand(journeyCmd)
}

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Show this month's hero's journey stages",
	Args:  cobra.NoArgs,
	RunE:  runJourney,
}

func runJourney(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	j, err := d.Engine.Journey(now)
	if err != nil {
		return err
	}

	fmt.Printf("Journey for %s\n\n", now.Format("January 2006"))
	fmt.Printf("%-3s %-24s %-12s %-6s %s\n", "LVL", "STAGE", "DAYS", "LEN", "TARGET")

	today := now.Day()
	for _, s := range j.Stages {
		marker := " "
		if s.Contains(today) {
			marker = "←"
		}
		fmt.Printf("%-3d %-24s %2d–%-9d %-6d %d pts %s\n",
			s.Level, s.Name, s.StartDay, s.EndDay, s.Length, s.Target, marker)
	}
	return nil
}
