package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heropath-app/heropath/internal/daemon"
	"github.com/heropath-app/heropath/internal/domain"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show totals, streak, and stage progress",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	state, err := d.Engine.State()
	if err != nil {
		return err
	}
	stage, err := d.Engine.Stage(time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Today:  %d pts\n", state.DailyPoints)
	fmt.Printf("Week:   %d pts\n", state.WeeklyPoints)
	fmt.Printf("Month:  %d pts\n", state.MonthlyPoints)
	fmt.Printf("Streak: %d day(s) (best %d)\n\n", state.StreakCurrent, state.StreakBest)

	fmt.Printf("Stage L%d · %s\n", stage.Stage.Level, stage.Stage.Name)
	fmt.Printf("%s %d/%d pts · %d%%\n",
		progressBar(stage.Progress.Percent, 24),
		stage.Progress.Points, stage.Stage.Target, stage.Progress.Percent)
	fmt.Println(stage.Insight)

	if anyLogged(state.DailyLog) {
		fmt.Println()
		for _, label := range domain.WeekdayLabels {
			if pts := state.DailyLog[label]; pts > 0 {
				fmt.Printf("  %s: %d pts\n", label, pts)
			}
		}
	}

	for _, p := range d.Pending {
		fmt.Printf("\nPending %s rollover (%d pts) — run 'heropath rollover --apply'\n",
			p.Cadence, p.Total)
	}
	return nil
}

// progressBar renders a fixed-width text bar for a 0–100 percentage.
func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func anyLogged(log map[string]int) bool {
	for _, pts := range log {
		if pts > 0 {
			return true
		}
	}
	return false
}
