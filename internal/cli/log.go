package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heropath-app/heropath/internal/daemon"
)

func init() {
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log ACTIVITY",
	Short: "Record an activity from the catalog",
	Long: `Record one activity by its catalog label, e.g.:

  heropath log "Trained"
  heropath log "Slept 7h+"

Run 'heropath activities' to list the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Engine.LogActivity(args[0], time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("+%d pts — %s\n", result.Points, result.Label)
	fmt.Printf("Today: %d pts · Week: %d pts · Month: %d pts\n",
		result.DailyPoints, result.WeeklyPoints, result.MonthlyPoints)
	fmt.Printf("Streak: %d day(s) (best %d)\n", result.StreakCurrent, result.StreakBest)
	fmt.Printf("Stage L%d %s: %d/%d pts (%d%%)\n",
		result.Stage.Level, result.Stage.Name,
		result.Progress.Points, result.Stage.Target, result.Progress.Percent)

	if result.RewardUnlocked {
		fmt.Println("🎉 Reward unlocked! Run 'heropath reward' to see it.")
	}
	return nil
}
