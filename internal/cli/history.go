package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heropath-app/heropath/internal/daemon"
)

func init() {
	historyCmd.Flags().BoolVar(&historyMonthly, "monthly", false, "Show monthly archives instead of weekly")
	rootCmd.AddCommand(historyCmd)
}

var historyMonthly bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived weekly (or monthly) point totals",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	state, err := d.Engine.State()
	if err != nil {
		return err
	}

	if historyMonthly {
		if len(state.MonthlyHistory) == 0 {
			fmt.Println("No monthly archives yet.")
			return nil
		}
		for _, rec := range state.MonthlyHistory {
			fmt.Printf("%-20s %d pts\n", rec.Month, rec.Total)
		}
		return nil
	}

	if len(state.WeeklyHistory) == 0 {
		fmt.Println("No weekly archives yet.")
		return nil
	}
	for _, rec := range state.WeeklyHistory {
		fmt.Printf("Week of %-12s %d pts\n", rec.WeekStart, rec.Total)
	}
	return nil
}
