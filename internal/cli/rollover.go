package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heropath-app/heropath/internal/daemon"
)

func init() {
	rolloverCmd.Flags().BoolVar(&rolloverApply, "apply", false, "Apply the pending rollover(s)")
	rootCmd.AddCommand(rolloverCmd)
}

var rolloverApply bool

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Show or apply pending period rollovers",
	Long: `Show the rollovers due today (weekly on Mondays, monthly on the 1st).

Without --apply nothing changes: a deferred rollover simply re-surfaces on
the next check. With --apply, every pending period is archived into history
and its counters reset — at most once per calendar day.`,
	Args: cobra.NoArgs,
	RunE: runRollover,
}

func runRollover(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()

	if rolloverApply {
		applied, err := d.Engine.ApplyRollovers(now)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Println("Nothing to roll over today.")
			return nil
		}
		for _, p := range applied {
			fmt.Printf("Applied %s rollover: %s archived with %d pts\n", p.Cadence, p.Period, p.Total)
		}
		return nil
	}

	pending, err := d.Engine.Sync(now)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("Nothing to roll over today.")
		return nil
	}
	for _, p := range pending {
		fmt.Printf("Pending %s rollover: %s would archive %d pts\n", p.Cadence, p.Period, p.Total)
	}
	fmt.Println("\nRun 'heropath rollover --apply' to confirm.")
	return nil
}
