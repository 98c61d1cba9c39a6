package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heropath-app/heropath/internal/daemon"
)

func init() {
	rootCmd.AddCommand(rewardCmd)
}

var rewardCmd = &cobra.Command{
	Use:   "reward [TEXT]",
	Short: "Show or set the weekly reward text",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReward,
}

func runReward(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if len(args) == 1 {
		if err := d.Engine.SetReward(args[0]); err != nil {
			return err
		}
		fmt.Printf("Reward set: %s\n", args[0])
		return nil
	}

	state, err := d.Engine.State()
	if err != nil {
		return err
	}
	fmt.Println(state.Reward)
	return nil
}
