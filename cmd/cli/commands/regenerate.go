package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/club-scheduler/pkg/core/scheduler"
	"github.com/jwhitfield/club-scheduler/pkg/core/services"
)

// RegenerateCmd creates the regenerate command
func RegenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regenerate [year] [month]",
		Short: "Redraw every assignment for an existing month, keeping its dates and themes (defaults to the current month)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := resolveYearMonth(args, scheduler.CurrentMonthInfo(time.Now()))
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetInt64("seed")
				rng = rand.New(rand.NewSource(seed))
			}

			schedule, err := services.RegenerateSchedule(app.Ctx, app.Database, app.Logger, year, month, rng)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule %s regenerated!\n\n", schedule.ID)
			printSchedule(schedule)

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for random decisions")

	return cmd
}
