package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
	"github.com/jwhitfield/club-scheduler/pkg/core/scheduler"
)

// ViewCmd creates the view command
func ViewCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "view [year] [month]",
		Short: "View a month's schedule (defaults to the current month)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := resolveYearMonth(args, scheduler.CurrentMonthInfo(time.Now()))
			if err != nil {
				return err
			}

			scheduleID := model.ScheduleID(year, month)
			schedule, err := app.Database.GetSchedule(app.Ctx, scheduleID)
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}
			if schedule == nil {
				return fmt.Errorf("no schedule exists for %s", scheduleID)
			}

			fmt.Printf("\nSchedule %s (%d meetings)\n\n", schedule.ID, len(schedule.Meetings))
			printSchedule(schedule)

			return nil
		},
	}
}
