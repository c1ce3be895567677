package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/club-scheduler/pkg/core/services"
)

// BlackoutCmd creates the blackout command
func BlackoutCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blackout <schedule_id> <meeting_number>",
		Short: "Mark a meeting as a blackout, clearing its assignments",
		Long: `Marks the given meeting (1-based, within the schedule identified by
YYYY-MM) as a blackout and clears every role assignment on it. Pass
--clear to lift a blackout instead; assignments stay empty until the
month is regenerated.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduleID := args[0]
			meetingNumber, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("meeting_number must be a number: %w", err)
			}
			if meetingNumber < 1 {
				return fmt.Errorf("meeting_number must be at least 1")
			}

			lift, _ := cmd.Flags().GetBool("clear")

			err = services.SetMeetingBlackout(app.Ctx, app.Database, app.Logger, scheduleID, meetingNumber-1, !lift)
			if err != nil {
				return err
			}

			if lift {
				fmt.Printf("\n✓ Blackout lifted from meeting %d of %s\n\n", meetingNumber, scheduleID)
			} else {
				fmt.Printf("\n✓ Meeting %d of %s marked as blackout\n\n", meetingNumber, scheduleID)
			}

			return nil
		},
	}

	cmd.Flags().Bool("clear", false, "Lift a blackout instead of setting one")

	return cmd
}
