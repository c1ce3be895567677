package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/club-scheduler/pkg/core/authority"
	"github.com/jwhitfield/club-scheduler/pkg/core/services"
)

// UnassignToastmasterCmd creates the unassign-toastmaster command
func UnassignToastmasterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign-toastmaster <user_id> <meeting_number>",
		Short: "Give up the Toastmaster role at one of this month's meetings",
		Long: `Clears the user's own Toastmaster assignment at the given meeting
(1-based, within the current month's schedule). Blocked inside the
24-hour window before the meeting unless the user is an admin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := args[0]
			meetingNumber, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("meeting_number must be a number: %w", err)
			}
			if meetingNumber < 1 {
				return fmt.Errorf("meeting_number must be at least 1")
			}

			decision, err := services.UnassignSelfFromToastmaster(
				app.Ctx, app.Database, app.Logger, userID, time.Now(), meetingNumber-1)
			if err != nil {
				return err
			}

			if decision.Allowed {
				fmt.Printf("\n✓ Toastmaster assignment cleared for meeting %d\n\n", meetingNumber)
				return nil
			}

			fmt.Printf("\n✗ Unassignment refused: %s\n", decision.Reason)
			if decision.Reason == authority.ReasonBufferProtectionActive {
				fmt.Printf("The meeting is %.1f hours away; changes inside 24 hours need an admin.\n", decision.HoursRemaining)
			}
			fmt.Println()

			return nil
		},
	}
}
