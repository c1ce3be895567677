package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
	"github.com/jwhitfield/club-scheduler/pkg/core/services"
)

// SetAvailabilityCmd creates the set-availability command
func SetAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-availability <member_id> <date> <status>",
		Short: "Record a member's availability for a meeting date (Available, Unavailable or Possible)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID := args[0]
			meetingDate := args[1]
			status := model.AvailabilityStatus(args[2])

			err := services.SetAvailability(app.Ctx, app.Database, app.Logger, memberID, meetingDate, status)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Availability recorded: %s is %s on %s\n\n", memberID, status, meetingDate)

			return nil
		},
	}
}
