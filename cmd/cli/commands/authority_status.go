package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/club-scheduler/pkg/core/services"
)

// AuthorityStatusCmd creates the authority-status command
func AuthorityStatusCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "authority-status <user_id>",
		Short: "Show whether a user can currently edit the schedule, and why",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := args[0]

			status, err := services.AuthorityStatus(app.Ctx, app.Database, app.Logger, userID, time.Now())
			if err != nil {
				return err
			}

			if status.Authorized {
				fmt.Printf("\n✓ %s is authorized to edit the schedule\n", userID)
			} else {
				fmt.Printf("\n✗ %s is not authorized to edit the schedule\n", userID)
			}
			fmt.Printf("Reason: %s\n", status.Reason)

			if status.WeekInfo != nil {
				week := "next week"
				if status.WeekInfo.IsCurrentWeek {
					week = "current week"
				}
				fmt.Printf("Granting meeting: %s (meeting %d, %s)\n",
					status.WeekInfo.MeetingDate,
					status.WeekInfo.WeekIndex+1,
					week,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
