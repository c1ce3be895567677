package commands

import (
	"fmt"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// printSchedule writes a month's meetings and assignments to stdout
func printSchedule(schedule *model.MonthlySchedule) {
	for i, meeting := range schedule.Meetings {
		header := fmt.Sprintf("Meeting %d: %s", i+1, meeting.Date)
		if meeting.Theme != "" {
			header += fmt.Sprintf(" (%s)", meeting.Theme)
		}
		fmt.Println(header)

		if meeting.IsBlackout {
			fmt.Println("  No meeting (blackout)")
			fmt.Println()
			continue
		}

		for _, role := range model.RoleCatalog {
			memberID := meeting.Assignments[role]
			if memberID == "" {
				memberID = "(unassigned)"
			}
			fmt.Printf("  %-22s %s\n", role, memberID)
		}
		fmt.Println()
	}
}
