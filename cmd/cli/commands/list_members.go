package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// ListMembersCmd creates the list-members command
func ListMembersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-members",
		Short: "List all members on the club roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := app.Database.GetMembers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			app.Logger.Info("Members fetched successfully", zap.Int("count", len(members)))

			fmt.Printf("\nFound %d members:\n\n", len(members))
			for _, m := range members {
				extras := memberExtras(m)
				fmt.Printf("- %s (%s) - %s%s\n", m.Name, m.ID, m.Status, extras)
			}
			fmt.Println()

			return nil
		},
	}
}

func memberExtras(m model.Member) string {
	var parts []string
	if m.OfficerRole != "" {
		parts = append(parts, string(m.OfficerRole))
	}
	var quals []string
	if m.IsToastmaster {
		quals = append(quals, "Toastmaster")
	}
	if m.IsTableTopicsMaster {
		quals = append(quals, "Table Topics Master")
	}
	if m.IsGeneralEvaluator {
		quals = append(quals, "General Evaluator")
	}
	if m.IsPastPresident {
		quals = append(quals, "Past President")
	}
	if len(quals) > 0 {
		parts = append(parts, strings.Join(quals, ", "))
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, "; ") + "]"
}
