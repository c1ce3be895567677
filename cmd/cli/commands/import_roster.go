package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/club-scheduler/pkg/core/services"
)

// ImportRosterCmd creates the import-roster command
func ImportRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import-roster",
		Short: "Import the member roster from the configured Google Sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			members, err := services.ImportRoster(app.Ctx, app.Database, client, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster imported: %d members\n\n", len(members))
			for _, m := range members {
				fmt.Printf("- %s (%s) - %s\n", m.Name, m.ID, m.Status)
			}
			fmt.Println()

			return nil
		},
	}
}
