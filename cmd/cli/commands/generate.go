package commands

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/club-scheduler/pkg/core/scheduler"
	"github.com/jwhitfield/club-scheduler/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [year] [month]",
		Short: "Generate the role schedule for a month (defaults to next month)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			next := scheduler.NextMonthInfo(time.Now())
			if len(args) == 0 {
				fmt.Printf("No month given; planning ahead for %s\n", next.DisplayName)
			}
			year, month, err := resolveYearMonth(args, next)
			if err != nil {
				return err
			}

			themes, _ := cmd.Flags().GetStringSlice("theme")
			seed, _ := cmd.Flags().GetInt64("seed")

			params := services.GenerateScheduleParams{
				Year:          year,
				Month:         month,
				Themes:        themes,
				BlackoutRules: app.Cfg.BlackoutRules(),
			}
			if cmd.Flags().Changed("seed") {
				params.Rand = rand.New(rand.NewSource(seed))
			}

			schedule, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, params)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule %s generated!\n\n", schedule.ID)
			printSchedule(schedule)

			return nil
		},
	}

	cmd.Flags().StringSlice("theme", nil, "Meeting themes, one per meeting date (defaults to numbered placeholders)")
	cmd.Flags().Int64("seed", 0, "Seed for random decisions")

	return cmd
}

// resolveYearMonth parses year and month arguments, falling back to the
// given month when neither is supplied.
func resolveYearMonth(args []string, fallback scheduler.MonthInfo) (int, int, error) {
	switch len(args) {
	case 0:
		return fallback.Year, fallback.Month, nil
	case 2:
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, 0, fmt.Errorf("year must be a number: %w", err)
		}
		month, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("month must be a number: %w", err)
		}
		return year, month, nil
	default:
		return 0, 0, fmt.Errorf("provide both year and month, or neither")
	}
}
