package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
	"github.com/jwhitfield/club-scheduler/pkg/core/scheduler"
)

// RegenerateSchedule destructively recomputes every non-blackout meeting of
// an existing schedule over the same dates and themes. Blackout meetings are
// untouched and keep all roles unassigned.
func RegenerateSchedule(ctx context.Context, store GenerateScheduleStore, logger *zap.Logger, year, month int, rng *rand.Rand) (*model.MonthlySchedule, error) {
	scheduleID := model.ScheduleID(year, month)
	logger.Debug("Regenerating schedule", zap.String("schedule_id", scheduleID))

	org, err := store.GetOrganization(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return nil, fmt.Errorf("no organization configured")
	}

	existing, err := store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("schedule %s does not exist", scheduleID)
	}

	members, err := store.GetMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	availability, err := store.GetAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	prior, err := store.GetSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior schedules: %w", err)
	}

	schedule, err := scheduler.Regenerate(existing, scheduler.GenerateInput{
		Year:            year,
		Month:           month,
		Members:         members,
		Availability:    availability,
		PriorSchedules:  prior,
		ExcludeMemberID: org.OwnerID,
		Rand:            rng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to regenerate schedule: %w", err)
	}

	if err := store.SaveSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	notifications := publishedNotifications(schedule)
	if err := store.InsertNotifications(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to record notifications: %w", err)
	}

	logger.Info("Schedule regenerated",
		zap.String("schedule_id", schedule.ID),
		zap.Int("notified_members", len(notifications)))

	return schedule, nil
}
