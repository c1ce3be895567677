package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
	"github.com/jwhitfield/club-scheduler/pkg/db"
)

// SetBlackoutStore is the store surface blackout toggles need
type SetBlackoutStore interface {
	db.ScheduleStore
	db.NotificationStore
}

// SetMeetingBlackout marks a meeting as not occurring, clearing every role
// assignment it carried, or reopens a previously blacked-out meeting.
// Reopened meetings stay unassigned until edited or regenerated.
func SetMeetingBlackout(ctx context.Context, store SetBlackoutStore, logger *zap.Logger, scheduleID string, meetingIndex int, isBlackout bool) error {
	schedule, err := store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		return fmt.Errorf("schedule %s does not exist", scheduleID)
	}
	if meetingIndex < 0 || meetingIndex >= len(schedule.Meetings) {
		return fmt.Errorf("meeting index %d out of range for %s", meetingIndex, scheduleID)
	}

	meeting := &schedule.Meetings[meetingIndex]
	if meeting.IsBlackout == isBlackout {
		return nil
	}

	var cleared model.RoleAssignment
	if isBlackout {
		cleared = make(model.RoleAssignment, len(meeting.Assignments))
		for role, memberID := range meeting.Assignments {
			cleared[role] = memberID
			meeting.Assignments[role] = ""
		}
	}
	meeting.IsBlackout = isBlackout

	if err := store.SaveSchedule(ctx, schedule); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}

	if isBlackout {
		notifications := blackoutNotifications(scheduleID, *meeting, cleared)
		if err := store.InsertNotifications(ctx, notifications); err != nil {
			return fmt.Errorf("failed to record notifications: %w", err)
		}
		logger.Info("Meeting blacked out",
			zap.String("schedule_id", scheduleID),
			zap.Int("meeting_index", meetingIndex),
			zap.Int("notified_members", len(notifications)))
	} else {
		logger.Info("Meeting blackout cleared",
			zap.String("schedule_id", scheduleID),
			zap.Int("meeting_index", meetingIndex))
	}

	return nil
}
