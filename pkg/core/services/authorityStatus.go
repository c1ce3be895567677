package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/authority"
	"github.com/jwhitfield/club-scheduler/pkg/core/model"
	"github.com/jwhitfield/club-scheduler/pkg/db"
)

// AuthorityStore is the store surface authority checks need
type AuthorityStore interface {
	db.OrganizationStore
	db.MemberStore
	db.ScheduleStore
}

// AuthorityStatus reports whether the given user currently holds editing
// authority over the schedule of the month containing now.
func AuthorityStatus(ctx context.Context, store AuthorityStore, logger *zap.Logger, userID string, now time.Time) (authority.Status, error) {
	req, err := buildAuthorityRequest(ctx, store, userID, now)
	if err != nil {
		return authority.Status{}, err
	}

	status := authority.GetStatus(req)
	logger.Debug("Authority status computed",
		zap.String("user_id", userID),
		zap.Bool("authorized", status.Authorized),
		zap.String("reason", string(status.Reason)))

	return status, nil
}

// UnassignToastmasterStore adds assignment mutation to the authority surface
type UnassignToastmasterStore interface {
	AuthorityStore
	db.NotificationStore
}

// UnassignSelfFromToastmaster clears the user's own Toastmaster assignment at
// the target meeting, subject to the 24-hour buffer protection. The decision
// is returned either way; the assignment and a notification are written only
// when it allows the change.
func UnassignSelfFromToastmaster(ctx context.Context, store UnassignToastmasterStore, logger *zap.Logger, userID string, now time.Time, targetMeetingIndex int) (authority.UnassignDecision, error) {
	req, err := buildAuthorityRequest(ctx, store, userID, now)
	if err != nil {
		return authority.UnassignDecision{}, err
	}

	decision := authority.CanSelfUnassignToastmaster(req, targetMeetingIndex)
	if !decision.Allowed {
		logger.Info("Toastmaster self-unassignment refused",
			zap.String("user_id", userID),
			zap.String("reason", string(decision.Reason)),
			zap.Float64("hours_remaining", decision.HoursRemaining))
		return decision, nil
	}

	if req.Schedule == nil || targetMeetingIndex < 0 || targetMeetingIndex >= len(req.Schedule.Meetings) {
		return authority.UnassignDecision{}, fmt.Errorf("target meeting index %d out of range", targetMeetingIndex)
	}

	meeting := req.Schedule.Meetings[targetMeetingIndex]
	previous := meeting.Assignments[model.RoleToastmaster]

	if err := store.UpdateAssignment(ctx, req.Schedule.ID, targetMeetingIndex, model.RoleToastmaster, ""); err != nil {
		return authority.UnassignDecision{}, fmt.Errorf("failed to clear toastmaster assignment: %w", err)
	}

	if previous != "" {
		notification := model.Notification{
			ID:       uuid.New().String(),
			MemberID: previous,
			Type:     model.NotifyRoleChanged,
			Title:    "Toastmaster unassigned",
			Message:  fmt.Sprintf("The Toastmaster role for %s is now open", meeting.Date),
			Metadata: model.NotificationMetadata{
				ScheduleID:  req.Schedule.ID,
				MeetingDate: meeting.Date,
				Role:        model.RoleToastmaster,
			},
		}
		if err := store.InsertNotifications(ctx, []model.Notification{notification}); err != nil {
			return authority.UnassignDecision{}, fmt.Errorf("failed to record notification: %w", err)
		}
	}

	logger.Info("Toastmaster self-unassigned",
		zap.String("user_id", userID),
		zap.String("schedule_id", req.Schedule.ID),
		zap.Int("meeting_index", targetMeetingIndex))

	return decision, nil
}

// buildAuthorityRequest assembles an authority request from stored state: the
// club record supplies the meeting weekday and timezone, the account roster
// supplies the user's permanent role, and the month containing now supplies
// the schedule.
func buildAuthorityRequest(ctx context.Context, store AuthorityStore, userID string, now time.Time) (authority.Request, error) {
	org, err := store.GetOrganization(ctx)
	if err != nil {
		return authority.Request{}, fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return authority.Request{}, fmt.Errorf("no organization configured")
	}

	loc, err := time.LoadLocation(org.Timezone)
	if err != nil {
		return authority.Request{}, fmt.Errorf("invalid club timezone %q: %w", org.Timezone, err)
	}

	members, err := store.GetMembers(ctx)
	if err != nil {
		return authority.Request{}, fmt.Errorf("failed to load members: %w", err)
	}

	local := now.In(loc)
	schedule, err := store.GetSchedule(ctx, model.ScheduleID(local.Year(), int(local.Month())))
	if err != nil {
		return authority.Request{}, fmt.Errorf("failed to load schedule: %w", err)
	}

	userRole := model.UserRoleMember
	for _, u := range org.Members {
		if u.UID == userID {
			userRole = u.Role
			break
		}
	}
	if org.OwnerID == userID {
		userRole = model.UserRoleAdmin
	}

	return authority.Request{
		UserID:       userID,
		UserRole:     userRole,
		Schedule:     schedule,
		Organization: org,
		Members:      members,
		MeetingDay:   time.Weekday(org.MeetingDay),
		Location:     loc,
		Now:          now,
	}, nil
}
