package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
	"github.com/jwhitfield/club-scheduler/pkg/core/scheduler"
	"github.com/jwhitfield/club-scheduler/pkg/db"
)

// GenerateScheduleStore is the store surface schedule generation needs
type GenerateScheduleStore interface {
	db.OrganizationStore
	db.MemberStore
	db.AvailabilityStore
	db.ScheduleStore
	db.NotificationStore
}

// GenerateScheduleParams describes the month to generate
type GenerateScheduleParams struct {
	Year   int
	Month  int // 1-12
	Themes []string

	// BlackoutRules are rrule strings; meeting dates they produce are
	// created as blackout meetings with no assignments.
	BlackoutRules []string

	// Rand is an optional randomness source for deterministic generation
	Rand *rand.Rand
}

// GenerateSchedule produces, persists and announces a new month's schedule.
// It refuses to overwrite an existing schedule for the same month; use
// RegenerateSchedule for that.
func GenerateSchedule(ctx context.Context, store GenerateScheduleStore, logger *zap.Logger, params GenerateScheduleParams) (*model.MonthlySchedule, error) {
	logger.Debug("Generating schedule", zap.Int("year", params.Year), zap.Int("month", params.Month))

	org, err := store.GetOrganization(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	if org == nil {
		return nil, fmt.Errorf("no organization configured")
	}

	scheduleID := model.ScheduleID(params.Year, params.Month)
	existing, err := store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing schedule: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("schedule %s already exists", scheduleID)
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

	meetingDates := scheduler.MeetingDatesForMonth(params.Year, time.Month(params.Month), time.Weekday(org.MeetingDay))
	logger.Debug("Computed meeting dates",
		zap.Int("count", len(meetingDates)),
		zap.Int("meeting_day", org.MeetingDay))

	blackouts, err := blackoutDates(params.BlackoutRules, meetingDates)
	if err != nil {
		return nil, err
	}

	input := scheduler.GenerateInput{
		Year:            params.Year,
		Month:           params.Month,
		MeetingDates:    meetingDates,
		Themes:          params.Themes,
		Members:         members,
		Availability:    availability,
		PriorSchedules:  prior,
		ExcludeMemberID: org.OwnerID,
		Rand:            params.Rand,
	}

	schedule, err := scheduler.Generate(input)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schedule: %w", err)
	}

	// Apply blackout overrides by regenerating over the flagged skeleton, so
	// blacked-out meetings never consume anyone's monthly role history.
	if len(blackouts) > 0 {
		for i := range schedule.Meetings {
			if blackouts[schedule.Meetings[i].Date] {
				schedule.Meetings[i].IsBlackout = true
			}
		}
		schedule, err = scheduler.Regenerate(schedule, input)
		if err != nil {
			return nil, fmt.Errorf("failed to apply blackout overrides: %w", err)
		}
	}

	if err := store.SaveSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	notifications := publishedNotifications(schedule)
	if err := store.InsertNotifications(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to record notifications: %w", err)
	}

	logger.Info("Schedule generated",
		zap.String("schedule_id", schedule.ID),
		zap.Int("meetings", len(schedule.Meetings)),
		zap.Int("notified_members", len(notifications)))

	return schedule, nil
}

// blackoutDates expands the configured rrules and returns the meeting dates
// they cover within the generated month.
func blackoutDates(rules []string, meetingDates []time.Time) (map[string]bool, error) {
	if len(rules) == 0 || len(meetingDates) == 0 {
		return nil, nil
	}

	first := meetingDates[0]
	last := meetingDates[len(meetingDates)-1]

	blackouts := make(map[string]bool)
	for i, rule := range rules {
		r, err := rrule.StrToRRule(rule)
		if err != nil {
			return nil, fmt.Errorf("invalid blackout rule %d (%q): %w", i, rule, err)
		}
		for _, occurrence := range r.Between(first.AddDate(0, 0, -1), last.AddDate(0, 0, 1), true) {
			blackouts[occurrence.Format("2006-01-02")] = true
		}
	}

	return blackouts, nil
}
