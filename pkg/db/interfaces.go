package db

import (
	"context"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// OrganizationStore loads and saves the club record
type OrganizationStore interface {
	GetOrganization(ctx context.Context) (*model.Organization, error)
	SaveOrganization(ctx context.Context, org *model.Organization) error
}

// MemberStore manages the scheduling roster
type MemberStore interface {
	GetMembers(ctx context.Context) ([]model.Member, error)
	UpsertMembers(ctx context.Context, members []model.Member) error
}

// AvailabilityStore manages per-member, per-date availability entries
type AvailabilityStore interface {
	GetAvailability(ctx context.Context) (map[string]model.MemberAvailability, error)
	SetAvailability(ctx context.Context, memberID, meetingDate string, status model.AvailabilityStatus) error
}

// ScheduleStore manages monthly schedules and their meetings
type ScheduleStore interface {
	GetSchedules(ctx context.Context) ([]model.MonthlySchedule, error)
	GetSchedule(ctx context.Context, id string) (*model.MonthlySchedule, error)
	SaveSchedule(ctx context.Context, schedule *model.MonthlySchedule) error
	UpdateAssignment(ctx context.Context, scheduleID string, meetingIndex int, role model.Role, memberID string) error
}

// NotificationStore records notifications for later delivery by the
// surrounding application
type NotificationStore interface {
	InsertNotifications(ctx context.Context, notifications []model.Notification) error
}

// Database is the full store surface. The postgres implementation satisfies
// it; services depend on the narrowest interface they need.
type Database interface {
	OrganizationStore
	MemberStore
	AvailabilityStore
	ScheduleStore
	NotificationStore
}
