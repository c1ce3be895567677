package services

import (
	"context"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// mockStore implements the full store surface for service tests
type mockStore struct {
	org          *model.Organization
	members      []model.Member
	availability map[string]model.MemberAvailability
	schedules    map[string]*model.MonthlySchedule

	savedSchedules        []*model.MonthlySchedule
	insertedNotifications []model.Notification
	updatedAssignments    []assignmentUpdate
	setAvailabilityCalls  []availabilityUpdate
	upsertedMembers       []model.Member

	getOrgErr       error
	getMembersErr   error
	getSchedulesErr error
	saveScheduleErr error
}

type assignmentUpdate struct {
	scheduleID   string
	meetingIndex int
	role         model.Role
	memberID     string
}

type availabilityUpdate struct {
	memberID    string
	meetingDate string
	status      model.AvailabilityStatus
}

func (m *mockStore) GetOrganization(ctx context.Context) (*model.Organization, error) {
	if m.getOrgErr != nil {
		return nil, m.getOrgErr
	}
	return m.org, nil
}

func (m *mockStore) SaveOrganization(ctx context.Context, org *model.Organization) error {
	m.org = org
	return nil
}

func (m *mockStore) GetMembers(ctx context.Context) ([]model.Member, error) {
	if m.getMembersErr != nil {
		return nil, m.getMembersErr
	}
	return m.members, nil
}

func (m *mockStore) UpsertMembers(ctx context.Context, members []model.Member) error {
	m.upsertedMembers = append(m.upsertedMembers, members...)
	return nil
}

func (m *mockStore) GetAvailability(ctx context.Context) (map[string]model.MemberAvailability, error) {
	return m.availability, nil
}

func (m *mockStore) SetAvailability(ctx context.Context, memberID, meetingDate string, status model.AvailabilityStatus) error {
	m.setAvailabilityCalls = append(m.setAvailabilityCalls, availabilityUpdate{memberID, meetingDate, status})
	return nil
}

func (m *mockStore) GetSchedules(ctx context.Context) ([]model.MonthlySchedule, error) {
	if m.getSchedulesErr != nil {
		return nil, m.getSchedulesErr
	}
	var out []model.MonthlySchedule
	for _, s := range m.schedules {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockStore) GetSchedule(ctx context.Context, id string) (*model.MonthlySchedule, error) {
	return m.schedules[id], nil
}

func (m *mockStore) SaveSchedule(ctx context.Context, schedule *model.MonthlySchedule) error {
	if m.saveScheduleErr != nil {
		return m.saveScheduleErr
	}
	if m.schedules == nil {
		m.schedules = make(map[string]*model.MonthlySchedule)
	}
	m.schedules[schedule.ID] = schedule
	m.savedSchedules = append(m.savedSchedules, schedule)
	return nil
}

func (m *mockStore) UpdateAssignment(ctx context.Context, scheduleID string, meetingIndex int, role model.Role, memberID string) error {
	m.updatedAssignments = append(m.updatedAssignments, assignmentUpdate{scheduleID, meetingIndex, role, memberID})
	if s, ok := m.schedules[scheduleID]; ok && meetingIndex >= 0 && meetingIndex < len(s.Meetings) {
		s.Meetings[meetingIndex].Assignments[role] = memberID
	}
	return nil
}

func (m *mockStore) InsertNotifications(ctx context.Context, notifications []model.Notification) error {
	m.insertedNotifications = append(m.insertedNotifications, notifications...)
	return nil
}
