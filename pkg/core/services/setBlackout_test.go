package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

func blackoutFixture() *mockStore {
	return &mockStore{
		schedules: map[string]*model.MonthlySchedule{
			"2025-09": {
				ID: "2025-09", Year: 2025, Month: 9,
				Meetings: []model.Meeting{
					{Date: "2025-09-02", Assignments: model.RoleAssignment{
						model.RoleToastmaster: "mem-01",
						model.RoleSpeaker1:    "mem-02",
						model.RoleGrammarian:  "",
					}},
					{Date: "2025-09-09", IsBlackout: true, Assignments: model.RoleAssignment{
						model.RoleToastmaster: "",
					}},
				},
			},
		},
	}
}

func TestSetMeetingBlackout_ClearsAssignmentsAndNotifies(t *testing.T) {
	store := blackoutFixture()

	err := SetMeetingBlackout(context.Background(), store, zap.NewNop(), "2025-09", 0, true)
	require.NoError(t, err)

	meeting := store.schedules["2025-09"].Meetings[0]
	assert.True(t, meeting.IsBlackout)
	for role, memberID := range meeting.Assignments {
		assert.Empty(t, memberID, "role %s still assigned", role)
	}

	require.Len(t, store.insertedNotifications, 2)
	notified := make(map[string]bool)
	for _, n := range store.insertedNotifications {
		assert.Equal(t, model.NotifyMeetingBlackout, n.Type)
		assert.Equal(t, "2025-09-02", n.Metadata.MeetingDate)
		notified[n.MemberID] = true
	}
	assert.True(t, notified["mem-01"])
	assert.True(t, notified["mem-02"])
}

func TestSetMeetingBlackout_ClearFlag(t *testing.T) {
	store := blackoutFixture()

	err := SetMeetingBlackout(context.Background(), store, zap.NewNop(), "2025-09", 1, false)
	require.NoError(t, err)

	meeting := store.schedules["2025-09"].Meetings[1]
	assert.False(t, meeting.IsBlackout)
	// Reopened meetings stay unassigned
	assert.Empty(t, meeting.Assignments[model.RoleToastmaster])
	assert.Empty(t, store.insertedNotifications)
}

func TestSetMeetingBlackout_NoOpWhenUnchanged(t *testing.T) {
	store := blackoutFixture()

	err := SetMeetingBlackout(context.Background(), store, zap.NewNop(), "2025-09", 1, true)
	require.NoError(t, err)

	assert.Empty(t, store.savedSchedules)
	assert.Empty(t, store.insertedNotifications)
}

func TestSetMeetingBlackout_UnknownSchedule(t *testing.T) {
	store := blackoutFixture()

	err := SetMeetingBlackout(context.Background(), store, zap.NewNop(), "2025-12", 0, true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestSetMeetingBlackout_IndexOutOfRange(t *testing.T) {
	store := blackoutFixture()

	err := SetMeetingBlackout(context.Background(), store, zap.NewNop(), "2025-09", 5, true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
