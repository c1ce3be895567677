package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/authority"
	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// authorityFixture is a September schedule with a Toastmaster per week and a
// roster that can resolve both member and account IDs.
func authorityFixture() *mockStore {
	return &mockStore{
		org: &model.Organization{
			Name:       "Riverside Speakers",
			OwnerID:    "owner-1",
			MeetingDay: 2,
			Timezone:   "UTC",
			Members: []model.AppUser{
				{UID: "owner-1", Role: model.UserRoleAdmin},
				{UID: "acct-2", Role: model.UserRoleMember},
			},
		},
		members: []model.Member{
			{ID: "tm-1", Status: model.StatusActive},
			{ID: "tm-2", Status: model.StatusActive, AccountID: "acct-2"},
			{ID: "tm-3", Status: model.StatusActive},
		},
		schedules: map[string]*model.MonthlySchedule{
			"2025-09": {
				ID: "2025-09", Year: 2025, Month: 9,
				Meetings: []model.Meeting{
					{Date: "2025-09-02", Assignments: model.RoleAssignment{model.RoleToastmaster: "tm-1"}},
					{Date: "2025-09-09", Assignments: model.RoleAssignment{model.RoleToastmaster: "tm-2"}},
					{Date: "2025-09-16", Assignments: model.RoleAssignment{model.RoleToastmaster: "tm-3"}},
				},
			},
		},
	}
}

func TestAuthorityStatus_OwnerIsAdmin(t *testing.T) {
	store := authorityFixture()
	now := time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC)

	status, err := AuthorityStatus(context.Background(), store, zap.NewNop(), "owner-1", now)
	require.NoError(t, err)

	assert.True(t, status.Authorized)
	assert.Equal(t, authority.ReasonPermanentAdmin, status.Reason)
}

func TestAuthorityStatus_CurrentWeekToastmaster(t *testing.T) {
	store := authorityFixture()
	now := time.Date(2025, 9, 9, 10, 0, 0, 0, time.UTC)

	status, err := AuthorityStatus(context.Background(), store, zap.NewNop(), "tm-2", now)
	require.NoError(t, err)

	assert.True(t, status.Authorized)
	assert.Equal(t, authority.ReasonCurrentWeekToastmaster, status.Reason)
	require.NotNil(t, status.WeekInfo)
	assert.Equal(t, "2025-09-09", status.WeekInfo.MeetingDate)
}

func TestAuthorityStatus_AccountIDResolvesToMember(t *testing.T) {
	store := authorityFixture()
	now := time.Date(2025, 9, 9, 10, 0, 0, 0, time.UTC)

	status, err := AuthorityStatus(context.Background(), store, zap.NewNop(), "acct-2", now)
	require.NoError(t, err)

	assert.True(t, status.Authorized)
	assert.Equal(t, authority.ReasonCurrentWeekToastmaster, status.Reason)
}

func TestAuthorityStatus_NoScheduleThisMonth(t *testing.T) {
	store := authorityFixture()
	now := time.Date(2025, 10, 9, 10, 0, 0, 0, time.UTC) // no October schedule

	status, err := AuthorityStatus(context.Background(), store, zap.NewNop(), "tm-2", now)
	require.NoError(t, err)

	assert.False(t, status.Authorized)
	assert.Equal(t, authority.ReasonNoRights, status.Reason)
}

func TestAuthorityStatus_InvalidTimezone(t *testing.T) {
	store := authorityFixture()
	store.org.Timezone = "Not/AZone"

	_, err := AuthorityStatus(context.Background(), store, zap.NewNop(), "tm-1", time.Now())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timezone")
}

func TestUnassignSelf_NextWeekToastmasterCleared(t *testing.T) {
	store := authorityFixture()
	// The day after week two's meeting: tm-3 holds next-week authority
	now := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)

	decision, err := UnassignSelfFromToastmaster(context.Background(), store, zap.NewNop(), "tm-3", now, 2)
	require.NoError(t, err)

	assert.True(t, decision.Allowed)
	assert.Equal(t, authority.ReasonNextWeekToastmaster, decision.Reason)

	require.Len(t, store.updatedAssignments, 1)
	update := store.updatedAssignments[0]
	assert.Equal(t, "2025-09", update.scheduleID)
	assert.Equal(t, 2, update.meetingIndex)
	assert.Equal(t, model.RoleToastmaster, update.role)
	assert.Empty(t, update.memberID)

	// The previous holder is told their slot reopened
	require.Len(t, store.insertedNotifications, 1)
	notification := store.insertedNotifications[0]
	assert.Equal(t, "tm-3", notification.MemberID)
	assert.Equal(t, model.NotifyRoleChanged, notification.Type)
	assert.Equal(t, "2025-09-16", notification.Metadata.MeetingDate)
}

func TestUnassignSelf_BufferBlocksAndWritesNothing(t *testing.T) {
	store := authorityFixture()
	// Meeting day morning for tm-2
	now := time.Date(2025, 9, 9, 8, 0, 0, 0, time.UTC)

	decision, err := UnassignSelfFromToastmaster(context.Background(), store, zap.NewNop(), "tm-2", now, 1)
	require.NoError(t, err)

	assert.False(t, decision.Allowed)
	assert.Equal(t, authority.ReasonBufferProtectionActive, decision.Reason)
	assert.Empty(t, store.updatedAssignments)
	assert.Empty(t, store.insertedNotifications)
}

func TestUnassignSelf_TargetIndexOutOfRange(t *testing.T) {
	store := authorityFixture()
	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	_, err := UnassignSelfFromToastmaster(context.Background(), store, zap.NewNop(), "owner-1", now, 9)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
