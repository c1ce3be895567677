package services

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

func testOrganization() *model.Organization {
	return &model.Organization{
		Name:       "Riverside Speakers",
		District:   "91",
		ClubNumber: "123456",
		OwnerID:    "owner-1",
		MeetingDay: 2, // Tuesday
		Timezone:   "UTC",
	}
}

func testRoster(n int) []model.Member {
	members := make([]model.Member, n)
	for i := range members {
		members[i] = model.Member{
			ID:     fmt.Sprintf("mem-%02d", i+1),
			Name:   fmt.Sprintf("Member %02d", i+1),
			Status: model.StatusActive,
		}
	}
	return members
}

func generateParams() GenerateScheduleParams {
	return GenerateScheduleParams{
		Year:  2025,
		Month: 9,
		Rand:  rand.New(rand.NewSource(42)),
	}
}

func TestGenerateSchedule_Success(t *testing.T) {
	store := &mockStore{
		org:     testOrganization(),
		members: testRoster(20),
	}

	schedule, err := GenerateSchedule(context.Background(), store, zap.NewNop(), generateParams())
	require.NoError(t, err)

	assert.Equal(t, "2025-09", schedule.ID)
	assert.Len(t, schedule.Meetings, 5) // Tuesdays in September 2025
	assert.Equal(t, "2025-09-02", schedule.Meetings[0].Date)

	require.Len(t, store.savedSchedules, 1)
	assert.NotEmpty(t, store.insertedNotifications)
	for _, n := range store.insertedNotifications {
		assert.Equal(t, model.NotifySchedulePublished, n.Type)
		assert.Equal(t, "2025-09", n.Metadata.ScheduleID)
	}
}

func TestGenerateSchedule_OneNotificationPerMember(t *testing.T) {
	store := &mockStore{
		org:     testOrganization(),
		members: testRoster(20),
	}

	_, err := GenerateSchedule(context.Background(), store, zap.NewNop(), generateParams())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, n := range store.insertedNotifications {
		assert.False(t, seen[n.MemberID], "member %s notified twice", n.MemberID)
		seen[n.MemberID] = true
	}
}

func TestGenerateSchedule_RefusesExistingMonth(t *testing.T) {
	store := &mockStore{
		org:     testOrganization(),
		members: testRoster(20),
		schedules: map[string]*model.MonthlySchedule{
			"2025-09": {ID: "2025-09", Year: 2025, Month: 9},
		},
	}

	_, err := GenerateSchedule(context.Background(), store, zap.NewNop(), generateParams())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestGenerateSchedule_NoOrganization(t *testing.T) {
	store := &mockStore{members: testRoster(20)}

	_, err := GenerateSchedule(context.Background(), store, zap.NewNop(), generateParams())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no organization configured")
}

func TestGenerateSchedule_OwnerExcludedFromRoster(t *testing.T) {
	members := testRoster(20)
	members[0].ID = "owner-1" // the permanent admin also appears on the roster

	store := &mockStore{org: testOrganization(), members: members}

	schedule, err := GenerateSchedule(context.Background(), store, zap.NewNop(), generateParams())
	require.NoError(t, err)

	for _, meeting := range schedule.Meetings {
		for role, memberID := range meeting.Assignments {
			assert.NotEqual(t, "owner-1", memberID, "owner assigned %s on %s", role, meeting.Date)
		}
	}
}

func TestGenerateSchedule_BlackoutRuleSkipsMeeting(t *testing.T) {
	store := &mockStore{
		org:     testOrganization(),
		members: testRoster(20),
	}

	params := generateParams()
	// The third Tuesday is reserved for the area contest
	params.BlackoutRules = []string{"DTSTART:20250916T000000Z\nRRULE:FREQ=YEARLY;COUNT=1"}

	schedule, err := GenerateSchedule(context.Background(), store, zap.NewNop(), params)
	require.NoError(t, err)

	require.Len(t, schedule.Meetings, 5)
	blackout := schedule.Meetings[2] // 2025-09-16
	assert.True(t, blackout.IsBlackout)
	for role, memberID := range blackout.Assignments {
		assert.Empty(t, memberID, "blackout meeting has %s assigned", role)
	}

	for _, i := range []int{0, 1, 3, 4} {
		assert.False(t, schedule.Meetings[i].IsBlackout)
		assert.NotEmpty(t, schedule.Meetings[i].Assignments[model.RoleToastmaster])
	}
}

func TestGenerateSchedule_InvalidBlackoutRule(t *testing.T) {
	store := &mockStore{
		org:     testOrganization(),
		members: testRoster(20),
	}

	params := generateParams()
	params.BlackoutRules = []string{"NOT_AN_RRULE"}

	_, err := GenerateSchedule(context.Background(), store, zap.NewNop(), params)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid blackout rule")
}

func TestRegenerateSchedule_Success(t *testing.T) {
	store := &mockStore{
		org:     testOrganization(),
		members: testRoster(20),
	}

	original, err := GenerateSchedule(context.Background(), store, zap.NewNop(), generateParams())
	require.NoError(t, err)

	regenerated, err := RegenerateSchedule(context.Background(), store, zap.NewNop(),
		2025, 9, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.Len(t, regenerated.Meetings, len(original.Meetings))
	for i := range regenerated.Meetings {
		assert.Equal(t, original.Meetings[i].Date, regenerated.Meetings[i].Date)
		assert.Equal(t, original.Meetings[i].Theme, regenerated.Meetings[i].Theme)
	}
}

func TestRegenerateSchedule_MissingMonth(t *testing.T) {
	store := &mockStore{
		org:     testOrganization(),
		members: testRoster(20),
	}

	_, err := RegenerateSchedule(context.Background(), store, zap.NewNop(), 2025, 9, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
