package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

func TestSetAvailability_Success(t *testing.T) {
	store := &mockStore{members: testRoster(3)}

	err := SetAvailability(context.Background(), store, zap.NewNop(),
		"mem-02", "2025-09-09", model.Unavailable)
	require.NoError(t, err)

	require.Len(t, store.setAvailabilityCalls, 1)
	call := store.setAvailabilityCalls[0]
	assert.Equal(t, "mem-02", call.memberID)
	assert.Equal(t, "2025-09-09", call.meetingDate)
	assert.Equal(t, model.Unavailable, call.status)
}

func TestSetAvailability_InvalidStatus(t *testing.T) {
	store := &mockStore{members: testRoster(3)}

	err := SetAvailability(context.Background(), store, zap.NewNop(),
		"mem-02", "2025-09-09", model.AvailabilityStatus("Maybe"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid availability status")
	assert.Empty(t, store.setAvailabilityCalls)
}

func TestSetAvailability_InvalidDate(t *testing.T) {
	store := &mockStore{members: testRoster(3)}

	err := SetAvailability(context.Background(), store, zap.NewNop(),
		"mem-02", "9th September", model.Available)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid meeting date")
}

func TestSetAvailability_UnknownMember(t *testing.T) {
	store := &mockStore{members: testRoster(3)}

	err := SetAvailability(context.Background(), store, zap.NewNop(),
		"mem-99", "2025-09-09", model.Possible)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown member")
}
