package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// mockRosterClient implements RosterClient for testing
type mockRosterClient struct {
	members []model.Member
	listErr error
}

func (m *mockRosterClient) ListMembers() ([]model.Member, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.members, nil
}

func TestImportRoster_Success(t *testing.T) {
	store := &mockStore{}
	client := &mockRosterClient{
		members: []model.Member{
			{ID: "mem-01", Name: "Ada", Status: model.StatusActive, IsToastmaster: true},
			{ID: "mem-02", Name: "Ben", Status: model.StatusPossible},
		},
	}

	imported, err := ImportRoster(context.Background(), store, client, zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, imported, 2)
	require.Len(t, store.upsertedMembers, 2)
	assert.Equal(t, "mem-01", store.upsertedMembers[0].ID)
	assert.True(t, store.upsertedMembers[0].IsToastmaster)
}

func TestImportRoster_EmptySheet(t *testing.T) {
	store := &mockStore{}
	client := &mockRosterClient{}

	_, err := ImportRoster(context.Background(), store, client, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no members")
	assert.Empty(t, store.upsertedMembers)
}

func TestImportRoster_MissingID(t *testing.T) {
	store := &mockStore{}
	client := &mockRosterClient{
		members: []model.Member{{Name: "No ID", Status: model.StatusActive}},
	}

	_, err := ImportRoster(context.Background(), store, client, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no member ID")
}

func TestImportRoster_ClientError(t *testing.T) {
	store := &mockStore{}
	client := &mockRosterClient{listErr: errors.New("sheet unavailable")}

	_, err := ImportRoster(context.Background(), store, client, zap.NewNop())
	assert.Error(t, err)
	assert.Empty(t, store.upsertedMembers)
}
