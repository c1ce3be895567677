package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCatalog_Complete(t *testing.T) {
	assert.Len(t, RoleCatalog, 17)

	seen := make(map[Role]bool)
	for _, role := range RoleCatalog {
		assert.False(t, seen[role], "duplicate role %s", role)
		seen[role] = true
	}
}

func TestMinorRoles_ExcludeTieredRoles(t *testing.T) {
	expected := []Role{
		RolePledge,
		RoleThoughtOfTheDay,
		RoleGrammarian,
		RoleTimekeeper,
		RoleAhCounter,
		RoleBallotCounter,
	}
	assert.Equal(t, expected, MinorRoles)
}

func TestRoleTierPredicates(t *testing.T) {
	assert.True(t, IsSpeakerRole(RoleSpeaker2))
	assert.False(t, IsSpeakerRole(RoleEvaluator2))
	assert.True(t, IsEvaluatorRole(RoleEvaluator3))
	assert.False(t, IsEvaluatorRole(RoleGeneralEvaluator))
	assert.True(t, IsMinorRole(RoleAhCounter))
	assert.False(t, IsMinorRole(RoleToastmaster))
	assert.False(t, IsMinorRole(RoleInspirationAward))
}

func TestScheduleID_Format(t *testing.T) {
	assert.Equal(t, "2025-09", ScheduleID(2025, 9))
	assert.Equal(t, "2025-12", ScheduleID(2025, 12))
}
