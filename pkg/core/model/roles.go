package model

// Role is a named meeting duty drawn from the fixed catalog
type Role string

const (
	RolePresident         Role = "President"
	RolePledge            Role = "Pledge"
	RoleThoughtOfTheDay   Role = "Thought of the Day"
	RoleToastmaster       Role = "Toastmaster"
	RoleGrammarian        Role = "Grammarian"
	RoleTimekeeper        Role = "Timekeeper"
	RoleAhCounter         Role = "Ah-Counter"
	RoleBallotCounter     Role = "Ballot Counter"
	RoleTableTopicsMaster Role = "Table Topics Master"
	RoleEvaluator1        Role = "Evaluator 1"
	RoleSpeaker1          Role = "Speaker 1"
	RoleEvaluator2        Role = "Evaluator 2"
	RoleSpeaker2          Role = "Speaker 2"
	RoleEvaluator3        Role = "Evaluator 3"
	RoleSpeaker3          Role = "Speaker 3"
	RoleGeneralEvaluator  Role = "General Evaluator"
	RoleInspirationAward  Role = "Inspiration Award"
)

// RoleCatalog is the fixed, ordered list of meeting roles. The order matters:
// minor roles are assigned in catalog order and exports render rows in it.
var RoleCatalog = []Role{
	RolePresident,
	RolePledge,
	RoleThoughtOfTheDay,
	RoleToastmaster,
	RoleGrammarian,
	RoleTimekeeper,
	RoleAhCounter,
	RoleBallotCounter,
	RoleTableTopicsMaster,
	RoleEvaluator1,
	RoleSpeaker1,
	RoleEvaluator2,
	RoleSpeaker2,
	RoleEvaluator3,
	RoleSpeaker3,
	RoleGeneralEvaluator,
	RoleInspirationAward,
}

// HighRoles are the leadership duties that require per-role qualification
// flags, except President which is filled by officer priority.
var HighRoles = []Role{
	RolePresident,
	RoleToastmaster,
	RoleTableTopicsMaster,
	RoleGeneralEvaluator,
}

// SpeakerRoles are seniority-ordered and limited to one per member per month
var SpeakerRoles = []Role{RoleSpeaker1, RoleSpeaker2, RoleSpeaker3}

// EvaluatorRoles are variety-ordered across consecutive months
var EvaluatorRoles = []Role{RoleEvaluator1, RoleEvaluator2, RoleEvaluator3}

// MinorRoles are the supporting duties with no qualification requirement.
// This is the only tier eligible for double-booking one member in a meeting.
var MinorRoles = minorRoles()

func minorRoles() []Role {
	tiered := make(map[Role]bool)
	for _, r := range HighRoles {
		tiered[r] = true
	}
	for _, r := range SpeakerRoles {
		tiered[r] = true
	}
	for _, r := range EvaluatorRoles {
		tiered[r] = true
	}
	tiered[RoleInspirationAward] = true

	var minor []Role
	for _, r := range RoleCatalog {
		if !tiered[r] {
			minor = append(minor, r)
		}
	}
	return minor
}

// IsSpeakerRole reports whether r is in the speaker tier
func IsSpeakerRole(r Role) bool {
	for _, s := range SpeakerRoles {
		if r == s {
			return true
		}
	}
	return false
}

// IsEvaluatorRole reports whether r is in the evaluator tier
func IsEvaluatorRole(r Role) bool {
	for _, e := range EvaluatorRoles {
		if r == e {
			return true
		}
	}
	return false
}

// IsMinorRole reports whether r is in the minor tier
func IsMinorRole(r Role) bool {
	for _, m := range MinorRoles {
		if r == m {
			return true
		}
	}
	return false
}
