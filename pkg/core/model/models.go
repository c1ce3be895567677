package model

import "fmt"

// UserRole is the permanent role a club account holds
type UserRole string

const (
	UserRoleAdmin  UserRole = "Admin"
	UserRoleMember UserRole = "Member"
)

// OfficerRole is an elected club office a member may hold
type OfficerRole string

const (
	OfficerPresident                    OfficerRole = "President"
	OfficerVicePresidentEducation       OfficerRole = "Vice President Education"
	OfficerVicePresidentMembership      OfficerRole = "Vice President Membership"
	OfficerVicePresidentPublicRelations OfficerRole = "Vice President Public Relations"
	OfficerSecretary                    OfficerRole = "Secretary"
	OfficerTreasurer                    OfficerRole = "Treasurer"
	OfficerSergeantAtArms               OfficerRole = "Sergeant at Arms"
)

// MemberStatus is a member's global scheduling status
type MemberStatus string

const (
	StatusActive      MemberStatus = "Active"
	StatusPossible    MemberStatus = "Possible"
	StatusUnavailable MemberStatus = "Unavailable"
	StatusArchived    MemberStatus = "Archived"
)

// AvailabilityStatus is a member's availability for a single meeting date
type AvailabilityStatus string

const (
	Available   AvailabilityStatus = "Available"
	Unavailable AvailabilityStatus = "Unavailable"
	Possible    AvailabilityStatus = "Possible"
)

// Member is a person eligible for role assignment
type Member struct {
	ID                  string
	Name                string
	Status              MemberStatus
	IsToastmaster       bool
	IsTableTopicsMaster bool
	IsGeneralEvaluator  bool
	IsPastPresident     bool
	OfficerRole         OfficerRole // empty if none
	JoinedDate          string      // "2006-01-02", empty if unknown
	AccountID           string      // linked authenticated account, empty if unlinked
}

// MemberAvailability maps a meeting date ("2006-01-02") to an availability
// status. Absent dates mean Available.
type MemberAvailability map[string]AvailabilityStatus

// AppUser is an authenticated account belonging to the organization
type AppUser struct {
	UID         string
	Email       string
	Name        string
	Role        UserRole
	OfficerRole OfficerRole
}

// Organization is the club identity and its account roster
type Organization struct {
	Name       string
	District   string
	ClubNumber string
	OwnerID    string
	Members    []AppUser
	MeetingDay int    // 0 = Sunday ... 6 = Saturday
	Timezone   string // IANA identifier, e.g. "America/New_York"
}

// RoleAssignment maps every catalog role to a member ID, or "" if unassigned
type RoleAssignment map[Role]string

// Meeting is one occurrence within a monthly schedule
type Meeting struct {
	Date        string // "2006-01-02"
	Theme       string
	IsBlackout  bool
	Assignments RoleAssignment
}

// MonthlySchedule is the full roster for one month of meetings
type MonthlySchedule struct {
	ID       string // "2006-01"
	Year     int
	Month    int // 1-12
	Meetings []Meeting
}

// ScheduleID builds the canonical schedule identifier for a year and month
func ScheduleID(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// NotificationType classifies a notification record
type NotificationType string

const (
	NotifySchedulePublished NotificationType = "SchedulePublished"
	NotifyRoleChanged       NotificationType = "RoleChanged"
	NotifyMeetingBlackout   NotificationType = "MeetingBlackout"
)

// Notification is a persisted, undelivered notification for a member
type Notification struct {
	ID       string
	MemberID string
	Type     NotificationType
	Title    string
	Message  string
	Metadata NotificationMetadata
}

// NotificationMetadata carries optional context about what changed
type NotificationMetadata struct {
	ScheduleID  string
	MeetingDate string
	Role        Role
}
