package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// GenerateInput contains everything needed to produce a month's schedule
type GenerateInput struct {
	// Year and Month identify the schedule (Month is 1-12)
	Year  int
	Month int

	// MeetingDates is the ordered list of meeting dates for the month
	MeetingDates []time.Time

	// Themes holds one theme per meeting date. May be empty, in which case
	// placeholder themes are generated; any other length mismatch is an error.
	Themes []string

	// Members is the full club roster. Only Active members are schedulable.
	Members []model.Member

	// Availability maps member ID to per-date availability. Missing members
	// and missing dates are treated as Available.
	Availability map[string]model.MemberAvailability

	// PriorSchedules is the history of previously generated schedules. The
	// previous calendar month, if present, biases speaker and evaluator
	// selection toward different people.
	PriorSchedules []model.MonthlySchedule

	// ExcludeMemberID removes the permanent administrator from the pool
	ExcludeMemberID string

	// Rand is the randomness source for pool shuffling. Leave nil for fresh
	// entropy; inject a seeded source for deterministic tests.
	Rand *rand.Rand
}

// meetingSpec describes one meeting slot to fill
type meetingSpec struct {
	date       time.Time
	theme      string
	isBlackout bool
}

// Generate produces a new monthly schedule from scratch. Roles for which no
// eligible candidate exists anywhere in the roster are left unassigned; that
// is an observable outcome for the caller, not an error. Errors are returned
// only for malformed input.
func Generate(input GenerateInput) (*model.MonthlySchedule, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	specs := make([]meetingSpec, len(input.MeetingDates))
	for i, date := range input.MeetingDates {
		theme := fmt.Sprintf("Meeting Theme %d", i+1)
		if i < len(input.Themes) && input.Themes[i] != "" {
			theme = input.Themes[i]
		}
		specs[i] = meetingSpec{date: date, theme: theme}
	}

	return run(input, specs)
}

// Regenerate reruns assignment over an existing schedule's dates and themes,
// overwriting every non-blackout meeting's assignments. Blackout meetings are
// skipped and keep all roles unassigned.
func Regenerate(existing *model.MonthlySchedule, input GenerateInput) (*model.MonthlySchedule, error) {
	if existing == nil {
		return nil, fmt.Errorf("no existing schedule to regenerate")
	}
	if err := validateMonth(input.Year, input.Month); err != nil {
		return nil, err
	}

	specs := make([]meetingSpec, 0, len(existing.Meetings))
	for _, meeting := range existing.Meetings {
		date, err := time.Parse("2006-01-02", meeting.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid meeting date %q: %w", meeting.Date, err)
		}
		specs = append(specs, meetingSpec{
			date:       date,
			theme:      meeting.Theme,
			isBlackout: meeting.IsBlackout,
		})
	}

	return run(input, specs)
}

func validateInput(input GenerateInput) error {
	if err := validateMonth(input.Year, input.Month); err != nil {
		return err
	}
	if len(input.Themes) != 0 && len(input.Themes) != len(input.MeetingDates) {
		return fmt.Errorf("themes count %d does not match meeting dates count %d",
			len(input.Themes), len(input.MeetingDates))
	}
	return nil
}

func validateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be 1-12, got %d", month)
	}
	if year < 1 {
		return fmt.Errorf("year must be positive, got %d", year)
	}
	return nil
}

// run drives the month loop: one session carries history across meetings,
// each meeting gets its own committed-member tracking.
func run(input GenerateInput, specs []meetingSpec) (*model.MonthlySchedule, error) {
	session := newSession(input)

	meetings := make([]model.Meeting, len(specs))
	for i, spec := range specs {
		assignments := emptyAssignments()
		dateKey := spec.date.Format("2006-01-02")

		if !spec.isBlackout {
			meeting := session.newMeeting(dateKey, assignments)
			meeting.assignAll()
		}

		meetings[i] = model.Meeting{
			Date:        dateKey,
			Theme:       spec.theme,
			IsBlackout:  spec.isBlackout,
			Assignments: assignments,
		}
	}

	return &model.MonthlySchedule{
		ID:       model.ScheduleID(input.Year, input.Month),
		Year:     input.Year,
		Month:    input.Month,
		Meetings: meetings,
	}, nil
}

// emptyAssignments returns an assignment map with every catalog role present
// and unassigned, preserving the invariant of exactly one entry per role.
func emptyAssignments() model.RoleAssignment {
	assignments := make(model.RoleAssignment, len(model.RoleCatalog))
	for _, role := range model.RoleCatalog {
		assignments[role] = ""
	}
	return assignments
}
