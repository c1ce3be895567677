package authority

import (
	"time"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// Reason tags every authority decision, positive or negative
type Reason string

const (
	ReasonPermanentAdmin         Reason = "permanent_admin"
	ReasonCurrentWeekToastmaster Reason = "current_week_toastmaster"
	ReasonNextWeekToastmaster    Reason = "next_week_toastmaster"
	ReasonTargetWeekToastmaster  Reason = "toastmaster_for_target_week"
	ReasonBufferProtectionActive Reason = "buffer_protection_active"
	ReasonUserNotFound           Reason = "user_not_found"
	ReasonInvalidMeetingDate     Reason = "invalid_meeting_date"
	ReasonNoRights               Reason = "no_rights"
)

// selfUnassignBuffer is the protection window before a meeting during which
// its Toastmaster may not abandon the role.
const selfUnassignBuffer = 24 * time.Hour

// Request carries everything an authority decision needs. Now is injected so
// repeated calls within one request agree and tests can pin arbitrary
// instants, including exact 24-hour boundaries.
type Request struct {
	UserID       string
	UserRole     model.UserRole
	Schedule     *model.MonthlySchedule
	Organization *model.Organization
	Members      []model.Member
	MeetingDay   time.Weekday
	Location     *time.Location
	Now          time.Time
}

// WeekInfo describes which meeting grants the authority
type WeekInfo struct {
	WeekIndex     int
	MeetingDate   string
	IsCurrentWeek bool
	IsNextWeek    bool
}

// Status is the outcome of an edit-authority check
type Status struct {
	Authorized bool
	Reason     Reason
	WeekInfo   *WeekInfo
}

// UnassignDecision is the outcome of a Toastmaster self-unassignment check.
// HoursRemaining is meaningful only when Reason is buffer_protection_active.
type UnassignDecision struct {
	Allowed        bool
	Reason         Reason
	HoursRemaining float64
}

// TransitionInfo is the derived view of who holds delegated authority now
type TransitionInfo struct {
	CurrentWeekIndex       int
	NextWeekIndex          int
	CurrentWeekToastmaster string
	NextWeekToastmaster    string
	CurrentWeekActive      bool
	NextWeekActive         bool
}

// ComputeTransition derives the current/next week indices and their activity
// from the schedule and the injected instant. Meetings with missing or
// malformed dates are skipped, never fatal.
func ComputeTransition(schedule *model.MonthlySchedule, loc *time.Location, now time.Time) TransitionInfo {
	info := TransitionInfo{CurrentWeekIndex: -1, NextWeekIndex: -1}
	if schedule == nil || len(schedule.Meetings) == 0 {
		return info
	}

	info.CurrentWeekIndex = currentWeekIndex(schedule, loc, now)
	info.NextWeekIndex = nextWeekIndex(schedule, info.CurrentWeekIndex, loc, now)

	info.CurrentWeekToastmaster = toastmasterForWeek(schedule, info.CurrentWeekIndex)
	info.NextWeekToastmaster = toastmasterForWeek(schedule, info.NextWeekIndex)

	info.CurrentWeekActive = weekHasAuthority(schedule, info.CurrentWeekIndex, false, loc, now)
	info.NextWeekActive = weekHasAuthority(schedule, info.NextWeekIndex, true, loc, now)

	return info
}

// currentWeekIndex finds the meeting dated today, or else the most recent
// meeting strictly before today; -1 if every meeting is in the future.
func currentWeekIndex(schedule *model.MonthlySchedule, loc *time.Location, now time.Time) int {
	today := startOfDay(now, loc)
	current := -1

	for i, meeting := range schedule.Meetings {
		date, ok := meetingDate(meeting, loc)
		if !ok {
			continue
		}
		if date.Equal(today) {
			return i
		}
		if date.Before(today) {
			current = i
		}
	}
	return current
}

// nextWeekIndex is the slot after the current week, or the first future
// meeting when there is no current week.
func nextWeekIndex(schedule *model.MonthlySchedule, currentIdx int, loc *time.Location, now time.Time) int {
	if currentIdx == -1 {
		today := startOfDay(now, loc)
		for i, meeting := range schedule.Meetings {
			date, ok := meetingDate(meeting, loc)
			if !ok {
				continue
			}
			if date.After(today) {
				return i
			}
		}
		return -1
	}

	next := currentIdx + 1
	if next < len(schedule.Meetings) {
		return next
	}
	return -1
}

// weekHasAuthority decides whether the given week's Toastmaster currently
// holds delegated authority. Current-week authority lasts through the end of
// the meeting day. Next-week authority starts the instant the preceding
// meeting's day has fully concluded (23:59:59), giving a handoff with no gap
// and no overlap.
func weekHasAuthority(schedule *model.MonthlySchedule, weekIdx int, isNextWeek bool, loc *time.Location, now time.Time) bool {
	if schedule == nil || weekIdx < 0 || weekIdx >= len(schedule.Meetings) {
		return false
	}

	meeting := schedule.Meetings[weekIdx]
	date, ok := meetingDate(meeting, loc)
	if !ok {
		return false
	}

	if isNextWeek {
		if weekIdx > 0 {
			if prevDate, ok := meetingDate(schedule.Meetings[weekIdx-1], loc); ok {
				return now.After(endOfDay(prevDate))
			}
		}
		// No preceding meeting to hand off from; active until the meeting day starts
		return !date.Before(now)
	}

	today := startOfDay(now, loc)
	if date.Equal(today) {
		return true
	}
	return date.After(now)
}

func toastmasterForWeek(schedule *model.MonthlySchedule, weekIdx int) string {
	if schedule == nil || weekIdx < 0 || weekIdx >= len(schedule.Meetings) {
		return ""
	}
	return schedule.Meetings[weekIdx].Assignments[model.RoleToastmaster]
}

// GetStatus decides whether the requesting user may edit the schedule beyond
// what a plain member can. Evaluated in order, first match wins.
func GetStatus(req Request) Status {
	if req.UserRole == model.UserRoleAdmin {
		return Status{Authorized: true, Reason: ReasonPermanentAdmin}
	}

	ids := resolveMemberIdentity(req)
	if len(ids) == 0 {
		return Status{Reason: ReasonNoRights}
	}

	info := ComputeTransition(req.Schedule, req.Location, req.Now)

	if info.CurrentWeekActive && ids[info.CurrentWeekToastmaster] {
		return Status{
			Authorized: true,
			Reason:     ReasonCurrentWeekToastmaster,
			WeekInfo: &WeekInfo{
				WeekIndex:     info.CurrentWeekIndex,
				MeetingDate:   req.Schedule.Meetings[info.CurrentWeekIndex].Date,
				IsCurrentWeek: true,
			},
		}
	}

	if info.NextWeekActive && ids[info.NextWeekToastmaster] {
		return Status{
			Authorized: true,
			Reason:     ReasonNextWeekToastmaster,
			WeekInfo: &WeekInfo{
				WeekIndex:   info.NextWeekIndex,
				MeetingDate: req.Schedule.Meetings[info.NextWeekIndex].Date,
				IsNextWeek:  true,
			},
		}
	}

	return Status{Reason: ReasonNoRights}
}

// CanSelfUnassignToastmaster decides whether the requesting user may remove
// themself from the Toastmaster role of the meeting at targetWeekIndex. A
// current-week Toastmaster is blocked inside the 24-hour buffer before the
// meeting; a next-week Toastmaster touching their own future meeting has no
// cooldown.
func CanSelfUnassignToastmaster(req Request, targetWeekIndex int) UnassignDecision {
	if req.UserRole == model.UserRoleAdmin {
		return UnassignDecision{Allowed: true, Reason: ReasonPermanentAdmin}
	}

	ids := resolveMemberIdentity(req)
	if len(ids) == 0 {
		return UnassignDecision{Reason: ReasonUserNotFound}
	}

	info := ComputeTransition(req.Schedule, req.Location, req.Now)

	if info.CurrentWeekActive && ids[info.CurrentWeekToastmaster] {
		meeting := req.Schedule.Meetings[info.CurrentWeekIndex]
		date, ok := meetingDate(meeting, req.Location)
		if !ok {
			return UnassignDecision{Reason: ReasonInvalidMeetingDate}
		}

		hoursUntil := date.Sub(req.Now).Hours()
		if hoursUntil < selfUnassignBuffer.Hours() {
			return UnassignDecision{
				Reason:         ReasonBufferProtectionActive,
				HoursRemaining: max(0, hoursUntil),
			}
		}
		return UnassignDecision{Allowed: true, Reason: ReasonCurrentWeekToastmaster}
	}

	if info.NextWeekActive && ids[info.NextWeekToastmaster] {
		return UnassignDecision{Allowed: true, Reason: ReasonNextWeekToastmaster}
	}

	// Not the current or next week editor; check the specific target meeting
	if req.Schedule != nil && targetWeekIndex >= 0 && targetWeekIndex < len(req.Schedule.Meetings) {
		target := req.Schedule.Meetings[targetWeekIndex]
		if ids[target.Assignments[model.RoleToastmaster]] {
			if date, ok := meetingDate(target, req.Location); ok {
				hoursUntil := date.Sub(req.Now).Hours()
				if hoursUntil > 0 && hoursUntil < selfUnassignBuffer.Hours() {
					return UnassignDecision{
						Reason:         ReasonBufferProtectionActive,
						HoursRemaining: hoursUntil,
					}
				}
			}
			return UnassignDecision{Allowed: true, Reason: ReasonTargetWeekToastmaster}
		}
	}

	return UnassignDecision{Reason: ReasonNoRights}
}

// resolveMemberIdentity maps the requesting user onto the set of IDs an
// assignment value might carry for them. Assignments may reference either the
// scheduling-roster member ID or the linked account ID, because the two
// rosters are not always reconciled upstream; both resolve through the one
// member record here.
func resolveMemberIdentity(req Request) map[string]bool {
	ids := make(map[string]bool)

	for _, m := range req.Members {
		if m.ID == req.UserID || (m.AccountID != "" && m.AccountID == req.UserID) {
			ids[m.ID] = true
			if m.AccountID != "" {
				ids[m.AccountID] = true
			}
			return ids
		}
	}

	if req.Organization != nil {
		for _, u := range req.Organization.Members {
			if u.UID == req.UserID {
				ids[u.UID] = true
				return ids
			}
		}
	}

	return ids
}

// meetingDate parses a meeting's date at local midnight in the club timezone
func meetingDate(meeting model.Meeting, loc *time.Location) (time.Time, bool) {
	if meeting.Date == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	date, err := time.ParseInLocation("2006-01-02", meeting.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// endOfDay is the last second of dayStart's calendar day in its location,
// regardless of how many clock hours the day holds.
func endOfDay(dayStart time.Time) time.Time {
	return time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 23, 59, 59, 0, dayStart.Location())
}
