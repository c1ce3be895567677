package scheduler

import (
	"math/rand"
	"sort"
	"time"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// session carries the assignment state threaded through one generation call.
// It is scoped to a single Generate/Regenerate invocation so the scheduler
// stays safe to run concurrently for different clubs.
type session struct {
	rng      *rand.Rand
	eligible []model.Member
	avail    map[string]model.MemberAvailability

	// cross-month memory from the previous calendar month's schedule
	prevMonthSpeakers   map[string]bool
	prevMonthEvaluators map[string]bool

	// within-month memory
	roleHistory       map[string]map[model.Role]bool
	monthlySpeakers   map[string]bool
	monthlyEvaluators map[string]bool
}

func newSession(input GenerateInput) *session {
	rng := input.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	eligible := make([]model.Member, 0, len(input.Members))
	for _, m := range input.Members {
		if m.Status != model.StatusActive {
			continue
		}
		if input.ExcludeMemberID != "" && (m.ID == input.ExcludeMemberID || m.AccountID == input.ExcludeMemberID) {
			continue
		}
		eligible = append(eligible, m)
	}

	s := &session{
		rng:                 rng,
		eligible:            eligible,
		avail:               input.Availability,
		prevMonthSpeakers:   make(map[string]bool),
		prevMonthEvaluators: make(map[string]bool),
		roleHistory:         make(map[string]map[model.Role]bool),
		monthlySpeakers:     make(map[string]bool),
		monthlyEvaluators:   make(map[string]bool),
	}

	for _, m := range eligible {
		s.roleHistory[m.ID] = make(map[model.Role]bool)
	}

	s.loadPreviousMonth(input)

	return s
}

// loadPreviousMonth collects everyone who held a speaker or evaluator role in
// the previous calendar month's schedule, if it exists in the history.
func (s *session) loadPreviousMonth(input GenerateInput) {
	prevYear, prevMonth := input.Year, input.Month-1
	if prevMonth < 1 {
		prevMonth = 12
		prevYear--
	}
	prevID := model.ScheduleID(prevYear, prevMonth)

	for _, schedule := range input.PriorSchedules {
		if schedule.ID != prevID {
			continue
		}
		for _, meeting := range schedule.Meetings {
			for role, memberID := range meeting.Assignments {
				if memberID == "" {
					continue
				}
				if model.IsSpeakerRole(role) {
					s.prevMonthSpeakers[memberID] = true
				}
				if model.IsEvaluatorRole(role) {
					s.prevMonthEvaluators[memberID] = true
				}
			}
		}
		return
	}
}

// resolveAvailability applies the global-status override before consulting
// the per-date entry. Absent entries mean Available.
func (s *session) resolveAvailability(m model.Member, dateKey string) model.AvailabilityStatus {
	switch m.Status {
	case model.StatusUnavailable, model.StatusArchived:
		return model.Unavailable
	case model.StatusPossible:
		return model.Possible
	}
	if perDate, ok := s.avail[m.ID]; ok {
		if status, ok := perDate[dateKey]; ok {
			return status
		}
	}
	return model.Available
}

// newMeeting builds the per-meeting assignment state. The available pool is
// shuffled up front so no tier favors the roster's storage order. Possible
// members are excluded from auto-assignment entirely; they are only surfaced
// to human schedulers as a secondary pool.
func (s *session) newMeeting(dateKey string, assignments model.RoleAssignment) *meetingState {
	available := make([]model.Member, 0, len(s.eligible))
	for _, m := range s.eligible {
		status := s.resolveAvailability(m, dateKey)
		if status == model.Unavailable || status == model.Possible {
			continue
		}
		available = append(available, m)
	}
	s.shuffle(available)

	return &meetingState{
		session:     s,
		assignments: assignments,
		available:   available,
		committed:   make(map[string]bool),
	}
}

func (s *session) shuffle(members []model.Member) {
	s.rng.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})
}

// shuffled returns a shuffled copy, leaving the source pool intact
func (s *session) shuffled(members []model.Member) []model.Member {
	out := make([]model.Member, len(members))
	copy(out, members)
	s.shuffle(out)
	return out
}

// meetingState tracks one meeting's assignments and committed members
type meetingState struct {
	session     *session
	assignments model.RoleAssignment
	available   []model.Member
	committed   map[string]bool
}

// assignAll fills the meeting's roles in strict tier priority order
func (ms *meetingState) assignAll() {
	ms.assignInspiration()
	ms.assignPresident()
	ms.assignHighRoles()
	ms.assignHighFallbacks()
	ms.assignSpeakers()
	ms.assignEvaluators()
	ms.assignMinors()
	ms.reconcile()
}

// assign gives role to the first member of pool that passes the commitment
// and history checks. Returns false if the pool is exhausted.
func (ms *meetingState) assign(role model.Role, pool []model.Member) bool {
	s := ms.session
	for _, m := range pool {
		if ms.committed[m.ID] {
			continue
		}
		if model.IsSpeakerRole(role) && s.monthlySpeakers[m.ID] {
			continue
		}
		if s.roleHistory[m.ID][role] {
			continue
		}

		ms.assignments[role] = m.ID
		ms.committed[m.ID] = true
		s.roleHistory[m.ID][role] = true

		if model.IsSpeakerRole(role) {
			s.monthlySpeakers[m.ID] = true
		}
		if model.IsEvaluatorRole(role) {
			s.monthlyEvaluators[m.ID] = true
		}

		return true
	}
	return false
}

// assignInspiration fills the Inspiration Award from past presidents only
func (ms *meetingState) assignInspiration() {
	qualified := ms.filterAvailable(func(m model.Member) bool { return m.IsPastPresident })
	ms.assign(model.RoleInspirationAward, ms.session.shuffled(qualified))
}

// assignPresident fills the President role by officer priority: the sitting
// president first, the VP of education second, nobody otherwise. The chosen
// member is deliberately not committed and not entered into role history, so
// the same office-holder can hold the role every week while remaining
// eligible for other duties that day.
func (ms *meetingState) assignPresident() {
	for _, office := range []model.OfficerRole{model.OfficerPresident, model.OfficerVicePresidentEducation} {
		for _, m := range ms.available {
			if m.OfficerRole == office {
				ms.assignments[model.RolePresident] = m.ID
				return
			}
		}
	}
}

// assignHighRoles fills the qualified high-tier roles
func (ms *meetingState) assignHighRoles() {
	for _, role := range model.HighRoles {
		if role == model.RolePresident {
			continue
		}

		var qualified []model.Member
		switch role {
		case model.RoleToastmaster:
			qualified = ms.filterAvailable(func(m model.Member) bool { return m.IsToastmaster })
		case model.RoleTableTopicsMaster:
			qualified = ms.filterAvailable(func(m model.Member) bool { return m.IsTableTopicsMaster })
		case model.RoleGeneralEvaluator:
			qualified = ms.filterAvailable(func(m model.Member) bool { return m.IsGeneralEvaluator })
		}

		ms.assign(role, ms.session.shuffled(qualified))
	}
}

// assignHighFallbacks retries any unfilled inspiration or high-tier role
// against the full available pool. President is exempt: it is never filled
// from the general pool.
func (ms *meetingState) assignHighFallbacks() {
	fallbackRoles := append([]model.Role{model.RoleInspirationAward}, model.HighRoles...)
	for _, role := range fallbackRoles {
		if ms.assignments[role] != "" || role == model.RolePresident {
			continue
		}
		ms.assign(role, ms.available)
	}
}

// assignSpeakers fills the speaker tier with seniority ordering. Members who
// spoke last month are filtered out first; Speaker 1 prefers the newest
// members, the rest prefer the most senior. Exhausted pools fall back to the
// full available pool under the same ordering.
func (ms *meetingState) assignSpeakers() {
	for _, role := range model.SpeakerRoles {
		newestFirst := role == model.RoleSpeaker1

		prioritized := ms.filterAvailable(func(m model.Member) bool {
			return !ms.session.prevMonthSpeakers[m.ID]
		})
		sortBySeniority(prioritized, newestFirst)

		if !ms.assign(role, prioritized) {
			fallback := make([]model.Member, len(ms.available))
			copy(fallback, ms.available)
			sortBySeniority(fallback, newestFirst)
			ms.assign(role, fallback)
		}
	}
}

// assignEvaluators fills the evaluator tier with a three-level fallback:
// members who evaluated neither this month nor last month, then members who
// have not evaluated this month, then anyone available.
func (ms *meetingState) assignEvaluators() {
	s := ms.session
	for _, role := range model.EvaluatorRoles {
		highPriority := ms.filterAvailable(func(m model.Member) bool {
			return !s.monthlyEvaluators[m.ID] && !s.prevMonthEvaluators[m.ID]
		})
		mediumPriority := ms.filterAvailable(func(m model.Member) bool {
			return !s.monthlyEvaluators[m.ID]
		})

		if !ms.assign(role, s.shuffled(highPriority)) {
			if !ms.assign(role, s.shuffled(mediumPriority)) {
				ms.assign(role, ms.available)
			}
		}
	}
}

// assignMinors fills the minor tier from the remaining pool in catalog order
func (ms *meetingState) assignMinors() {
	for _, role := range model.MinorRoles {
		ms.assign(role, ms.available)
	}
}

// reconcile offers any still-unassigned role to any uncommitted member,
// ignoring role history. If roles remain after that, minor roles may be
// double-booked onto members already holding another minor role.
func (ms *meetingState) reconcile() {
	s := ms.session

	for _, role := range model.RoleCatalog {
		if ms.assignments[role] != "" || role == model.RolePresident {
			continue
		}
		for _, m := range s.shuffled(ms.available) {
			if ms.committed[m.ID] {
				continue
			}
			ms.assignments[role] = m.ID
			ms.committed[m.ID] = true
			break
		}
	}

	// Double-booking pass, minor roles only
	var doubleEligible []model.Member
	for _, m := range ms.available {
		held := ms.heldRole(m.ID)
		if held != "" && model.IsMinorRole(held) {
			doubleEligible = append(doubleEligible, m)
		}
	}
	doubleEligible = s.shuffled(doubleEligible)

	for _, role := range model.RoleCatalog {
		if ms.assignments[role] != "" || !model.IsMinorRole(role) {
			continue
		}
		if len(doubleEligible) == 0 {
			break
		}
		m := doubleEligible[len(doubleEligible)-1]
		doubleEligible = doubleEligible[:len(doubleEligible)-1]
		ms.assignments[role] = m.ID
	}
}

// heldRole returns the first role assigned to the member this meeting, or ""
func (ms *meetingState) heldRole(memberID string) model.Role {
	for _, role := range model.RoleCatalog {
		if ms.assignments[role] == memberID {
			return role
		}
	}
	return ""
}

func (ms *meetingState) filterAvailable(keep func(model.Member) bool) []model.Member {
	var out []model.Member
	for _, m := range ms.available {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// sortBySeniority orders members by join date in place. Members without a
// recorded join date are seniority-neutral and keep their relative position.
func sortBySeniority(members []model.Member, newestFirst bool) {
	joined := func(m model.Member) (time.Time, bool) {
		if m.JoinedDate == "" {
			return time.Time{}, false
		}
		t, err := time.Parse("2006-01-02", m.JoinedDate)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	sort.SliceStable(members, func(i, j int) bool {
		a, okA := joined(members[i])
		b, okB := joined(members[j])
		if !okA || !okB {
			return false
		}
		if newestFirst {
			return a.After(b)
		}
		return a.Before(b)
	})
}
