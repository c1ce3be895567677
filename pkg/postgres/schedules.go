package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// GetSchedules retrieves every stored monthly schedule, oldest first
func (d *DB) GetSchedules(ctx context.Context) ([]model.MonthlySchedule, error) {
	rows, err := d.pool.Query(ctx, `SELECT id, year, month FROM schedule`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}

	var schedules []model.MonthlySchedule
	for rows.Next() {
		var s model.MonthlySchedule
		if err := rows.Scan(&s.ID, &s.Year, &s.Month); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}
	rows.Close()

	for i := range schedules {
		meetings, err := d.loadMeetings(ctx, schedules[i].ID)
		if err != nil {
			return nil, err
		}
		schedules[i].Meetings = meetings
	}

	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].ID < schedules[j].ID
	})

	return schedules, nil
}

// GetSchedule retrieves one schedule by its "YYYY-MM" identifier.
// Returns nil without error when the schedule does not exist.
func (d *DB) GetSchedule(ctx context.Context, id string) (*model.MonthlySchedule, error) {
	var s model.MonthlySchedule
	err := d.pool.QueryRow(ctx, `SELECT id, year, month FROM schedule WHERE id = $1`, id).
		Scan(&s.ID, &s.Year, &s.Month)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule %s: %w", id, err)
	}

	meetings, err := d.loadMeetings(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Meetings = meetings

	return &s, nil
}

func (d *DB) loadMeetings(ctx context.Context, scheduleID string) ([]model.Meeting, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT idx, meeting_date, theme, is_blackout
		FROM meeting
		WHERE schedule_id = $1
		ORDER BY idx
	`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings for %s: %w", scheduleID, err)
	}

	var meetings []model.Meeting
	var indices []int
	for rows.Next() {
		var idx int
		var date time.Time
		var m model.Meeting
		if err := rows.Scan(&idx, &date, &m.Theme, &m.IsBlackout); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		m.Date = date.Format("2006-01-02")
		m.Assignments = make(model.RoleAssignment, len(model.RoleCatalog))
		for _, role := range model.RoleCatalog {
			m.Assignments[role] = ""
		}
		meetings = append(meetings, m)
		indices = append(indices, idx)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating meetings: %w", err)
	}
	rows.Close()

	assignRows, err := d.pool.Query(ctx, `
		SELECT meeting_idx, role, member_id
		FROM assignment
		WHERE schedule_id = $1
	`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for %s: %w", scheduleID, err)
	}
	defer assignRows.Close()

	byIdx := make(map[int]int, len(indices))
	for pos, idx := range indices {
		byIdx[idx] = pos
	}

	for assignRows.Next() {
		var meetingIdx int
		var role string
		var memberID *string
		if err := assignRows.Scan(&meetingIdx, &role, &memberID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		pos, ok := byIdx[meetingIdx]
		if !ok {
			continue
		}
		if memberID != nil {
			meetings[pos].Assignments[model.Role(role)] = *memberID
		}
	}
	if err := assignRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return meetings, nil
}

// SaveSchedule upserts a schedule, replacing its meetings and assignments
func (d *DB) SaveSchedule(ctx context.Context, schedule *model.MonthlySchedule) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule (id, year, month)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET year = EXCLUDED.year, month = EXCLUDED.month
	`, schedule.ID, schedule.Year, schedule.Month)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule %s: %w", schedule.ID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM meeting WHERE schedule_id = $1`, schedule.ID); err != nil {
		return fmt.Errorf("failed to clear meetings for %s: %w", schedule.ID, err)
	}

	for idx, meeting := range schedule.Meetings {
		_, err := tx.Exec(ctx, `
			INSERT INTO meeting (schedule_id, idx, meeting_date, theme, is_blackout)
			VALUES ($1, $2, $3, $4, $5)
		`, schedule.ID, idx, meeting.Date, meeting.Theme, meeting.IsBlackout)
		if err != nil {
			return fmt.Errorf("failed to insert meeting %d for %s: %w", idx, schedule.ID, err)
		}

		for role, memberID := range meeting.Assignments {
			var value *string
			if memberID != "" {
				v := memberID
				value = &v
			}
			_, err := tx.Exec(ctx, `
				INSERT INTO assignment (schedule_id, meeting_idx, role, member_id)
				VALUES ($1, $2, $3, $4)
			`, schedule.ID, idx, string(role), value)
			if err != nil {
				return fmt.Errorf("failed to insert assignment %s/%d/%s: %w", schedule.ID, idx, role, err)
			}
		}
	}

	return tx.Commit(ctx)
}

// UpdateAssignment sets a single role assignment; an empty member ID clears it
func (d *DB) UpdateAssignment(ctx context.Context, scheduleID string, meetingIndex int, role model.Role, memberID string) error {
	var value *string
	if memberID != "" {
		value = &memberID
	}
	_, err := d.pool.Exec(ctx, `
		INSERT INTO assignment (schedule_id, meeting_idx, role, member_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (schedule_id, meeting_idx, role) DO UPDATE SET member_id = EXCLUDED.member_id
	`, scheduleID, meetingIndex, string(role), value)
	if err != nil {
		return fmt.Errorf("failed to update assignment %s/%d/%s: %w", scheduleID, meetingIndex, role, err)
	}
	return nil
}
