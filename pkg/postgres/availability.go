package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// GetAvailability retrieves every per-date availability entry, keyed by
// member ID. Members with no entries are simply absent from the map.
func (d *DB) GetAvailability(ctx context.Context) (map[string]model.MemberAvailability, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT member_id, meeting_date, status
		FROM availability
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	availability := make(map[string]model.MemberAvailability)
	for rows.Next() {
		var memberID, status string
		var date time.Time
		if err := rows.Scan(&memberID, &date, &status); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		if availability[memberID] == nil {
			availability[memberID] = make(model.MemberAvailability)
		}
		availability[memberID][date.Format("2006-01-02")] = model.AvailabilityStatus(status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}

	return availability, nil
}

// SetAvailability upserts one member's availability for one meeting date
func (d *DB) SetAvailability(ctx context.Context, memberID, meetingDate string, status model.AvailabilityStatus) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO availability (member_id, meeting_date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (member_id, meeting_date) DO UPDATE SET status = EXCLUDED.status
	`, memberID, meetingDate, string(status))
	if err != nil {
		return fmt.Errorf("failed to set availability for %s on %s: %w", memberID, meetingDate, err)
	}
	return nil
}
