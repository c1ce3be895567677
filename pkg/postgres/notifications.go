package postgres

import (
	"context"
	"fmt"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// InsertNotifications stores notification records for later delivery
func (d *DB) InsertNotifications(ctx context.Context, notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, n := range notifications {
		_, err := tx.Exec(ctx, `
			INSERT INTO notification (id, member_id, type, title, message, schedule_id, meeting_date, role)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, n.ID, n.MemberID, string(n.Type), n.Title, n.Message,
			n.Metadata.ScheduleID, n.Metadata.MeetingDate, string(n.Metadata.Role))
		if err != nil {
			return fmt.Errorf("failed to insert notification %s: %w", n.ID, err)
		}
	}

	return tx.Commit(ctx)
}
