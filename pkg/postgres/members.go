package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// GetMembers retrieves the full scheduling roster
func (d *DB) GetMembers(ctx context.Context) ([]model.Member, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, status, is_toastmaster, is_table_topics_master,
		       is_general_evaluator, is_past_president, officer_role,
		       joined_date, account_id
		FROM member
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		var status, officerRole string
		var joined *time.Time
		if err := rows.Scan(&m.ID, &m.Name, &status, &m.IsToastmaster, &m.IsTableTopicsMaster,
			&m.IsGeneralEvaluator, &m.IsPastPresident, &officerRole, &joined, &m.AccountID); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.Status = model.MemberStatus(status)
		m.OfficerRole = model.OfficerRole(officerRole)
		if joined != nil {
			m.JoinedDate = joined.Format("2006-01-02")
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

// UpsertMembers inserts or updates roster records by member ID
func (d *DB) UpsertMembers(ctx context.Context, members []model.Member) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range members {
		var joined *string
		if m.JoinedDate != "" {
			joined = &m.JoinedDate
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO member (id, name, status, is_toastmaster, is_table_topics_master,
			                    is_general_evaluator, is_past_president, officer_role,
			                    joined_date, account_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				is_toastmaster = EXCLUDED.is_toastmaster,
				is_table_topics_master = EXCLUDED.is_table_topics_master,
				is_general_evaluator = EXCLUDED.is_general_evaluator,
				is_past_president = EXCLUDED.is_past_president,
				officer_role = EXCLUDED.officer_role,
				joined_date = EXCLUDED.joined_date,
				account_id = EXCLUDED.account_id
		`, m.ID, m.Name, string(m.Status), m.IsToastmaster, m.IsTableTopicsMaster,
			m.IsGeneralEvaluator, m.IsPastPresident, string(m.OfficerRole), joined, m.AccountID)
		if err != nil {
			return fmt.Errorf("failed to upsert member %s: %w", m.ID, err)
		}
	}

	return tx.Commit(ctx)
}
