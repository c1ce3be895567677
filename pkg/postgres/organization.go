package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// GetOrganization retrieves the club record with its account roster.
// Returns nil without error when no club has been configured yet.
func (d *DB) GetOrganization(ctx context.Context) (*model.Organization, error) {
	var org model.Organization
	err := d.pool.QueryRow(ctx, `
		SELECT name, district, club_number, owner_id, meeting_day, timezone
		FROM organization
		WHERE id = 'club'
	`).Scan(&org.Name, &org.District, &org.ClubNumber, &org.OwnerID, &org.MeetingDay, &org.Timezone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query organization: %w", err)
	}

	rows, err := d.pool.Query(ctx, `
		SELECT uid, email, name, role, officer_role
		FROM org_user
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query org users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u model.AppUser
		var role, officerRole string
		if err := rows.Scan(&u.UID, &u.Email, &u.Name, &role, &officerRole); err != nil {
			return nil, fmt.Errorf("failed to scan org user: %w", err)
		}
		u.Role = model.UserRole(role)
		u.OfficerRole = model.OfficerRole(officerRole)
		org.Members = append(org.Members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating org users: %w", err)
	}

	return &org, nil
}

// SaveOrganization upserts the club record and replaces its account roster
func (d *DB) SaveOrganization(ctx context.Context, org *model.Organization) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO organization (id, name, district, club_number, owner_id, meeting_day, timezone)
		VALUES ('club', $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			district = EXCLUDED.district,
			club_number = EXCLUDED.club_number,
			owner_id = EXCLUDED.owner_id,
			meeting_day = EXCLUDED.meeting_day,
			timezone = EXCLUDED.timezone
	`, org.Name, org.District, org.ClubNumber, org.OwnerID, org.MeetingDay, org.Timezone)
	if err != nil {
		return fmt.Errorf("failed to upsert organization: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM org_user`); err != nil {
		return fmt.Errorf("failed to clear org users: %w", err)
	}

	for _, u := range org.Members {
		_, err := tx.Exec(ctx, `
			INSERT INTO org_user (uid, email, name, role, officer_role)
			VALUES ($1, $2, $3, $4, $5)
		`, u.UID, u.Email, u.Name, string(u.Role), string(u.OfficerRole))
		if err != nil {
			return fmt.Errorf("failed to insert org user %s: %w", u.UID, err)
		}
	}

	return tx.Commit(ctx)
}
