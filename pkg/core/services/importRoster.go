package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
	"github.com/jwhitfield/club-scheduler/pkg/db"
)

// RosterClient fetches the member roster from the club's spreadsheet
type RosterClient interface {
	ListMembers() ([]model.Member, error)
}

// ImportRoster pulls the member roster from the configured spreadsheet and
// upserts it into the store. Existing members keep their ID; rows are matched
// by the sheet's unique ID column.
func ImportRoster(ctx context.Context, store db.MemberStore, client RosterClient, logger *zap.Logger) ([]model.Member, error) {
	logger.Debug("Importing roster from spreadsheet")

	imported, err := client.ListMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to list members from sheet: %w", err)
	}
	if len(imported) == 0 {
		return nil, fmt.Errorf("spreadsheet contains no members")
	}

	for i, m := range imported {
		if m.ID == "" {
			return nil, fmt.Errorf("row %d has no member ID", i+1)
		}
	}

	if err := store.UpsertMembers(ctx, imported); err != nil {
		return nil, fmt.Errorf("failed to upsert members: %w", err)
	}

	logger.Info("Roster imported", zap.Int("members", len(imported)))

	return imported, nil
}
