package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
	"github.com/jwhitfield/club-scheduler/pkg/db"
)

// SetAvailabilityStore is the store surface availability updates need
type SetAvailabilityStore interface {
	db.MemberStore
	db.AvailabilityStore
}

// SetAvailability records a member's availability for one meeting date
func SetAvailability(ctx context.Context, store SetAvailabilityStore, logger *zap.Logger, memberID, meetingDate string, status model.AvailabilityStatus) error {
	switch status {
	case model.Available, model.Unavailable, model.Possible:
	default:
		return fmt.Errorf("invalid availability status %q", status)
	}

	if _, err := time.Parse("2006-01-02", meetingDate); err != nil {
		return fmt.Errorf("invalid meeting date %q: %w", meetingDate, err)
	}

	members, err := store.GetMembers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}
	found := false
	for _, m := range members {
		if m.ID == memberID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown member %q", memberID)
	}

	if err := store.SetAvailability(ctx, memberID, meetingDate, status); err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}

	logger.Info("Availability updated",
		zap.String("member_id", memberID),
		zap.String("meeting_date", meetingDate),
		zap.String("status", string(status)))

	return nil
}
