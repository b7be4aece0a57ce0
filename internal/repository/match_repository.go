package repository

import (
	"context"
	"time"

	"github.com/letsmeet/backend/internal/domain"
)

type MatchRepository interface {
	// Upsert creates the match for the canonical pair of the two users,
	// or reactivates the existing row. Atomic with respect to concurrent
	// reciprocal swipes: at most one row ever exists per pair.
	Upsert(ctx context.Context, userAID, userBID int, matchedAt time.Time) (*domain.Match, error)
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	// ListWithProfiles returns the user's active matches joined with the
	// other participant's profile summary.
	ListWithProfiles(ctx context.Context, userID int) ([]*domain.MatchWithProfile, error)
	UpdateStatus(ctx context.Context, id int, isActive bool) error
}
