package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/letsmeet/backend/internal/domain"
)

// SwipeCounter is the slice of the swipe ledger the tracker reads.
// The quota is derived from the ledger on every check: there is no
// stored counter to drift or to reset at midnight.
type SwipeCounter interface {
	CountLikesSince(ctx context.Context, userID int, since time.Time) (int, error)
}

// Stats reports a user's like usage for the current UTC day. Limit is
// nil for premium users (unlimited).
type Stats struct {
	Count int  `json:"count"`
	Limit *int `json:"limit"`
}

type Tracker struct {
	swipes SwipeCounter
	limit  int
	now    func() time.Time
}

func NewTracker(swipes SwipeCounter, freeDailyLimit int) *Tracker {
	return &Tracker{
		swipes: swipes,
		limit:  freeDailyLimit,
		now:    time.Now,
	}
}

// Allow gates a like/super_like for the given profile. Premium users
// bypass the tracker entirely, without a count query. At the limit a
// *domain.DailyLimitError carrying the limit is returned.
func (t *Tracker) Allow(ctx context.Context, profile *domain.Profile) error {
	if profile.IsPremium {
		return nil
	}

	count, err := t.swipes.CountLikesSince(ctx, profile.UserID, t.dayStart())
	if err != nil {
		return fmt.Errorf("count daily likes: %w", err)
	}
	if count >= t.limit {
		return &domain.DailyLimitError{Limit: t.limit}
	}
	return nil
}

// Usage returns today's like count and the applicable limit.
func (t *Tracker) Usage(ctx context.Context, profile *domain.Profile) (Stats, error) {
	count, err := t.swipes.CountLikesSince(ctx, profile.UserID, t.dayStart())
	if err != nil {
		return Stats{}, fmt.Errorf("count daily likes: %w", err)
	}

	stats := Stats{Count: count}
	if !profile.IsPremium {
		limit := t.limit
		stats.Limit = &limit
	}
	return stats, nil
}

// dayStart is midnight of the current UTC calendar day. Counting resets
// implicitly at the boundary because the ledger is filtered by it.
func (t *Tracker) dayStart() time.Time {
	now := t.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
