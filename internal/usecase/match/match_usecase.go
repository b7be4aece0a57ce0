package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/letsmeet/backend/internal/cache"
	"github.com/letsmeet/backend/internal/domain"
)

type MatchStore interface {
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	ListWithProfiles(ctx context.Context, userID int) ([]*domain.MatchWithProfile, error)
	UpdateStatus(ctx context.Context, id int, isActive bool) error
}

type Invalidator interface {
	MatchesForPair(ctx context.Context, user1ID, user2ID int)
	MessagesForMatch(ctx context.Context, matchID int)
}

type UseCase struct {
	matches     MatchStore
	cache       cache.Store
	invalidator Invalidator
	log         *zap.Logger
}

func NewUseCase(matches MatchStore, cacheStore cache.Store, invalidator Invalidator, log *zap.Logger) *UseCase {
	return &UseCase{
		matches:     matches,
		cache:       cacheStore,
		invalidator: invalidator,
		log:         log,
	}
}

// ListMatches returns the user's active matches with the other
// participant's profile summary, most recently touched first.
func (uc *UseCase) ListMatches(ctx context.Context, userID int) ([]*domain.MatchWithProfile, error) {
	key := cache.MatchesKey(userID)
	if raw, ok := uc.cache.Get(ctx, key); ok {
		var cached []*domain.MatchWithProfile
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		uc.log.Warn("discarding unreadable match list cache entry", zap.String("key", key))
	}

	matches, err := uc.matches.ListWithProfiles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	if raw, err := json.Marshal(matches); err == nil {
		uc.cache.Set(ctx, key, string(raw), cache.MatchListTTL)
	}

	return matches, nil
}

// Unmatch deactivates a match on behalf of one of its participants.
// The row is kept so a later mutual re-like reactivates the same match.
func (uc *UseCase) Unmatch(ctx context.Context, matchID, requestingUserID int) error {
	match, err := uc.matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return err
		}
		return fmt.Errorf("load match: %w", err)
	}

	if !match.HasUser(requestingUserID) {
		return domain.ErrMatchForbidden
	}

	if err := uc.matches.UpdateStatus(ctx, matchID, false); err != nil {
		return fmt.Errorf("deactivate match: %w", err)
	}

	uc.invalidator.MatchesForPair(ctx, match.User1ID, match.User2ID)
	uc.invalidator.MessagesForMatch(ctx, matchID)

	return nil
}
