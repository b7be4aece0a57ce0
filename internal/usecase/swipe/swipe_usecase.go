package swipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/letsmeet/backend/internal/domain"
)

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
}

type SwipeStore interface {
	Create(ctx context.Context, swipe *domain.Swipe) error
	HasReciprocalLike(ctx context.Context, fromUserID, toUserID int) (bool, error)
}

type MatchStore interface {
	Upsert(ctx context.Context, userAID, userBID int, matchedAt time.Time) (*domain.Match, error)
}

// QuotaGate gates like actions against the daily quota.
type QuotaGate interface {
	Allow(ctx context.Context, profile *domain.Profile) error
}

// Invalidator drops cache entries made stale by a swipe. Invalidation
// is best-effort but runs before the response is returned.
type Invalidator interface {
	FeedForUser(ctx context.Context, userID int)
	MatchesForPair(ctx context.Context, user1ID, user2ID int)
}

// Result is the outcome of a recorded swipe.
type Result struct {
	Matched bool `json:"matched"`
	MatchID *int `json:"match_id,omitempty"`
}

type UseCase struct {
	profiles    ProfileStore
	swipes      SwipeStore
	matches     MatchStore
	quota       QuotaGate
	invalidator Invalidator
	log         *zap.Logger
	now         func() time.Time
}

func NewUseCase(
	profiles ProfileStore,
	swipes SwipeStore,
	matches MatchStore,
	quota QuotaGate,
	invalidator Invalidator,
	log *zap.Logger,
) *UseCase {
	return &UseCase{
		profiles:    profiles,
		swipes:      swipes,
		matches:     matches,
		quota:       quota,
		invalidator: invalidator,
		log:         log,
		now:         time.Now,
	}
}

// RecordSwipe validates and appends a swipe, detects a reciprocal like
// and, if one exists, creates or reactivates the match for the pair.
func (uc *UseCase) RecordSwipe(ctx context.Context, userID, targetID int, action domain.SwipeAction) (Result, error) {
	if !action.Valid() {
		return Result{}, domain.ErrInvalidSwipeAction
	}
	if userID == targetID {
		return Result{}, domain.ErrCannotSwipeSelf
	}

	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("load swiper profile: %w", err)
	}

	// Only like actions are quota-gated; passes are free.
	if action.IsLike() {
		if err := uc.quota.Allow(ctx, profile); err != nil {
			return Result{}, err
		}
	}

	swipe := &domain.Swipe{
		UserID:       userID,
		TargetUserID: targetID,
		Action:       action,
	}
	if err := uc.swipes.Create(ctx, swipe); err != nil {
		if errors.Is(err, domain.ErrSwipeAlreadyExists) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("record swipe: %w", err)
	}

	// The swipe is committed. The match check and invalidation below
	// run detached from the caller: a disconnect here would otherwise
	// leave a recorded like whose match was never checked, and the
	// duplicate-swipe constraint makes that unrepairable.
	ctx = context.WithoutCancel(ctx)

	result := Result{}
	if action.IsLike() {
		reciprocal, err := uc.swipes.HasReciprocalLike(ctx, targetID, userID)
		if err != nil {
			return Result{}, fmt.Errorf("check reciprocal like: %w", err)
		}
		if reciprocal {
			match, err := uc.matches.Upsert(ctx, userID, targetID, uc.now().UTC())
			if err != nil {
				return Result{}, fmt.Errorf("upsert match: %w", err)
			}
			matchID := match.ID
			result = Result{Matched: true, MatchID: &matchID}
			uc.log.Info("match created",
				zap.Int("match_id", match.ID),
				zap.Int("user1_id", match.User1ID),
				zap.Int("user2_id", match.User2ID),
			)
		}
	}

	// The swipe changed what the actor's feed should contain; a match
	// changed both users' match lists.
	uc.invalidator.FeedForUser(ctx, userID)
	if result.Matched {
		uc.invalidator.MatchesForPair(ctx, userID, targetID)
	}

	return result, nil
}
