package repository

import (
	"context"
	"time"

	"github.com/letsmeet/backend/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	// ListCandidates returns active profiles visible to forUserID: self
	// and already-swiped targets are excluded, and free users inactive
	// since activeSince are suppressed. Finer eligibility (gender, age,
	// distance) is applied by the ranking engine.
	ListCandidates(ctx context.Context, forUserID int, activeSince time.Time) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	TouchLastActive(ctx context.Context, userID int) error
}
