package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/letsmeet/backend/internal/domain"
	"github.com/letsmeet/backend/internal/repository"
)

// Invalidator drops caches made stale by a profile edit.
type Invalidator interface {
	FeedForUser(ctx context.Context, userID int)
}

type UseCase struct {
	profiles    repository.ProfileRepository
	invalidator Invalidator
}

func NewUseCase(profiles repository.ProfileRepository, invalidator Invalidator) *UseCase {
	return &UseCase{
		profiles:    profiles,
		invalidator: invalidator,
	}
}

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left unchanged.
type UpdateProfileRequest struct {
	DisplayName      *string   `json:"display_name"`
	Bio              *string   `json:"bio"`
	City             *string   `json:"city"`
	LookingFor       *[]string `json:"looking_for"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	Photos           *[]string `json:"photos"`
	Interests        *[]string `json:"interests"`
	RelationshipGoal *string   `json:"relationship_goal"`
	MaxDistanceKm    *int      `json:"max_distance_km"`
	AgeRangeMin      *int      `json:"age_range_min" binding:"omitempty,min=18"`
	AgeRangeMax      *int      `json:"age_range_max" binding:"omitempty,max=99"`
	IsActive         *bool     `json:"is_active"`
}

func (uc *UseCase) GetMyProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies a partial update. Edits can change what the
// user's feed should contain (location, preferences, activity), so the
// editor's feed caches are dropped.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.City != nil {
		profile.City = req.City
	}
	if req.LookingFor != nil {
		profile.LookingFor = *req.LookingFor
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		profile.Longitude = req.Longitude
	}
	if req.Photos != nil {
		profile.Photos = *req.Photos
	}
	if req.Interests != nil {
		profile.Interests = *req.Interests
	}
	if req.RelationshipGoal != nil {
		profile.RelationshipGoal = req.RelationshipGoal
	}
	if req.MaxDistanceKm != nil {
		profile.MaxDistanceKm = req.MaxDistanceKm
	}
	if req.AgeRangeMin != nil {
		profile.AgeRangeMin = req.AgeRangeMin
	}
	if req.AgeRangeMax != nil {
		profile.AgeRangeMax = req.AgeRangeMax
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	uc.invalidator.FeedForUser(ctx, userID)

	return profile, nil
}

// TouchLastActive refreshes last_active; used by the request path so
// activity recency in ranking stays current. Best-effort.
func (uc *UseCase) TouchLastActive(ctx context.Context, userID int) error {
	return uc.profiles.TouchLastActive(ctx, userID)
}
