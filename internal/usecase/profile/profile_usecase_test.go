package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/letsmeet/backend/internal/domain"
)

type profileRepoStub struct {
	profile *domain.Profile
	updated *domain.Profile
	touched []int
}

func (s *profileRepoStub) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	if s.profile == nil || s.profile.UserID != userID {
		return nil, domain.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *profileRepoStub) ListCandidates(context.Context, int, time.Time) ([]*domain.Profile, error) {
	return nil, nil
}

func (s *profileRepoStub) Update(_ context.Context, profile *domain.Profile) error {
	s.updated = profile
	return nil
}

func (s *profileRepoStub) TouchLastActive(_ context.Context, userID int) error {
	s.touched = append(s.touched, userID)
	return nil
}

type invalidatorStub struct {
	feedUsers []int
}

func (s *invalidatorStub) FeedForUser(_ context.Context, userID int) {
	s.feedUsers = append(s.feedUsers, userID)
}

func strPtr(s string) *string { return &s }

func TestGetMyProfileNotFound(t *testing.T) {
	uc := NewUseCase(&profileRepoStub{}, &invalidatorStub{})

	if _, err := uc.GetMyProfile(context.Background(), 1); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected profile not found, got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := &profileRepoStub{profile: &domain.Profile{
		UserID:      1,
		DisplayName: "Sam",
		Bio:         strPtr("old bio"),
		Interests:   []string{"hiking"},
	}}
	inv := &invalidatorStub{}
	uc := NewUseCase(repo, inv)

	km := 25
	updated, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{
		Bio:           strPtr("new bio"),
		MaxDistanceKm: &km,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Bio == nil || *updated.Bio != "new bio" {
		t.Fatalf("bio not applied: %+v", updated.Bio)
	}
	if updated.MaxDistanceKm == nil || *updated.MaxDistanceKm != 25 {
		t.Fatalf("max distance not applied: %+v", updated.MaxDistanceKm)
	}
	if updated.DisplayName != "Sam" {
		t.Fatalf("untouched field changed: %q", updated.DisplayName)
	}
	if len(updated.Interests) != 1 || updated.Interests[0] != "hiking" {
		t.Fatalf("untouched interests changed: %v", updated.Interests)
	}

	if repo.updated == nil {
		t.Fatalf("update must be persisted")
	}
	if len(inv.feedUsers) != 1 || inv.feedUsers[0] != 1 {
		t.Fatalf("profile edit must drop the editor's feed caches, got %v", inv.feedUsers)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	inv := &invalidatorStub{}
	uc := NewUseCase(&profileRepoStub{}, inv)

	_, err := uc.UpdateProfile(context.Background(), 1, &UpdateProfileRequest{Bio: strPtr("x")})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected profile not found, got %v", err)
	}
	if len(inv.feedUsers) != 0 {
		t.Fatalf("failed update must not invalidate caches")
	}
}

func TestTouchLastActive(t *testing.T) {
	repo := &profileRepoStub{}
	uc := NewUseCase(repo, &invalidatorStub{})

	if err := uc.TouchLastActive(context.Background(), 7); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if len(repo.touched) != 1 || repo.touched[0] != 7 {
		t.Fatalf("expected touch for user 7, got %v", repo.touched)
	}
}
