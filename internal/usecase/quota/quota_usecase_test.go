package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/letsmeet/backend/internal/domain"
)

type counterStub struct {
	count     int
	err       error
	calls     int
	lastSince time.Time
	lastUser  int
}

func (s *counterStub) CountLikesSince(_ context.Context, userID int, since time.Time) (int, error) {
	s.calls++
	s.lastUser = userID
	s.lastSince = since
	return s.count, s.err
}

func newTracker(counter *counterStub, limit int, now time.Time) *Tracker {
	t := NewTracker(counter, limit)
	t.now = func() time.Time { return now }
	return t
}

func TestAllowUnderLimit(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	counter := &counterStub{count: 49}
	tracker := newTracker(counter, 50, now)

	profile := &domain.Profile{UserID: 7}
	if err := tracker.Allow(context.Background(), profile); err != nil {
		t.Fatalf("expected swipe %d to be allowed, got %v", counter.count+1, err)
	}

	if counter.lastUser != 7 {
		t.Fatalf("counted wrong user: got %d", counter.lastUser)
	}
	wantSince := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !counter.lastSince.Equal(wantSince) {
		t.Fatalf("wrong day start: got %v want %v", counter.lastSince, wantSince)
	}
}

func TestAllowAtLimit(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	counter := &counterStub{count: 50}
	tracker := newTracker(counter, 50, now)

	err := tracker.Allow(context.Background(), &domain.Profile{UserID: 7})

	var limitErr *domain.DailyLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected DailyLimitError, got %v", err)
	}
	if limitErr.Limit != 50 {
		t.Fatalf("limit error carries wrong limit: got %d", limitErr.Limit)
	}
}

func TestPremiumBypassesTracker(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	counter := &counterStub{count: 100}
	tracker := newTracker(counter, 50, now)

	profile := &domain.Profile{UserID: 7, IsPremium: true}
	if err := tracker.Allow(context.Background(), profile); err != nil {
		t.Fatalf("premium user should never be rate limited, got %v", err)
	}
	if counter.calls != 0 {
		t.Fatalf("premium bypass must not query the ledger, got %d calls", counter.calls)
	}
}

func TestUsageFreeTier(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	counter := &counterStub{count: 12}
	tracker := newTracker(counter, 50, now)

	stats, err := tracker.Usage(context.Background(), &domain.Profile{UserID: 7})
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if stats.Count != 12 {
		t.Fatalf("unexpected count: got %d", stats.Count)
	}
	if stats.Limit == nil || *stats.Limit != 50 {
		t.Fatalf("expected limit 50, got %+v", stats.Limit)
	}
}

func TestUsagePremiumHasNoLimit(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	counter := &counterStub{count: 120}
	tracker := newTracker(counter, 50, now)

	stats, err := tracker.Usage(context.Background(), &domain.Profile{UserID: 7, IsPremium: true})
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if stats.Limit != nil {
		t.Fatalf("premium stats must report unlimited, got limit %d", *stats.Limit)
	}
	if stats.Count != 120 {
		t.Fatalf("unexpected count: got %d", stats.Count)
	}
}

func TestDayBoundaryUsesUTC(t *testing.T) {
	// 01:30 in UTC+3 is still the previous UTC day.
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 3, 15, 1, 30, 0, 0, loc)
	counter := &counterStub{}
	tracker := newTracker(counter, 50, now)

	_ = tracker.Allow(context.Background(), &domain.Profile{UserID: 7})

	wantSince := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if !counter.lastSince.Equal(wantSince) {
		t.Fatalf("wrong UTC day start: got %v want %v", counter.lastSince, wantSince)
	}
}
