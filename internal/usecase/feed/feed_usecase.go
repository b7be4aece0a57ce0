package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/letsmeet/backend/internal/cache"
	"github.com/letsmeet/backend/internal/domain"
)

const (
	// Free profiles inactive longer than this are suppressed from
	// discovery; premium profiles are always shown.
	inactivityWindow = 30 * 24 * time.Hour

	earthRadiusKm = 6371.0

	MaxFeedLimit = 100
)

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	ListCandidates(ctx context.Context, forUserID int, activeSince time.Time) ([]*domain.Profile, error)
}

// CandidateProfile is one feed entry: the candidate's public profile
// plus the requester-relative distance and shared interests.
type CandidateProfile struct {
	UserID           int      `json:"user_id"`
	DisplayName      string   `json:"display_name"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	Bio              *string  `json:"bio"`
	City             *string  `json:"city"`
	Photos           []string `json:"photos"`
	Interests        []string `json:"interests"`
	RelationshipGoal *string  `json:"relationship_goal"`
	DistanceKm       *int     `json:"distance_km,omitempty"`
	SharedInterests  []string `json:"shared_interests"`
}

type UseCase struct {
	profiles ProfileStore
	cache    cache.Store
	log      *zap.Logger
	now      func() time.Time
	randFn   func() float64
}

func NewUseCase(profiles ProfileStore, cacheStore cache.Store, log *zap.Logger) *UseCase {
	return &UseCase{
		profiles: profiles,
		cache:    cacheStore,
		log:      log,
		now:      time.Now,
		randFn:   rand.Float64,
	}
}

// GetFeed returns the ranked candidate list for a user. Results are
// cached per (user, limit); the cache is read-through and fail-open.
func (uc *UseCase) GetFeed(ctx context.Context, userID, limit int) ([]CandidateProfile, error) {
	if limit < 1 || limit > MaxFeedLimit {
		return nil, domain.ErrInvalidFeedLimit
	}

	key := cache.FeedKey(userID, limit)
	if raw, ok := uc.cache.Get(ctx, key); ok {
		var cached []CandidateProfile
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		// Corrupt cache entry, fall through to the source of truth.
		uc.log.Warn("discarding unreadable feed cache entry", zap.String("key", key))
	}

	eligible, err := uc.eligibleCandidates(ctx, userID)
	if err != nil {
		return nil, err
	}

	uc.sortRanked(eligible)
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}

	feed := make([]CandidateProfile, 0, len(eligible))
	for _, s := range eligible {
		feed = append(feed, s.toCandidate())
	}

	if raw, err := json.Marshal(feed); err == nil {
		uc.cache.Set(ctx, key, string(raw), cache.FeedTTL)
	}

	return feed, nil
}

// GetFeedCount returns how many profiles are currently discoverable for
// the user, cached separately from feed pages with a longer TTL.
func (uc *UseCase) GetFeedCount(ctx context.Context, userID int) (int, error) {
	key := cache.FeedCountKey(userID)
	if raw, ok := uc.cache.Get(ctx, key); ok {
		if count, err := strconv.Atoi(raw); err == nil {
			return count, nil
		}
	}

	eligible, err := uc.eligibleCandidates(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := len(eligible)
	uc.cache.Set(ctx, key, strconv.Itoa(count), cache.FeedCountTTL)
	return count, nil
}

type scoredCandidate struct {
	profile       *domain.Profile
	hoursInactive float64
	completeness  int
	distanceKm    float64
	shared        []string
	jitter        float64
}

// eligibleCandidates loads the requester and applies the full
// eligibility filter. The repository already excluded self, inactive
// accounts, already-swiped targets and stale free profiles.
func (uc *UseCase) eligibleCandidates(ctx context.Context, userID int) ([]*scoredCandidate, error) {
	requester, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("load requester profile: %w", err)
	}

	now := uc.now()
	candidates, err := uc.profiles.ListCandidates(ctx, userID, now.Add(-inactivityWindow))
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	maxDistance := float64(requester.MaxDistance())
	rMin, rMax := requester.AgeRange()

	var eligible []*scoredCandidate
	for _, c := range candidates {
		// Both sides must want each other's gender and age.
		if !requester.Accepts(c.Gender) || !c.Accepts(requester.Gender) {
			continue
		}
		if c.Age < rMin || c.Age > rMax {
			continue
		}
		cMin, cMax := c.AgeRange()
		if requester.Age < cMin || requester.Age > cMax {
			continue
		}

		// A distance cap always applies (default 50 km), so a pair with
		// unknown distance is treated as out of range.
		if !requester.HasLocation() || !c.HasLocation() {
			continue
		}
		distance := haversineKm(*requester.Latitude, *requester.Longitude, *c.Latitude, *c.Longitude)
		if distance > maxDistance {
			continue
		}

		eligible = append(eligible, &scoredCandidate{
			profile:       c,
			hoursInactive: now.Sub(c.LastActive).Hours(),
			completeness:  completenessScore(c),
			distanceKm:    distance,
			shared:        sharedInterests(c.Interests, requester.Interests),
			jitter:        uc.randFn(),
		})
	}

	return eligible, nil
}

// sortRanked orders candidates by recency of activity, profile
// completeness, proximity and interest overlap, with a per-query random
// tiebreak. Feed order is deliberately not stable across calls.
func (uc *UseCase) sortRanked(candidates []*scoredCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.hoursInactive != b.hoursInactive {
			return a.hoursInactive < b.hoursInactive
		}
		if a.completeness != b.completeness {
			return a.completeness > b.completeness
		}
		if a.distanceKm != b.distanceKm {
			return a.distanceKm < b.distanceKm
		}
		if len(a.shared) != len(b.shared) {
			return len(a.shared) > len(b.shared)
		}
		return a.jitter < b.jitter
	})
}

func (s *scoredCandidate) toCandidate() CandidateProfile {
	p := s.profile
	distance := int(math.Round(s.distanceKm))
	shared := s.shared
	if shared == nil {
		shared = []string{}
	}
	return CandidateProfile{
		UserID:           p.UserID,
		DisplayName:      p.DisplayName,
		Age:              p.Age,
		Gender:           p.Gender,
		Bio:              p.Bio,
		City:             p.City,
		Photos:           p.Photos,
		Interests:        p.Interests,
		RelationshipGoal: p.RelationshipGoal,
		DistanceKm:       &distance,
		SharedInterests:  shared,
	}
}

// completenessScore rewards filled-out profiles: 10 for a bio, up to 20
// for photos (capped at three), 10 for three or more interests.
func completenessScore(p *domain.Profile) int {
	score := 0
	if p.Bio != nil && *p.Bio != "" {
		score += 10
	}
	if len(p.Photos) >= 3 {
		score += 20
	} else {
		score += len(p.Photos) * 5
	}
	if len(p.Interests) >= 3 {
		score += 10
	}
	return score
}

func sharedInterests(candidate, requester []string) []string {
	if len(candidate) == 0 || len(requester) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(requester))
	for _, tag := range requester {
		set[tag] = struct{}{}
	}
	var shared []string
	for _, tag := range candidate {
		if _, ok := set[tag]; ok {
			shared = append(shared, tag)
		}
	}
	return shared
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)
	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
