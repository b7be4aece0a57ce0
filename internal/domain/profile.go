package domain

import "time"

// Defaults applied when a profile leaves preference fields unset.
const (
	DefaultAgeRangeMin   = 18
	DefaultAgeRangeMax   = 99
	DefaultMaxDistanceKm = 50
)

type Profile struct {
	ID               int       `json:"id" db:"id"`
	UserID           int       `json:"user_id" db:"user_id"`
	DisplayName      string    `json:"display_name" db:"display_name"`
	Age              int       `json:"age" db:"age"`
	Gender           string    `json:"gender" db:"gender"`
	LookingFor       []string  `json:"looking_for" db:"looking_for"`
	Bio              *string   `json:"bio" db:"bio"`
	City             *string   `json:"city" db:"city"`
	Latitude         *float64  `json:"latitude" db:"latitude"`
	Longitude        *float64  `json:"longitude" db:"longitude"`
	Photos           []string  `json:"photos" db:"photos"`
	Interests        []string  `json:"interests" db:"interests"`
	RelationshipGoal *string   `json:"relationship_goal" db:"relationship_goal"`
	MaxDistanceKm    *int      `json:"max_distance_km" db:"max_distance_km"`
	AgeRangeMin      *int      `json:"age_range_min" db:"age_range_min"`
	AgeRangeMax      *int      `json:"age_range_max" db:"age_range_max"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	LastActive       time.Time `json:"last_active" db:"last_active"`
	IsPremium        bool      `json:"is_premium" db:"is_premium"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// AgeRange returns the accepted age bounds with defaults applied.
func (p *Profile) AgeRange() (int, int) {
	min, max := DefaultAgeRangeMin, DefaultAgeRangeMax
	if p.AgeRangeMin != nil {
		min = *p.AgeRangeMin
	}
	if p.AgeRangeMax != nil {
		max = *p.AgeRangeMax
	}
	return min, max
}

// MaxDistance returns the discovery radius in km with the default applied.
func (p *Profile) MaxDistance() int {
	if p.MaxDistanceKm != nil {
		return *p.MaxDistanceKm
	}
	return DefaultMaxDistanceKm
}

func (p *Profile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Accepts reports whether gender is in the profile's looking_for set.
func (p *Profile) Accepts(gender string) bool {
	for _, g := range p.LookingFor {
		if g == gender {
			return true
		}
	}
	return false
}
