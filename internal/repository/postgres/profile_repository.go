package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/letsmeet/backend/internal/domain"
	"github.com/letsmeet/backend/internal/repository"
)

const profileColumns = `
	id, user_id, display_name, age, gender, looking_for, bio, city,
	latitude, longitude, photos, interests, relationship_goal,
	max_distance_km, age_range_min, age_range_max,
	is_active, last_active, is_premium, created_at, updated_at
`

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func scanProfile(row interface{ Scan(...interface{}) error }) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.DisplayName, &profile.Age,
		&profile.Gender, pq.Array(&profile.LookingFor), &profile.Bio, &profile.City,
		&profile.Latitude, &profile.Longitude, pq.Array(&profile.Photos),
		pq.Array(&profile.Interests), &profile.RelationshipGoal,
		&profile.MaxDistanceKm, &profile.AgeRangeMin, &profile.AgeRangeMax,
		&profile.IsActive, &profile.LastActive, &profile.IsPremium,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) ListCandidates(ctx context.Context, forUserID int, activeSince time.Time) ([]*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		WHERE p.user_id != $1
		  AND p.is_active = true
		  AND (p.is_premium = true OR p.last_active >= $2)
		  AND NOT EXISTS (
		      SELECT 1 FROM swipes s
		      WHERE s.user_id = $1 AND s.target_user_id = p.user_id
		  )
	`
	rows, err := r.db.QueryContext(ctx, query, forUserID, activeSince)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, age = $2, gender = $3, looking_for = $4,
		    bio = $5, city = $6, latitude = $7, longitude = $8,
		    photos = $9, interests = $10, relationship_goal = $11,
		    max_distance_km = $12, age_range_min = $13, age_range_max = $14,
		    is_active = $15, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $16
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.Age, profile.Gender, pq.Array(profile.LookingFor),
		profile.Bio, profile.City, profile.Latitude, profile.Longitude,
		pq.Array(profile.Photos), pq.Array(profile.Interests), profile.RelationshipGoal,
		profile.MaxDistanceKm, profile.AgeRangeMin, profile.AgeRangeMax,
		profile.IsActive, profile.UserID,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProfileNotFound
		}
		return err
	}
	return nil
}

func (r *profileRepository) TouchLastActive(ctx context.Context, userID int) error {
	query := `UPDATE profiles SET last_active = CURRENT_TIMESTAMP WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
