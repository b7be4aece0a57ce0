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

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// Upsert relies on the unique (user1_id, user2_id) constraint: the
// insert and the reactivation of a previously unmatched pair are one
// atomic statement, so two concurrent reciprocal swipes cannot produce
// two rows.
func (r *matchRepository) Upsert(ctx context.Context, userAID, userBID int, matchedAt time.Time) (*domain.Match, error) {
	user1ID, user2ID := domain.CanonicalPair(userAID, userBID)

	query := `
		INSERT INTO matches (user1_id, user2_id, matched_at, is_active)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (user1_id, user2_id)
		DO UPDATE SET is_active = true, updated_at = CURRENT_TIMESTAMP
		RETURNING id, user1_id, user2_id, matched_at, last_message_at, is_active, created_at, updated_at
	`
	var match domain.Match
	err := r.db.QueryRowContext(ctx, query, user1ID, user2ID, matchedAt).Scan(
		&match.ID, &match.User1ID, &match.User2ID, &match.MatchedAt,
		&match.LastMessageAt, &match.IsActive, &match.CreatedAt, &match.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	var match domain.Match
	query := `
		SELECT id, user1_id, user2_id, matched_at, last_message_at, is_active, created_at, updated_at
		FROM matches WHERE id = $1
	`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) ListWithProfiles(ctx context.Context, userID int) ([]*domain.MatchWithProfile, error) {
	query := `
		SELECT m.id, m.user1_id, m.user2_id, m.matched_at, m.last_message_at,
		       m.is_active, m.created_at, m.updated_at,
		       p.user_id, p.display_name, p.age, p.photos, p.bio
		FROM matches m
		JOIN profiles p ON p.user_id = CASE
			WHEN m.user1_id = $1 THEN m.user2_id
			ELSE m.user1_id
		END
		WHERE (m.user1_id = $1 OR m.user2_id = $1)
		  AND m.is_active = true
		ORDER BY m.last_message_at DESC NULLS LAST, m.matched_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.MatchWithProfile
	for rows.Next() {
		var m domain.MatchWithProfile
		err := rows.Scan(
			&m.ID, &m.User1ID, &m.User2ID, &m.MatchedAt, &m.LastMessageAt,
			&m.IsActive, &m.CreatedAt, &m.UpdatedAt,
			&m.OtherUser.UserID, &m.OtherUser.DisplayName, &m.OtherUser.Age,
			pq.Array(&m.OtherUser.Photos), &m.OtherUser.Bio,
		)
		if err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id int, isActive bool) error {
	query := `UPDATE matches SET is_active = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, isActive, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
