package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/letsmeet/backend/internal/domain"
	"github.com/letsmeet/backend/internal/repository"
)

// pq error code for unique constraint violations.
const uniqueViolation = "23505"

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) error {
	query := `
		INSERT INTO swipes (user_id, target_user_id, action)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, swipe.UserID, swipe.TargetUserID, string(swipe.Action)).
		Scan(&swipe.ID, &swipe.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrSwipeAlreadyExists
		}
		return err
	}
	return nil
}

func (r *swipeRepository) HasReciprocalLike(ctx context.Context, fromUserID, toUserID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE user_id = $1
			  AND target_user_id = $2
			  AND action IN ('like', 'super_like')
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, fromUserID, toUserID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *swipeRepository) CountLikesSince(ctx context.Context, userID int, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM swipes
		WHERE user_id = $1
		  AND action IN ('like', 'super_like')
		  AND created_at >= $2
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, userID, since); err != nil {
		return 0, err
	}
	return count, nil
}
