package repository

import (
	"context"
	"time"

	"github.com/letsmeet/backend/internal/domain"
)

type SwipeRepository interface {
	// Create appends a swipe. A second swipe on the same target returns
	// domain.ErrSwipeAlreadyExists.
	Create(ctx context.Context, swipe *domain.Swipe) error
	// HasReciprocalLike reports whether fromUserID has liked or
	// super-liked toUserID.
	HasReciprocalLike(ctx context.Context, fromUserID, toUserID int) (bool, error)
	// CountLikesSince counts like/super_like actions by a user since the
	// given instant. Passes are not counted.
	CountLikesSince(ctx context.Context, userID int, since time.Time) (int, error)
}
