package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrCannotSwipeSelf    = errors.New("cannot swipe on yourself")
	ErrSwipeAlreadyExists = errors.New("swipe already exists for this target")
	ErrMatchForbidden     = errors.New("user is not a participant in this match")
	ErrInvalidSwipeAction = errors.New("invalid swipe action")
	ErrInvalidFeedLimit   = errors.New("feed limit must be between 1 and 100")
)

// DailyLimitError is returned when a free-tier user exhausts the daily
// swipe quota. It carries the limit so the client can render it.
type DailyLimitError struct {
	Limit int
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("daily swipe limit of %d reached", e.Limit)
}
