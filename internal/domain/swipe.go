package domain

import "time"

type SwipeAction string

const (
	ActionLike      SwipeAction = "like"
	ActionPass      SwipeAction = "pass"
	ActionSuperLike SwipeAction = "super_like"
)

func (a SwipeAction) Valid() bool {
	switch a {
	case ActionLike, ActionPass, ActionSuperLike:
		return true
	}
	return false
}

// IsLike reports whether the action can participate in a match.
func (a SwipeAction) IsLike() bool {
	return a == ActionLike || a == ActionSuperLike
}

// Swipe is one row of the append-only swipe ledger. At most one swipe
// exists per (user_id, target_user_id) pair; a repeat is rejected.
type Swipe struct {
	ID           int         `json:"id" db:"id"`
	UserID       int         `json:"user_id" db:"user_id"`
	TargetUserID int         `json:"target_user_id" db:"target_user_id"`
	Action       SwipeAction `json:"action" db:"action"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}
