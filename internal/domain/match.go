package domain

import "time"

// Match stores a mutual-like pair in canonical order (user1_id < user2_id),
// so the pair {A,B} maps to exactly one row regardless of swipe direction.
type Match struct {
	ID            int        `json:"id" db:"id"`
	User1ID       int        `json:"user1_id" db:"user1_id"`
	User2ID       int        `json:"user2_id" db:"user2_id"`
	MatchedAt     time.Time  `json:"matched_at" db:"matched_at"`
	LastMessageAt *time.Time `json:"last_message_at" db:"last_message_at"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// CanonicalPair orders two user ids the way matches are keyed.
func CanonicalPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (m *Match) HasUser(userID int) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// MatchProfileSummary is the slice of the other participant's profile
// shown in a match list.
type MatchProfileSummary struct {
	UserID      int      `json:"user_id"`
	DisplayName string   `json:"display_name"`
	Age         int      `json:"age"`
	Photos      []string `json:"photos"`
	Bio         *string  `json:"bio"`
}

type MatchWithProfile struct {
	Match
	OtherUser MatchProfileSummary `json:"other_user"`
}
