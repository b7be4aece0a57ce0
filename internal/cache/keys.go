package cache

import "fmt"

// Key builders. All cache keys are constructed here so mutation paths
// never re-derive key strings by hand.

// FeedKey is scoped per user and per limit so differently sized
// requests do not collide.
func FeedKey(userID, limit int) string {
	return fmt.Sprintf("feed:%d:%d", userID, limit)
}

func FeedPattern(userID int) string {
	return fmt.Sprintf("feed:%d:*", userID)
}

func FeedCountKey(userID int) string {
	return fmt.Sprintf("feed-count:%d", userID)
}

func MatchesKey(userID int) string {
	return fmt.Sprintf("matches:%d", userID)
}

func MessagesPattern(matchID int) string {
	return fmt.Sprintf("messages:%d:*", matchID)
}
