package cache

import "context"

// Invalidator names the invalidation operations mutations need, so
// every call site goes through the same key construction. All methods
// are best-effort; the underlying store swallows backend errors.
type Invalidator struct {
	store Store
}

func NewInvalidator(store Store) *Invalidator {
	return &Invalidator{store: store}
}

// FeedForUser drops the user's cached feed pages and feed count.
// Called after every successful swipe and after ranking-relevant
// profile edits.
func (i *Invalidator) FeedForUser(ctx context.Context, userID int) {
	i.store.DeleteByPattern(ctx, FeedPattern(userID))
	i.store.Delete(ctx, FeedCountKey(userID))
}

// MatchesForUser drops one user's cached match list.
func (i *Invalidator) MatchesForUser(ctx context.Context, userID int) {
	i.store.Delete(ctx, MatchesKey(userID))
}

// MatchesForPair drops both participants' cached match lists. Called on
// match creation and unmatch.
func (i *Invalidator) MatchesForPair(ctx context.Context, user1ID, user2ID int) {
	i.MatchesForUser(ctx, user1ID)
	i.MatchesForUser(ctx, user2ID)
}

// MessagesForMatch drops cached message pages for a match.
func (i *Invalidator) MessagesForMatch(ctx context.Context, matchID int) {
	i.store.DeleteByPattern(ctx, MessagesPattern(matchID))
}
