package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, zap.NewNop()), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if _, ok := store.Get(ctx, "feed:1:20"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	store.Set(ctx, "feed:1:20", `[{"user_id":2}]`, FeedTTL)

	got, ok := store.Get(ctx, "feed:1:20")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if got != `[{"user_id":2}]` {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestRedisStoreEntriesExpire(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	store.Set(ctx, "feed-count:1", "42", FeedCountTTL)

	mr.FastForward(FeedCountTTL + time.Second)

	if _, ok := store.Get(ctx, "feed-count:1"); ok {
		t.Fatalf("expected entry to expire after TTL")
	}
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Set(ctx, FeedCountKey(1), "42", FeedCountTTL)
	store.Delete(ctx, FeedCountKey(1))

	if _, ok := store.Get(ctx, FeedCountKey(1)); ok {
		t.Fatalf("expected key to be gone after delete")
	}
}

func TestRedisStoreDeleteByPattern(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Set(ctx, FeedKey(1, 10), "a", FeedTTL)
	store.Set(ctx, FeedKey(1, 20), "b", FeedTTL)
	store.Set(ctx, FeedKey(2, 20), "c", FeedTTL)

	removed := store.DeleteByPattern(ctx, FeedPattern(1))
	if removed != 2 {
		t.Fatalf("expected 2 keys removed, got %d", removed)
	}

	if _, ok := store.Get(ctx, FeedKey(1, 10)); ok {
		t.Fatalf("user 1 feed page should be gone")
	}
	if _, ok := store.Get(ctx, FeedKey(2, 20)); !ok {
		t.Fatalf("user 2 feed page must survive")
	}
}

func TestRedisStoreDeleteByPatternNoMatches(t *testing.T) {
	store, _ := newTestStore(t)

	if removed := store.DeleteByPattern(context.Background(), FeedPattern(9)); removed != 0 {
		t.Fatalf("expected 0 removed, got %d", removed)
	}
}

func TestRedisStoreFailsOpenWhenBackendDown(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	store.Set(ctx, "matches:1", "[]", MatchListTTL)
	mr.Close()

	if _, ok := store.Get(ctx, "matches:1"); ok {
		t.Fatalf("backend outage must read as a miss")
	}
	store.Set(ctx, "matches:1", "[]", MatchListTTL)
	store.Delete(ctx, "matches:1")
	if removed := store.DeleteByPattern(ctx, "matches:*"); removed != 0 {
		t.Fatalf("backend outage must report 0 removed, got %d", removed)
	}
}

type recordingStore struct {
	patterns []string
	deletes  []string
}

func (s *recordingStore) Get(context.Context, string) (string, bool) { return "", false }

func (s *recordingStore) Set(context.Context, string, string, time.Duration) {}

func (s *recordingStore) Delete(_ context.Context, key string) {
	s.deletes = append(s.deletes, key)
}

func (s *recordingStore) DeleteByPattern(_ context.Context, pattern string) int {
	s.patterns = append(s.patterns, pattern)
	return 0
}

func TestInvalidatorFeedForUser(t *testing.T) {
	store := &recordingStore{}
	inv := NewInvalidator(store)

	inv.FeedForUser(context.Background(), 7)

	if len(store.patterns) != 1 || store.patterns[0] != "feed:7:*" {
		t.Fatalf("patterns: got %v", store.patterns)
	}
	// The count key is exact, it must not cost a SCAN.
	if len(store.deletes) != 1 || store.deletes[0] != "feed-count:7" {
		t.Fatalf("deletes: got %v", store.deletes)
	}
}

func TestInvalidatorMatchesForPair(t *testing.T) {
	store := &recordingStore{}
	inv := NewInvalidator(store)

	inv.MatchesForPair(context.Background(), 2, 9)

	want := []string{"matches:2", "matches:9"}
	if len(store.deletes) != len(want) {
		t.Fatalf("deletes: got %v want %v", store.deletes, want)
	}
	for i := range want {
		if store.deletes[i] != want[i] {
			t.Fatalf("deletes: got %v want %v", store.deletes, want)
		}
	}
	if len(store.patterns) != 0 {
		t.Fatalf("exact match-list keys must not be swept by pattern, got %v", store.patterns)
	}
}

func TestInvalidatorMessagesForMatch(t *testing.T) {
	store := &recordingStore{}
	inv := NewInvalidator(store)

	inv.MessagesForMatch(context.Background(), 13)

	if len(store.patterns) != 1 || store.patterns[0] != "messages:13:*" {
		t.Fatalf("patterns: got %v", store.patterns)
	}
}
