package cache

import (
	"context"
	"time"
)

type noopStore struct{}

// NewNoopStore returns a Store where every read is a miss and every
// write is dropped. Used when redis is unavailable at boot and in tests
// that exercise source-of-truth paths.
func NewNoopStore() Store {
	return noopStore{}
}

func (noopStore) Get(context.Context, string) (string, bool) { return "", false }

func (noopStore) Set(context.Context, string, string, time.Duration) {}

func (noopStore) Delete(context.Context, string) {}

func (noopStore) DeleteByPattern(context.Context, string) int { return 0 }
