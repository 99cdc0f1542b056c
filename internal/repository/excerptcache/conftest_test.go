package excerptcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cmsdash/internal/db"
	"github.com/kailas-cloud/cmsdash/internal/domain"
)

type mockSummarizer struct {
	result domain.Summary
	err    error
	calls  int
}

func (m *mockSummarizer) Summarize(_ context.Context, _ string) (domain.Summary, error) {
	m.calls++
	return m.result, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn   func(ctx context.Context, key string) ([]byte, error)
	setexFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetEX(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setexFn != nil {
		return m.setexFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedSummarizer(t *testing.T, inner *mockSummarizer) (*CachedSummarizer, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	return New(inner, ms, time.Hour, nil, zap.NewNop()), ms
}
