package page

import (
	"context"
	"maps"
	"path"
	"sort"
	"testing"
	"time"

	"github.com/kailas-cloud/cmsdash/internal/db"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
)

// memStore is an in-memory consumer interface with error injection.
type memStore struct {
	hashes  map[string]map[string]string
	strings map[string]string

	hsetErr error
	dels    []string
}

func newMemStore() *memStore {
	return &memStore{hashes: map[string]map[string]string{}, strings: map[string]string{}}
}

func (m *memStore) HSet(_ context.Context, key string, fields map[string]string) error {
	if m.hsetErr != nil {
		return m.hsetErr
	}
	h, ok := m.hashes[key]
	if !ok {
		h = map[string]string{}
		m.hashes[key] = h
	}
	maps.Copy(h, fields)
	return nil
}

func (m *memStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	h, ok := m.hashes[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return maps.Clone(h), nil
}

func (m *memStore) HGetAllMulti(_ context.Context, keys []string) ([]map[string]string, error) {
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		if h, ok := m.hashes[k]; ok {
			out[i] = maps.Clone(h)
		}
	}
	return out, nil
}

func (m *memStore) HDel(_ context.Context, key string, fields ...string) error {
	for _, f := range fields {
		delete(m.hashes[key], f)
	}
	return nil
}

func (m *memStore) Del(_ context.Context, key string) error {
	m.dels = append(m.dels, key)
	delete(m.hashes, key)
	delete(m.strings, key)
	return nil
}

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	_, h := m.hashes[key]
	_, s := m.strings[key]
	return h || s, nil
}

func (m *memStore) Scan(_ context.Context, pattern string) ([]string, error) {
	var keys []string
	for k := range m.hashes {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.strings[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return []byte(v), nil
}

func (m *memStore) SetNX(_ context.Context, key string, value []byte) (bool, error) {
	if _, ok := m.strings[key]; ok {
		return false, nil
	}
	m.strings[key] = string(value)
	return true, nil
}

var testTime = time.UnixMilli(1710000000000).UTC()

func newTestRepo(t *testing.T) (*Repo, *memStore) {
	t.Helper()
	ms := newMemStore()
	return New(ms), ms
}

func testPage(t *testing.T, id, title string) dompage.Page {
	t.Helper()
	p, err := dompage.New(id, dompage.Draft{
		Title:        title,
		Content:      "<p>body</p>",
		ComponentIDs: []string{"c1", "c2"},
	}, testTime)
	if err != nil {
		t.Fatalf("page.New: %v", err)
	}
	return p
}
