package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
)

type memoryCacheEntry struct {
	payload []byte
	expires time.Time
}

// memoryCache mimics Redis JSON storage with expiry driven by an injected clock.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryCacheEntry
	now     func() time.Time
	getErr  error
	sets    int
}

func newMemoryCache(now func() time.Time) *memoryCache {
	return &memoryCache{entries: make(map[string]memoryCacheEntry), now: now}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	entry, ok := m.entries[key]
	if !ok || !m.now().Before(entry.expires) {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(entry.payload, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.sets++
	m.entries[key] = memoryCacheEntry{payload: payload, expires: m.now().Add(ttl)}
	return nil
}

func (m *memoryCache) DeleteByPattern(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryCacheEntry)
	return nil
}

// fakeEnrollmentRepo records the statements it is asked to run.
type fakeEnrollmentRepo struct {
	rows        []models.Enrollment
	count       func(query.Statement) int
	lastUpdated *time.Time
	err         error

	listCalls  int
	lastQuery  query.Query
	lastTail   []string
	statements []query.Statement
}

func (f *fakeEnrollmentRepo) List(_ context.Context, q query.Query, tail ...string) ([]models.Enrollment, error) {
	f.listCalls++
	f.lastQuery = q
	f.lastTail = tail
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Enrollment, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeEnrollmentRepo) Count(_ context.Context, stmt query.Statement) (int, error) {
	f.statements = append(f.statements, stmt)
	if f.err != nil {
		return 0, f.err
	}
	if f.count == nil {
		return 0, nil
	}
	return f.count(stmt), nil
}

func (f *fakeEnrollmentRepo) LastUpdated(_ context.Context, q query.Query) (*time.Time, error) {
	f.lastQuery = q
	return f.lastUpdated, f.err
}

type fakeLearnerDirectory struct {
	exists      bool
	users       int
	existsCalls int
}

func (f *fakeLearnerDirectory) ExistsForEnterprise(_ context.Context, _ string) (bool, error) {
	f.existsCalls++
	return f.exists, nil
}

func (f *fakeLearnerDirectory) CountForEnterprise(_ context.Context, _ string) (int, error) {
	return f.users, nil
}
