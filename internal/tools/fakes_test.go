package tools_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
)

var errConflict = errors.New("conflict: entity with the specified id already exists")

// memStore is an in-memory DocumentStore keyed by container then id.
type memStore struct {
	mu         sync.Mutex
	containers map[string]map[string]map[string]any

	queryRows  []any
	queryErr   error
	lastQuery  string
	lastParams []models.QueryParameter
	replaces   int
}

func newMemStore() *memStore {
	return &memStore{containers: map[string]map[string]map[string]any{}}
}

func (m *memStore) seed(container string, item map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.containers[container] == nil {
		m.containers[container] = map[string]map[string]any{}
	}
	m.containers[container][item["id"].(string)] = maps.Clone(item)
}

func (m *memStore) ReadItem(_ context.Context, containerName, id, _ string) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.containers[containerName][id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, models.ErrNotFound)
	}
	return maps.Clone(item), nil
}

func (m *memStore) ReplaceItem(_ context.Context, containerName, id, _ string, item map[string]any) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.containers[containerName][id]; !ok {
		return nil, fmt.Errorf("item %q: %w", id, models.ErrNotFound)
	}
	m.replaces++
	stored := maps.Clone(item)
	stored["_etag"] = "etag-1"
	m.containers[containerName][id] = stored
	return maps.Clone(stored), nil
}

func (m *memStore) CreateItem(_ context.Context, containerName, _ string, item map[string]any) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, _ := item["id"].(string)
	if m.containers[containerName] == nil {
		m.containers[containerName] = map[string]map[string]any{}
	}
	if _, exists := m.containers[containerName][id]; exists {
		return nil, errConflict
	}
	m.containers[containerName][id] = maps.Clone(item)
	return maps.Clone(item), nil
}

func (m *memStore) QueryItems(_ context.Context, _ string, query string, params []models.QueryParameter, _ string) ([]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastQuery = query
	m.lastParams = params
	return m.queryRows, m.queryErr
}

type memSecrets map[string]string

func (s memSecrets) GetSecret(_ context.Context, name string) (string, error) {
	v, ok := s[name]
	if !ok {
		return "", fmt.Errorf("secret %q: %w", name, models.ErrNotFound)
	}
	return v, nil
}

type memCerts map[string]*time.Time

func (c memCerts) GetCertificateExpiry(_ context.Context, name string) (*time.Time, error) {
	exp, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("certificate %q: %w", name, models.ErrNotFound)
	}
	return exp, nil
}
