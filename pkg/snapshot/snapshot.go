// Package snapshot persists rendered HTML documents.
//
// A Store takes the first-paint HTML the server renders for a session
// and keeps it somewhere durable, so sessions can be replayed or served
// as static fallbacks. MemStore backs tests; S3Store ships snapshots to
// an S3 bucket.
package snapshot

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Load when no snapshot exists for the key.
var ErrNotFound = errors.New("snapshot: not found")

// Store persists rendered HTML by key.
type Store interface {
	// Save writes the HTML snapshot under the given key, replacing any
	// previous snapshot with the same key.
	Save(ctx context.Context, key, html string) error

	// Load returns the snapshot stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) (string, error)
}

// MemStore is an in-memory Store. Safe for concurrent use.
type MemStore struct {
	mu        sync.RWMutex
	snapshots map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{snapshots: make(map[string]string)}
}

// Save implements Store.
func (s *MemStore) Save(ctx context.Context, key, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.snapshots[key] = html
	s.mu.Unlock()
	return nil
}

// Load implements Store.
func (s *MemStore) Load(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	html, ok := s.snapshots[key]
	s.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	return html, nil
}

// Len returns the number of stored snapshots.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}
