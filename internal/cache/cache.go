// Package cache holds the latest refresh snapshot. Snapshots are replaced
// wholesale under a single write so a reader mid-render always sees one
// complete refresh cycle, never a mix of two.
package cache

import (
	"sync"

	"github.com/hayseedprops/hayseed-dashboard/internal/models"
)

// Store is the process-wide snapshot holder: single writer (the refresh
// job), many readers (request handlers)
type Store struct {
	mu       sync.RWMutex
	snapshot *models.Snapshot
}

// NewStore creates a store primed with an empty snapshot so readers before
// the first refresh see zero records rather than nil maps
func NewStore() *Store {
	return &Store{snapshot: models.EmptySnapshot()}
}

// Current returns the latest published snapshot. Callers must treat it as
// read-only; it may be shared with concurrent readers.
func (s *Store) Current() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Publish atomically replaces the current snapshot
func (s *Store) Publish(snapshot *models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}
