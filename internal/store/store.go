// Package store provides the in-memory subscription lookup store.
//
// The record set is fixed at process start. The only mutation the store
// performs is access tracking on successful lookups; records are never
// created, removed, or otherwise modified at runtime.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/subcheck/subcheck/internal/model"
)

// ErrNotFound indicates the subscription ID has no matching record.
var ErrNotFound = errors.New("subscription not found")

// Store holds subscription records keyed by ID.
type Store struct {
	mu      sync.Mutex
	records map[string]*model.Subscription

	// now is injectable for tests.
	now func() time.Time
}

// New creates a Store populated with the given records.
// Records with duplicate or malformed IDs are rejected.
func New(records []*model.Subscription) (*Store, error) {
	s := &Store{
		records: make(map[string]*model.Subscription, len(records)),
		now:     time.Now,
	}

	for _, rec := range records {
		if !model.ValidID(rec.ID) {
			return nil, fmt.Errorf("store: invalid subscription ID %q", rec.ID)
		}
		if _, exists := s.records[rec.ID]; exists {
			return nil, fmt.Errorf("store: duplicate subscription ID %q", rec.ID)
		}
		s.records[rec.ID] = rec.Clone()
	}

	return s, nil
}

// Verify looks up a subscription by ID. On a match it atomically increments
// the access counter and stamps the last-accessed time, then returns a
// snapshot copy of the record. Returns ErrNotFound for unknown IDs.
func (s *Store) Verify(id string) (*model.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now().UTC()
	rec.AccessCount++
	rec.LastAccessed = &now

	return rec.Clone(), nil
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
