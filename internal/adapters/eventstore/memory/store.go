// Package memory provides an event store that keeps the journal in process
// memory. It is used by tests and by the server when no database is
// configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/aba_ledger/internal/core/ports/repositories"
)

// Store is a slice of entries kept sorted by id.
type Store struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
}

// NewStore creates an empty in-memory event store.
func NewStore() *Store {
	return &Store{}
}

var (
	_ portsrepo.EventStore      = (*Store)(nil)
	_ portsrepo.EventStorePager = (*Store)(nil)
)

// InsertEntry implements portsrepo.EventStoreWriter.
func (s *Store) InsertEntry(ctx context.Context, entry domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStoreError(apperrors.StoreOpStorage, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.search(entry.ID)
	if i < len(s.entries) && s.entries[i].ID == entry.ID {
		return apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("%w: %s", portsrepo.ErrEntryExists, entry.ID))
	}
	s.entries = append(s.entries, domain.JournalEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = entry
	return nil
}

// SelectEntries implements portsrepo.EventStoreReader.
func (s *Store) SelectEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.SelectEntriesAfter(ctx, nil, 0)
}

// SelectEntriesAfter implements portsrepo.EventStorePager. A limit of zero or
// less returns everything after the cursor.
func (s *Store) SelectEntriesAfter(ctx context.Context, after *domain.JournalEntryID, limit int) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStoreError(apperrors.StoreOpStorage, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if after != nil {
		start = s.search(*after)
		if start < len(s.entries) && s.entries[start].ID == *after {
			start++
		}
	}
	end := len(s.entries)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	return append([]domain.JournalEntry(nil), s.entries[start:end]...), nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) search(id domain.JournalEntryID) int {
	return sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].ID.Compare(id) >= 0
	})
}
