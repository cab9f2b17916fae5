// Package journal is the append-only log of ledger actions. It stores
// entries but does not interpret them.
package journal

import (
	"context"
	"fmt"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/aba_ledger/internal/core/ports/repositories"
)

// Journal wraps an event store. It does no locking of its own.
type Journal struct {
	store portsrepo.EventStore
}

// New creates a journal backed by store.
func New(store portsrepo.EventStore) *Journal {
	return &Journal{store: store}
}

// Add appends entry to the journal.
func (j *Journal) Add(ctx context.Context, entry domain.JournalEntry) error {
	if err := j.store.InsertEntry(ctx, entry); err != nil {
		return fmt.Errorf("add journal entry %s: %w", entry.ID, err)
	}
	return nil
}

// View returns every entry in ascending id order.
func (j *Journal) View(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := j.store.SelectEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("view journal: %w", err)
	}
	return entries, nil
}

// ViewPage returns up to limit entries that sort after the given id. Stores
// without paging support are paged in memory.
func (j *Journal) ViewPage(ctx context.Context, after *domain.JournalEntryID, limit int) ([]domain.JournalEntry, error) {
	if pager, ok := j.store.(portsrepo.EventStorePager); ok {
		entries, err := pager.SelectEntriesAfter(ctx, after, limit)
		if err != nil {
			return nil, fmt.Errorf("view journal page: %w", err)
		}
		return entries, nil
	}

	entries, err := j.View(ctx)
	if err != nil {
		return nil, err
	}
	start := 0
	if after != nil {
		for start < len(entries) && entries[start].ID.Compare(*after) <= 0 {
			start++
		}
	}
	entries = entries[start:]
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
