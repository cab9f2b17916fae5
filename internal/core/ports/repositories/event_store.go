package repositories

import (
	"context"
	"errors"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
)

// ErrEntryExists is wrapped by stores when an entry id is inserted twice.
var ErrEntryExists = errors.New("journal entry already exists")

// EventStoreWriter appends journal entries.
type EventStoreWriter interface {
	// InsertEntry durably appends one entry. Inserting an id that already
	// exists fails.
	InsertEntry(ctx context.Context, entry domain.JournalEntry) error
}

// EventStoreReader reads journal entries back.
type EventStoreReader interface {
	// SelectEntries returns every stored entry in ascending id order.
	SelectEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// EventStorePager is implemented by stores that can page through entries
// without loading the whole journal.
type EventStorePager interface {
	// SelectEntriesAfter returns at most limit entries with an id greater
	// than after (all entries when after is nil), in ascending id order.
	SelectEntriesAfter(ctx context.Context, after *domain.JournalEntryID, limit int) ([]domain.JournalEntry, error)
}

// EventStore combines the read and write sides of a journal store.
type EventStore interface {
	EventStoreReader
	EventStoreWriter
}
