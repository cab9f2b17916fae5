// Package sqlite stores the journal in a SQLite database through the pure Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/aba_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/aba_ledger/internal/models"
	"github.com/SscSPs/aba_ledger/internal/utils/mapping"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// migrations are applied in order; schema_version records how many ran.
var migrations = []string{
	`CREATE TABLE journal_entries (
		id TEXT NOT NULL PRIMARY KEY,
		version INTEGER NOT NULL,
		organization_id TEXT NOT NULL,
		action TEXT NOT NULL
	)`,
	`CREATE INDEX idx_journal_entries_organization_id ON journal_entries(organization_id)`,
}

// SchemaVersion is the version a fully migrated database reports.
var SchemaVersion = len(migrations)

const (
	insertEntryQuery = `INSERT INTO journal_entries (id, version, organization_id, action) VALUES (?, ?, ?, ?)`
	selectAfterQuery = `SELECT id, version, organization_id, action FROM journal_entries WHERE id > ? ORDER BY id LIMIT ?`
)

type JournalStore struct {
	db *sql.DB
}

// NewJournalStore migrates db and returns a store over it.
func NewJournalStore(ctx context.Context, db *sql.DB) (*JournalStore, error) {
	s := &JournalStore{db: db}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite journal: %w", err)
	}
	return s, nil
}

func (s *JournalStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return err
	}

	version, err := s.Version(ctx)
	if err != nil {
		return err
	}
	if version >= len(migrations) {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i := version; i < len(migrations); i++ {
		if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, len(migrations)); err != nil {
		return err
	}
	return tx.Commit()
}

// Version returns the number of migrations applied to the database.
func (s *JournalStore) Version(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_version`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return version, err
}

func (s *JournalStore) InsertEntry(ctx context.Context, entry domain.JournalEntry) error {
	row, err := mapping.ToModelJournalEntry(entry)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, insertEntryQuery, row.ID, row.Version, row.OrganizationID, string(row.Action))
	if err != nil {
		var sqliteErr *sqlite.Error
		// The low byte is the primary result code of an extended one.
		if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("%w: %s", portsrepo.ErrEntryExists, row.ID))
		}
		return apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("failed to insert journal entry %s: %w", row.ID, err))
	}
	return nil
}

func (s *JournalStore) SelectEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.SelectEntriesAfter(ctx, nil, 0)
}

func (s *JournalStore) SelectEntriesAfter(ctx context.Context, after *domain.JournalEntryID, limit int) ([]domain.JournalEntry, error) {
	// Every ULID string sorts after "", and a negative LIMIT means no limit.
	cursor := ""
	if after != nil {
		cursor = after.String()
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, selectAfterQuery, cursor, limit)
	if err != nil {
		return nil, apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("failed to query journal entries: %w", err))
	}
	defer func() { _ = rows.Close() }()

	var records []models.JournalEntryRow
	for rows.Next() {
		var row models.JournalEntryRow
		if err := rows.Scan(&row.ID, &row.Version, &row.OrganizationID, &row.Action); err != nil {
			return nil, apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("failed to scan journal entry: %w", err))
		}
		records = append(records, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(apperrors.StoreOpStorage, err)
	}
	return mapping.ToDomainJournalEntries(records)
}

var (
	_ portsrepo.EventStore      = (*JournalStore)(nil)
	_ portsrepo.EventStorePager = (*JournalStore)(nil)
)
