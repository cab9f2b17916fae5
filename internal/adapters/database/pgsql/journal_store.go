package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/aba_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/aba_ledger/internal/models"
	"github.com/SscSPs/aba_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PgxJournalStore struct {
	pool *pgxpool.Pool
}

// NewPgxJournalStore creates an event store over the journal_entries table.
// The schema is created by the SQL migrations.
func NewPgxJournalStore(pool *pgxpool.Pool) *PgxJournalStore {
	return &PgxJournalStore{pool: pool}
}

// InsertEntry appends one entry. The action is stored as JSONB.
func (r *PgxJournalStore) InsertEntry(ctx context.Context, entry domain.JournalEntry) error {
	row, err := mapping.ToModelJournalEntry(entry)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO journal_entries (id, version, organization_id, action)
		VALUES ($1, $2, $3, $4);
	`
	_, err = r.pool.Exec(ctx, query, row.ID, row.Version, row.OrganizationID, string(row.Action))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("%w: %s", portsrepo.ErrEntryExists, row.ID))
		}
		return apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("failed to insert journal entry %s: %w", row.ID, err))
	}
	return nil
}

// SelectEntries returns the whole journal in id order.
func (r *PgxJournalStore) SelectEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	query := `
		SELECT id, version, organization_id, action::text
		FROM journal_entries
		ORDER BY id;
	`
	return r.selectEntries(ctx, query)
}

// SelectEntriesAfter returns up to limit entries with an id greater than after.
func (r *PgxJournalStore) SelectEntriesAfter(ctx context.Context, after *domain.JournalEntryID, limit int) ([]domain.JournalEntry, error) {
	cursor := ""
	if after != nil {
		cursor = after.String()
	}
	if limit <= 0 {
		query := `
			SELECT id, version, organization_id, action::text
			FROM journal_entries
			WHERE id > $1
			ORDER BY id;
		`
		return r.selectEntries(ctx, query, cursor)
	}

	query := `
		SELECT id, version, organization_id, action::text
		FROM journal_entries
		WHERE id > $1
		ORDER BY id
		LIMIT $2;
	`
	return r.selectEntries(ctx, query, cursor, limit)
}

func (r *PgxJournalStore) selectEntries(ctx context.Context, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("failed to query journal entries: %w", err))
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.JournalEntryRow, error) {
		var m models.JournalEntryRow
		var action string
		if err := row.Scan(&m.ID, &m.Version, &m.OrganizationID, &action); err != nil {
			return m, err
		}
		m.Action = []byte(action)
		return m, nil
	})
	if err != nil {
		return nil, apperrors.NewStoreError(apperrors.StoreOpStorage, fmt.Errorf("failed to scan journal entries: %w", err))
	}
	return mapping.ToDomainJournalEntries(records)
}

var (
	_ portsrepo.EventStore      = (*PgxJournalStore)(nil)
	_ portsrepo.EventStorePager = (*PgxJournalStore)(nil)
)
