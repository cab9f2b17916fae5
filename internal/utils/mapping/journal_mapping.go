package mapping

import (
	"fmt"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	"github.com/SscSPs/aba_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to its row form.
func ToModelJournalEntry(d domain.JournalEntry) (models.JournalEntryRow, error) {
	action, err := domain.MarshalAction(d.Action)
	if err != nil {
		return models.JournalEntryRow{}, apperrors.NewStoreError(apperrors.StoreOpSerialize, err)
	}
	version := d.Version
	if version == 0 {
		version = domain.DefaultVersion
	}
	return models.JournalEntryRow{
		ID:             d.ID.String(),
		Version:        int64(version),
		OrganizationID: d.OrganizationID.String(),
		Action:         action,
	}, nil
}

// ToDomainJournalEntry converts a stored row back to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntryRow) (domain.JournalEntry, error) {
	id, err := domain.ParseID(m.ID)
	if err != nil {
		return domain.JournalEntry{}, apperrors.NewStoreError(apperrors.StoreOpDecodeID, fmt.Errorf("entry id %q: %w", m.ID, err))
	}
	orgID, err := domain.ParseID(m.OrganizationID)
	if err != nil {
		return domain.JournalEntry{}, apperrors.NewStoreError(apperrors.StoreOpDecodeID, fmt.Errorf("organization id %q: %w", m.OrganizationID, err))
	}
	if m.Version < 0 || m.Version > int64(^uint32(0)) {
		return domain.JournalEntry{}, apperrors.NewStoreError(apperrors.StoreOpDecode, fmt.Errorf("entry %s: version %d out of range", m.ID, m.Version))
	}
	action, err := domain.UnmarshalAction(m.Action)
	if err != nil {
		return domain.JournalEntry{}, apperrors.NewStoreError(apperrors.StoreOpDecode, fmt.Errorf("entry %s: %w", m.ID, err))
	}
	return domain.JournalEntry{
		ID:             id,
		Version:        uint32(m.Version),
		OrganizationID: orgID,
		Action:         action,
	}, nil
}

// ToDomainJournalEntries converts rows in order, stopping at the first bad row.
func ToDomainJournalEntries(rows []models.JournalEntryRow) ([]domain.JournalEntry, error) {
	entries := make([]domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := ToDomainJournalEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
