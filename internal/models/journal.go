package models

// JournalEntryRow is a journal entry as persisted in the journal_entries
// table. Action holds the JSON encoded action envelope.
type JournalEntryRow struct {
	ID             string `db:"id"`
	Version        int64  `db:"version"`
	OrganizationID string `db:"organization_id"`
	Action         []byte `db:"action"`
}
