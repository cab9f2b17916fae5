package dto

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/aba_ledger/internal/core/domain"
)

// SubmitJournalEntryRequest is a journal entry as posted by clients. The id
// is assigned on submission when omitted.
type SubmitJournalEntryRequest struct {
	ID             string          `json:"id" binding:"omitempty,ulid"`
	Version        uint32          `json:"version" binding:"omitempty,min=1"`
	OrganizationID string          `json:"organizationID" binding:"required,ulid"`
	Action         json.RawMessage `json:"action" binding:"required" swaggertype:"object"`
}

// ToDomain builds the domain entry. The id stays zero when the request has
// none of its own.
func (r SubmitJournalEntryRequest) ToDomain() (domain.JournalEntry, error) {
	var id domain.JournalEntryID
	if r.ID != "" {
		parsed, err := domain.ParseID(r.ID)
		if err != nil {
			return domain.JournalEntry{}, fmt.Errorf("invalid id: %w", err)
		}
		id = parsed
	}
	orgID, err := domain.ParseID(r.OrganizationID)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("invalid organizationID: %w", err)
	}
	action, err := domain.UnmarshalAction(r.Action)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("invalid action: %w", err)
	}

	entry := domain.NewJournalEntry(id, orgID, action)
	if r.Version != 0 {
		entry.Version = r.Version
	}
	return entry, nil
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	ID             string          `json:"id"`
	Version        uint32          `json:"version"`
	OrganizationID string          `json:"organizationID"`
	ActionType     string          `json:"actionType"`
	Action         json.RawMessage `json:"action" swaggertype:"object"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e domain.JournalEntry) (JournalEntryResponse, error) {
	action, err := domain.MarshalAction(e.Action)
	if err != nil {
		return JournalEntryResponse{}, err
	}
	return JournalEntryResponse{
		ID:             e.ID.String(),
		Version:        e.Version,
		OrganizationID: e.OrganizationID.String(),
		ActionType:     domain.ActionName(e.Action),
		Action:         action,
	}, nil
}

// ListJournalEntriesParams defines the query parameters for listing the journal.
type ListJournalEntriesParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListJournalEntriesResponse is one page of the journal.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// SeedSampleResponse reports the organization created by the sample journal.
type SeedSampleResponse struct {
	OrganizationID string `json:"organizationID"`
	Entries        int    `json:"entries"`
}

// ULIDResponse carries a freshly generated id.
type ULIDResponse struct {
	ULID string `json:"ulid"`
}
