package domain

import (
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a 128-bit, lexicographically time-sortable identifier.
type ID = ulid.ULID

// Identifier aliases document which namespace an ID belongs to.
type (
	OrganizationID = ID
	ContactID      = ID
	AccountID      = ID
	TransactionID  = ID
	JournalEntryID = ID
)

// ErrIDOverflow is returned when NextID cannot produce a larger id within the
// same millisecond.
var ErrIDOverflow = errors.New("id entropy overflow")

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID generates a fresh id for the current time.
func NewID() ID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

// NextID returns an id strictly greater than prev. A fresh id is used when the
// clock has moved past prev, otherwise prev's random part is incremented.
func NextID(prev ID) (ID, error) {
	now := ulid.Timestamp(time.Now())
	if now > prev.Time() {
		return NewID(), nil
	}

	next := prev
	for i := len(next) - 1; i >= 6; i-- {
		next[i]++
		if next[i] != 0 {
			return next, nil
		}
	}
	return ID{}, ErrIDOverflow
}

// MustNextID is like NextID but panics on overflow. It is meant for fixtures.
func MustNextID(prev ID) ID {
	id, err := NextID(prev)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseID parses the canonical 26 character representation.
func ParseID(s string) (ID, error) {
	return ulid.ParseStrict(s)
}
