package testutil

import (
	"time"

	"github.com/amercer/tally/internal/domain"
	"github.com/google/uuid"
)

// Entry options
type EntryOption func(*domain.Entry)

func WithCreatedAt(t time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.CreatedAt = t
	}
}

func WithID(id string) EntryOption {
	return func(e *domain.Entry) {
		e.ID = id
	}
}

// NewTestEntry builds an entry with a fresh ID and the current time,
// adjusted by the given options.
func NewTestEntry(entryType domain.EntryType, text string, opts ...EntryOption) *domain.Entry {
	e := &domain.Entry{
		ID:        uuid.New().String(),
		Type:      entryType,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
