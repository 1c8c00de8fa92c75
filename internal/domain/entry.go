package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntryType classifies a journal entry.
type EntryType string

const (
	TypeWin    EntryType = "W"
	TypeLoss   EntryType = "L"
	TypeGrowth EntryType = "OFG"
)

// EntryTypes lists all valid entry types in display order.
var EntryTypes = []EntryType{TypeWin, TypeLoss, TypeGrowth}

// Label returns the long human-readable name for the type.
func (t EntryType) Label() string {
	switch t {
	case TypeWin:
		return "Win"
	case TypeLoss:
		return "Loss"
	case TypeGrowth:
		return "Opportunity for Growth"
	default:
		return string(t)
	}
}

// Code returns the short code used for storage and compact display.
func (t EntryType) Code() string { return string(t) }

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	switch t {
	case TypeWin, TypeLoss, TypeGrowth:
		return true
	}
	return false
}

// ParseEntryType resolves a type from its short code, case-insensitively.
func ParseEntryType(code string) (EntryType, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "W":
		return TypeWin, nil
	case "L":
		return TypeLoss, nil
	case "OFG":
		return TypeGrowth, nil
	}
	return "", fmt.Errorf("unknown entry type %q (want W, L or OFG)", code)
}

// Entry is one recorded event. Entries are immutable after creation;
// the collection only ever sees head inserts and full replacement on load.
type Entry struct {
	ID        string
	Type      EntryType
	Text      string
	CreatedAt time.Time
}

// NewEntry builds an entry with a fresh ID and the current time.
// Text is stored as given; trimming and non-empty validation belong to
// the capture flows, not the constructor.
func NewEntry(entryType EntryType, text string) *Entry {
	return &Entry{
		ID:        uuid.New().String(),
		Type:      entryType,
		Text:      text,
		CreatedAt: time.Now(),
	}
}
