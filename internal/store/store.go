// Package store owns the authoritative in-memory entry collection and
// synchronizes it to the blob repository as one serialized snapshot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/amercer/tally/internal/domain"
	"github.com/amercer/tally/internal/repository"
)

// EntriesKey is the fixed blob key for the serialized collection.
// The schema version lives in the key; a future format change means a
// new key plus a migration step, not an in-place rewrite.
const EntriesKey = "entries.v1"

// entryRecord is the persisted form of a single entry.
type entryRecord struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryStore is the single source of truth for the entry collection.
// Entries are kept newest-first by insertion; every mutation rewrites
// the full persisted blob. Load and save failures degrade silently —
// they are logged but never surfaced to the caller.
type EntryStore struct {
	repo   repository.BlobRepo
	logger *slog.Logger

	entries []*domain.Entry

	subs    map[int]func()
	nextSub int
}

// NewEntryStore constructs the store and loads any previously persisted
// collection. A missing or undecodable blob leaves the collection empty.
func NewEntryStore(ctx context.Context, repo repository.BlobRepo, logger *slog.Logger) *EntryStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &EntryStore{
		repo:   repo,
		logger: logger,
		subs:   make(map[int]func()),
	}
	s.load(ctx)
	// Write back what was loaded. Idempotent on a clean load; on a
	// corrupt blob this resets the key to a decodable state.
	s.save(ctx)
	return s
}

// Add creates an entry with a fresh ID and the current time and inserts
// it at the head of the collection. The caller is responsible for
// trimming and non-empty validation of text.
func (s *EntryStore) Add(ctx context.Context, entryType domain.EntryType, text string) *domain.Entry {
	e := domain.NewEntry(entryType, text)
	s.entries = append([]*domain.Entry{e}, s.entries...)
	s.save(ctx)
	s.notify()
	return e
}

// Entries returns an ordered snapshot of the collection, newest first.
func (s *EntryStore) Entries() []*domain.Entry {
	out := make([]*domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries in the collection.
func (s *EntryStore) Len() int { return len(s.entries) }

// Subscribe registers fn to run synchronously after every mutation.
// The returned id is passed to Unsubscribe on teardown.
func (s *EntryStore) Subscribe(fn func()) int {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return id
}

// Unsubscribe removes a previously registered subscriber.
func (s *EntryStore) Unsubscribe(id int) {
	delete(s.subs, id)
}

func (s *EntryStore) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// load reads the persisted blob, best-effort. Absence and corruption
// both leave the current collection untouched.
func (s *EntryStore) load(ctx context.Context) {
	raw, err := s.repo.Get(ctx, EntriesKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("no persisted entries", "key", EntriesKey)
		} else {
			s.logger.Warn("reading persisted entries failed", "key", EntriesKey, "error", err)
		}
		return
	}

	var records []entryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		// Corrupt data is dropped rather than surfaced. Log it so the
		// loss is at least visible in debugging sessions.
		s.logger.Warn("persisted entries are undecodable, starting empty",
			"key", EntriesKey, "error", err)
		return
	}

	entries := make([]*domain.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, &domain.Entry{
			ID:        r.ID,
			Type:      domain.EntryType(r.Type),
			Text:      r.Text,
			CreatedAt: r.CreatedAt,
		})
	}
	s.entries = entries
}

// save serializes the full collection and overwrites the blob.
// Failures are swallowed: the prior persisted state stays as-is.
func (s *EntryStore) save(ctx context.Context) {
	records := make([]entryRecord, 0, len(s.entries))
	for _, e := range s.entries {
		records = append(records, entryRecord{
			ID:        e.ID,
			Type:      e.Type.Code(),
			Text:      e.Text,
			CreatedAt: e.CreatedAt,
		})
	}

	raw, err := json.Marshal(records)
	if err != nil {
		s.logger.Warn("encoding entries failed, skipping save", "error", err)
		return
	}
	if err := s.repo.Put(ctx, EntriesKey, raw); err != nil {
		s.logger.Warn("writing entries failed, persisted state is stale",
			"key", EntriesKey, "error", err)
	}
}
