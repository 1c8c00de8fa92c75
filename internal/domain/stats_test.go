package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entryAt(entryType EntryType, text string, createdAt time.Time) *Entry {
	e := NewEntry(entryType, text)
	e.CreatedAt = createdAt
	return e
}

func TestFilter_All(t *testing.T) {
	entries := []*Entry{
		entryAt(TypeWin, "a", testNow.AddDate(-1, 0, 0)),
		entryAt(TypeLoss, "b", testNow),
	}
	got := Filter(entries, FilterAll, testNow)
	assert.Len(t, got, 2)
}

func TestFilter_WeekExcludesOldEntries(t *testing.T) {
	old := entryAt(TypeWin, "ten days ago", testNow.AddDate(0, 0, -10))
	recent := entryAt(TypeLoss, "yesterday", testNow.AddDate(0, 0, -1))
	entries := []*Entry{recent, old}

	got := Filter(entries, FilterWeek, testNow)
	assert.Len(t, got, 1)
	assert.Equal(t, "yesterday", got[0].Text)

	// The same ten-day-old entry is admitted by the month window.
	got = Filter(entries, FilterMonth, testNow)
	assert.Len(t, got, 2)
}

func TestFilter_CutoffInclusive(t *testing.T) {
	cutoff, _ := FilterWeek.Cutoff(testNow)
	boundary := entryAt(TypeWin, "exactly on the cutoff", cutoff)

	got := Filter([]*Entry{boundary}, FilterWeek, testNow)
	assert.Len(t, got, 1, "entry created exactly at the cutoff should be included")
}

func TestFilter_PreservesOrder(t *testing.T) {
	entries := []*Entry{
		entryAt(TypeWin, "newest", testNow),
		entryAt(TypeLoss, "older", testNow.Add(-time.Hour)),
		entryAt(TypeGrowth, "oldest", testNow.Add(-2*time.Hour)),
	}
	got := Filter(entries, FilterWeek, testNow)
	assert.Equal(t, "newest", got[0].Text)
	assert.Equal(t, "older", got[1].Text)
	assert.Equal(t, "oldest", got[2].Text)
}

func TestCount(t *testing.T) {
	entries := []*Entry{
		entryAt(TypeWin, "a", testNow),
		entryAt(TypeWin, "b", testNow),
		entryAt(TypeLoss, "c", testNow),
		entryAt(TypeGrowth, "d", testNow),
	}
	tally := Count(entries)
	assert.Equal(t, 2, tally.Wins)
	assert.Equal(t, 1, tally.Losses)
	assert.Equal(t, 1, tally.Growth)
	assert.Equal(t, len(entries), tally.Total())
}

func TestCount_Empty(t *testing.T) {
	tally := Count(nil)
	assert.Equal(t, Tally{}, tally)
	assert.Equal(t, 0, tally.Total())
}

func TestCount_MatchesFilteredLength(t *testing.T) {
	entries := []*Entry{
		entryAt(TypeWin, "a", testNow.AddDate(0, 0, -1)),
		entryAt(TypeLoss, "b", testNow.AddDate(0, 0, -10)),
		entryAt(TypeGrowth, "c", testNow.AddDate(0, -2, 0)),
	}
	for _, f := range TimeFilters {
		filtered := Filter(entries, f, testNow)
		assert.Equal(t, len(filtered), Count(filtered).Total(), "filter=%s", f)
	}
}
