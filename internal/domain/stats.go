package domain

import "time"

// Tally holds per-type entry counts for a filtered window.
type Tally struct {
	Wins   int
	Losses int
	Growth int
}

// Total returns the sum of all three counts.
func (t Tally) Total() int { return t.Wins + t.Losses + t.Growth }

// Filter returns the entries whose CreatedAt falls inside the window
// ending at now, preserving order. The cutoff is inclusive; FilterAll
// returns the input as-is.
func Filter(entries []*Entry, f TimeFilter, now time.Time) []*Entry {
	cutoff, ok := f.Cutoff(now)
	if !ok {
		return entries
	}
	filtered := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Count tallies entries by type in a single pass.
func Count(entries []*Entry) Tally {
	var t Tally
	for _, e := range entries {
		switch e.Type {
		case TypeWin:
			t.Wins++
		case TypeLoss:
			t.Losses++
		case TypeGrowth:
			t.Growth++
		}
	}
	return t
}
