package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/amercer/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
		{"future entry", now.Add(5 * 24 * time.Hour), "2026-02-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDateFrom(tt.input, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCounts(t *testing.T) {
	got := FormatCounts(domain.FilterWeek, domain.Tally{Wins: 3, Losses: 1, Growth: 2})
	assert.Contains(t, got, "PAST WEEK")
	assert.Contains(t, got, "3 wins")
	assert.Contains(t, got, "1 loss")
	assert.Contains(t, got, "2 growth")
}

func TestFormatCounts_Pluralization(t *testing.T) {
	got := FormatCounts(domain.FilterAll, domain.Tally{Wins: 1, Losses: 2})
	assert.Contains(t, got, "1 win")
	assert.NotContains(t, got, "1 wins")
	assert.Contains(t, got, "2 losses")
}

func TestFormatEntryLine(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	e := &domain.Entry{
		ID:        "x",
		Type:      domain.TypeWin,
		Text:      "shipped feature",
		CreatedAt: now.Add(-24 * time.Hour),
	}

	got := FormatEntryLine(e, now)
	assert.Contains(t, got, "W")
	assert.Contains(t, got, "Yesterday")
	assert.Contains(t, got, "shipped feature")
}

func TestHeader(t *testing.T) {
	SetColorEnabled(false)
	t.Cleanup(func() { SetColorEnabled(true) })

	got := Header("Stats")
	assert.Equal(t, "STATS\n"+strings.Repeat("─", 5), got)
}

func TestSetColorEnabled_TogglesStyling(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(termenv.Ascii)
		SetColorEnabled(true)
	})

	styled := FormatCounts(domain.FilterWeek, domain.Tally{Wins: 1})
	require.Contains(t, styled, "\x1b[")

	SetColorEnabled(false)
	plain := FormatCounts(domain.FilterWeek, domain.Tally{Wins: 1})
	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, plain, "1 win")
}
