package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/amercer/tally/internal/domain"
)

// FormatCounts renders the per-type counts header for a filter window,
// e.g. "PAST WEEK ── 3 wins · 1 loss · 2 growth".
func FormatCounts(filter domain.TimeFilter, tally domain.Tally) string {
	parts := []string{
		render(StyleGreen, fmt.Sprintf("%d %s", tally.Wins, plural(tally.Wins, "win", "wins"))),
		render(StyleRed, fmt.Sprintf("%d %s", tally.Losses, plural(tally.Losses, "loss", "losses"))),
		render(StyleYellow, fmt.Sprintf("%d growth", tally.Growth)),
	}
	return render(StyleHeader, strings.ToUpper(filter.Label())) +
		" " + Dim("──") + " " + strings.Join(parts, Dim(" · "))
}

// FormatEntryLine renders one entry as a single log line:
// type badge, relative date, then the text.
func FormatEntryLine(e *domain.Entry, now time.Time) string {
	return fmt.Sprintf("%s %s  %s",
		TypeBadge(e.Type),
		Dim(fmt.Sprintf("%-8s", RelativeDateFrom(e.CreatedAt, now))),
		render(StyleFg, e.Text))
}

// RelativeDateFrom returns a human-friendly relative date string from a
// reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == -1:
		return "Yesterday"
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	case days < 0:
		return fmt.Sprintf("%dmo ago", -days/30)
	default:
		// Entries dated in the future can appear after clock changes.
		return t.Format("2006-01-02")
	}
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
