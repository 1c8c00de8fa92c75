package formatter

import (
	"fmt"
	"strings"

	"github.com/amercer/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var colorEnabled = true

// SetColorEnabled toggles styled output. When disabled the render
// helpers return plain text, honoring `color: false` in the config.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func render(s lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return s.Render(text)
}

// TypeStyle returns the lipgloss style for an entry type.
func TypeStyle(t domain.EntryType) lipgloss.Style {
	switch t {
	case domain.TypeWin:
		return StyleGreen
	case domain.TypeLoss:
		return StyleRed
	case domain.TypeGrowth:
		return StyleYellow
	default:
		return StyleDim
	}
}

// TypeBadge renders the short type code in its color, padded to a
// fixed width so entry lines align.
func TypeBadge(t domain.EntryType) string {
	return render(TypeStyle(t), fmt.Sprintf("%-3s", t.Code()))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", render(StyleHeader, upper), render(StyleDim, line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return render(StyleDim, text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return render(StyleBold, text)
}
