package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewLog ViewID = iota
	ViewCapture
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// viewCapturesInput reports whether the active view owns raw key input.
// The capture form must receive every character, including ones that
// would otherwise be global shortcuts.
func viewCapturesInput(v View) bool {
	return v.ID() == ViewCapture
}
