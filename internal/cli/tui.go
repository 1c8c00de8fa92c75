package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// runTUI starts the interactive journal. The store subscription turns
// every mutation into a refresh broadcast; it is removed when the
// program exits.
func runTUI(app *App) error {
	if !app.Config.ColorEnabled() {
		// Views render through lipgloss directly, so force the
		// renderer down to a colorless profile.
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m := newAppModel(app)
	p := tea.NewProgram(m, tea.WithAltScreen())

	subID := app.Store.Subscribe(func() {
		p.Send(refreshViewMsg{})
	})
	defer app.Store.Unsubscribe(subID)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
