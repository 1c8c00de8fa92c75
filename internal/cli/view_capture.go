package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/amercer/tally/internal/cli/formatter"
	"github.com/amercer/tally/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tallyHuhTheme returns a custom huh theme using the Gruvbox palette.
func tallyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// captureView wraps the entry capture form. When the form completes it
// records the entry through the store and pops back to the log view.
type captureView struct {
	state *SharedState
	form  *huh.Form

	entryType domain.EntryType
	text      string
	submitted bool
}

func newCaptureView(state *SharedState) *captureView {
	v := &captureView{
		state:     state,
		entryType: domain.TypeWin,
	}

	options := make([]huh.Option[domain.EntryType], 0, len(domain.EntryTypes))
	for _, t := range domain.EntryTypes {
		options = append(options, huh.NewOption(t.Label(), t))
	}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.EntryType]().
				Title("What kind of entry?").
				Options(options...).
				Value(&v.entryType),
			huh.NewInput().
				Title("What happened?").
				Placeholder("shipped the release").
				Value(&v.text).
				Validate(validateNonEmpty),
		),
	).WithTheme(tallyHuhTheme()).WithShowHelp(false)

	return v
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter some text")
	}
	return nil
}

func (v *captureView) ID() ViewID    { return ViewCapture }
func (v *captureView) Title() string { return "Add Entry" }

func (v *captureView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *captureView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *captureView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the capture.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return captureDoneMsg{status: formatter.Dim("Cancelled.")}
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.submitted {
		v.submitted = true
		entryType := v.entryType
		text := strings.TrimSpace(v.text)
		store := v.state.App.Store
		// The store mutation runs inside a tea.Cmd, off the event
		// loop, so the subscription's program.Send cannot deadlock.
		return v, tea.Batch(cmd, func() tea.Msg {
			e := store.Add(context.Background(), entryType, text)
			return captureDoneMsg{
				status: formatter.TypeBadge(e.Type) + " " + formatter.Bold("recorded."),
			}
		})
	}

	return v, cmd
}

func (v *captureView) View() string {
	return v.form.View()
}
