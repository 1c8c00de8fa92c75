package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/amercer/tally/internal/cli/formatter"
	"github.com/amercer/tally/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// logData holds the derived state for one render of the log view.
// It is recomputed from the store on every load; nothing is cached
// across mutations.
type logData struct {
	entries []*domain.Entry
	tally   domain.Tally
	now     time.Time
}

// logLoadedMsg signals that log data has been derived.
type logLoadedMsg struct {
	data logData
}

// logView is the home screen: per-type counts for the active time
// filter above the filtered entries, newest first.
type logView struct {
	state  *SharedState
	data   *logData
	cursor int
	offset int // first visible entry index
}

func newLogView(state *SharedState) *logView {
	return &logView{state: state}
}

func (v *logView) ID() ViewID    { return ViewLog }
func (v *logView) Title() string { return "Log" }

func (v *logView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add entry")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *logView) Init() tea.Cmd {
	return v.loadData()
}

// loadData derives the filtered entries and counts from the store.
// "now" is captured once per load so the filter boundary is stable
// within a single render.
func (v *logView) loadData() tea.Cmd {
	store := v.state.App.Store
	filter := v.state.Filter
	return func() tea.Msg {
		now := time.Now()
		filtered := domain.Filter(store.Entries(), filter, now)
		return logLoadedMsg{data: logData{
			entries: filtered,
			tally:   domain.Count(filtered),
			now:     now,
		}}
	}
}

func (v *logView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case logLoadedMsg:
		v.data = &msg.data
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.WindowSizeMsg:
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			return v, pushView(newCaptureView(v.state))
		case "f":
			v.state.Filter = v.state.Filter.Next()
			v.cursor, v.offset = 0, 0
			return v, v.loadData()
		case "r":
			return v, v.loadData()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
				if v.cursor < v.offset {
					v.offset = v.cursor
				}
			}
			return v, nil
		case "down", "j":
			if v.data != nil && v.cursor < len(v.data.entries)-1 {
				v.cursor++
				if v.cursor >= v.offset+v.visibleRows() {
					v.offset = v.cursor - v.visibleRows() + 1
				}
			}
			return v, nil
		}
	}

	return v, nil
}

func (v *logView) View() string {
	if v.data == nil {
		return formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString(formatter.FormatCounts(v.state.Filter, v.data.tally))
	b.WriteString("\n\n")

	if len(v.data.entries) == 0 {
		b.WriteString(formatter.Dim("No entries in this window. Press 'a' to add one."))
		return b.String()
	}

	end := min(v.offset+v.visibleRows(), len(v.data.entries))
	for i := v.offset; i < end; i++ {
		line := formatter.FormatEntryLine(v.data.entries[i], v.data.now)
		if i == v.cursor {
			line = formatter.StyleHeader.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if remaining := len(v.data.entries) - end; remaining > 0 {
		b.WriteString(formatter.Dim("  ⋮ " + strconv.Itoa(remaining) + " more"))
	}

	return b.String()
}

// visibleRows is the number of entry lines that fit below the counts
// header.
func (v *logView) visibleRows() int {
	rows := v.state.ContentHeight() - 3
	if rows < 1 {
		return 1
	}
	return rows
}

func (v *logView) clampCursor() {
	if v.data == nil {
		return
	}
	if v.cursor >= len(v.data.entries) {
		v.cursor = len(v.data.entries) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.offset > v.cursor {
		v.offset = v.cursor
	}
}
