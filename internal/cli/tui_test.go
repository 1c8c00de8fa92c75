package cli

import (
	"context"
	"testing"

	"github.com/amercer/tally/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_LogViewLoadsOnStartup(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewLog, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.View()
	assert.NotContains(t, view, "Loading...")
	assert.Contains(t, view, "No entries")
}

func TestTUI_LogViewShowsEntries(t *testing.T) {
	app := testApp(t)
	app.Store.Add(context.Background(), domain.TypeWin, "closed the deal")

	d := NewTestDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "closed the deal")
	assert.Contains(t, view, "1 win")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, d.IsQuitting())
}

func TestTUI_OpenAndCancelCapture(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('a')
	assert.Equal(t, ViewCapture, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	d.PressEsc()
	assert.Equal(t, ViewLog, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_CycleFilter(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, string(domain.FilterAll), d.ActiveFilter())

	d.PressKey('f')
	assert.Equal(t, string(domain.FilterWeek), d.ActiveFilter())

	d.PressKey('f')
	assert.Equal(t, string(domain.FilterMonth), d.ActiveFilter())
}

func TestTUI_CaptureFlowRecordsEntry(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	require.Equal(t, ViewCapture, d.ActiveViewID())

	// Accept the default type (Win), then enter the text.
	d.PressEnter()
	d.Type("shipped feature")
	d.PressEnter()

	assert.Equal(t, ViewLog, d.ActiveViewID())
	require.Equal(t, 1, app.Store.Len())
	e := app.Store.Entries()[0]
	assert.Equal(t, domain.TypeWin, e.Type)
	assert.Equal(t, "shipped feature", e.Text)

	// The log view reloaded after the mutation.
	assert.Contains(t, d.View(), "shipped feature")
}

func TestTUI_CaptureTrimsWhitespace(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	d.PressEnter()
	d.Type("  needs focus  ")
	d.PressEnter()

	require.Equal(t, 1, app.Store.Len())
	assert.Equal(t, "needs focus", app.Store.Entries()[0].Text)
}

func TestTUI_CaptureSelectsGrowthType(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('a')
	// Move the select from Win down to Opportunity for Growth.
	d.PressDown()
	d.PressDown()
	d.PressEnter()
	d.Type("ask for feedback earlier")
	d.PressEnter()

	require.Equal(t, 1, app.Store.Len())
	assert.Equal(t, domain.TypeGrowth, app.Store.Entries()[0].Type)
}

func TestTUI_RefreshPicksUpExternalAdds(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	app.Store.Add(context.Background(), domain.TypeLoss, "missed the deadline")
	assert.NotContains(t, d.View(), "missed the deadline")

	// The store subscription delivers this broadcast in the running app.
	d.Send(refreshViewMsg{})
	assert.Contains(t, d.View(), "missed the deadline")
}
