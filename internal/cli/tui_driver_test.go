package cli

import (
	"context"
	"testing"

	"github.com/amercer/tally/internal/config"
	"github.com/amercer/tally/internal/repository"
	"github.com/amercer/tally/internal/store"
	"github.com/amercer/tally/internal/teatest"
	"github.com/amercer/tally/internal/testutil"
)

// testApp builds an App over an in-memory database.
func testApp(t *testing.T) *App {
	t.Helper()
	repo := repository.NewSQLiteBlobRepo(testutil.NewTestDB(t))
	return &App{
		Store:  store.NewEntryStore(context.Background(), repo, nil),
		Config: &config.Config{},
		DBPath: ":memory:",
	}
}

// TestDriver wraps teatest.Driver with journal-specific inspection
// methods for appModel internals the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and
// drains Init(), which derives the log data synchronously.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ActiveFilter returns the shared state's current time filter.
func (d *TestDriver) ActiveFilter() string {
	return string(d.appModel().state.Filter)
}

// IsQuitting reports whether the model has quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
