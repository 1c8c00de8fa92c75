package cli

import (
	"log/slog"

	"github.com/amercer/tally/internal/config"
	"github.com/amercer/tally/internal/store"
)

// App holds everything CLI commands and TUI views need.
type App struct {
	Store  *store.EntryStore
	Config *config.Config
	Logger *slog.Logger

	// DBPath is the resolved database location, shown by `tally path`.
	DBPath string

	// IsInteractive reports whether stdin is a terminal. Running the
	// bare command starts the TUI only when this returns true.
	IsInteractive func() bool
}
