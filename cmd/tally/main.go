package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/amercer/tally/internal/cli"
	"github.com/amercer/tally/internal/config"
	"github.com/amercer/tally/internal/db"
	"github.com/amercer/tally/internal/repository"
	"github.com/amercer/tally/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	// Load optional config from ~/.tally/config.yaml.
	cfgDir, err := config.DefaultDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(filepath.Join(cfgDir, "config.yaml"))
	if err != nil {
		return err
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	blobs := repository.NewSQLiteBlobRepo(database)
	entries := store.NewEntryStore(context.Background(), blobs, logger)

	app := &cli.App{
		Store:  entries,
		Config: cfg,
		Logger: logger,
		DBPath: dbPath,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// logLevel reads TALLY_LOG; storage fallbacks log at warn, so the
// default keeps normal runs quiet.
func logLevel() slog.Level {
	switch os.Getenv("TALLY_LOG") {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
