package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/fincerdas/internal/cli"
	"github.com/alexanderramin/fincerdas/internal/db"
	"github.com/alexanderramin/fincerdas/internal/planner"
	"github.com/alexanderramin/fincerdas/internal/progression"
	"github.com/alexanderramin/fincerdas/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.fincerdas/fincerdas.db
	dbPath := os.Getenv("FINCERDAS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".fincerdas", "fincerdas.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	progressRepo := repository.NewSQLiteProgressRepo(database)
	tracker, err := progression.LoadTracker(context.Background(), progressRepo, nil)
	if err != nil {
		return err
	}

	app := &cli.App{
		Tracker:  tracker,
		Planner:  planner.NewService(tracker),
		Progress: progressRepo,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
