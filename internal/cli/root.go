package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/fincerdas/internal/domain"
	"github.com/alexanderramin/fincerdas/internal/planner"
	"github.com/alexanderramin/fincerdas/internal/progression"
	"github.com/alexanderramin/fincerdas/internal/repository"
	"github.com/alexanderramin/fincerdas/internal/router"
)

// App bundles the wired services the commands operate on.
type App struct {
	Tracker  *progression.Tracker
	Planner  *planner.Service
	Progress repository.ProgressRepo

	// IsInteractive reports whether stdin is a terminal; the TUI refuses
	// to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fincerdas" command. Running it without a
// subcommand starts the TUI.
func NewRootCmd(app *App) *cobra.Command {
	var startAt string

	root := &cobra.Command{
		Use:   "fincerdas",
		Short: "Belajar literasi keuangan digital dari terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, startAt)
		},
	}
	root.Flags().StringVar(&startAt, "at", "#/beranda", "halaman awal, mis. #/belajar atau #/modul/m2")

	root.AddCommand(
		newStatsCmd(app),
		newResetCmd(app),
	)
	return root
}

func runTUI(app *App, startAt string) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return errors.New("butuh terminal interaktif; jalankan \"fincerdas stats\" untuk ringkasan")
	}

	// The daily streak moves exactly once, before the first render.
	if err := app.Tracker.UpdateStreak(context.Background(), time.Now()); err != nil {
		return fmt.Errorf("updating streak: %w", err)
	}

	model := newAppModel(app, router.Parse(startAt))
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Cetak ringkasan progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderStats(app.Tracker.Document()))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Hapus seluruh progress dan mulai dari awal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("tambahkan --yes untuk konfirmasi; progress tidak bisa dikembalikan")
			}
			if err := app.Progress.Save(cmd.Context(), domain.DefaultProgress()); err != nil {
				return fmt.Errorf("resetting progress: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress direset.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "konfirmasi reset tanpa bertanya")
	return cmd
}
