package cmd

import (
	"fmt"

	"github.com/theirongolddev/spendwise/internal/config"
	"github.com/theirongolddev/spendwise/internal/logging"
	"github.com/theirongolddev/spendwise/internal/tui"
	"github.com/theirongolddev/spendwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Logs go to a file; the alt screen owns the terminal.
	logger, logFile, err := logging.OpenFile(config.LogPath(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if !theme.Known(cfg.Appearance.Theme) {
		logger.Warn("unknown theme, using default", "theme", cfg.Appearance.Theme)
	}

	s, err := openSessionWith(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(s.state, tui.Options{
		Journaling: s.journal != nil,
		Logger:     logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info("dashboard started", "month", s.state.Month().Format("2006-01"), "expenses", len(s.state.Expenses()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
