package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/spendwise/internal/config"
	"github.com/theirongolddev/spendwise/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	monthly := strconv.FormatFloat(cfg.Budget.Monthly, 'f', 2, 64)
	themeName := cfg.Appearance.Theme
	journal := cfg.Storage.Path != ""

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spendwise!").
				Description("Set a monthly budget, pick a theme, and choose whether expenses persist."),
			huh.NewInput().
				Title("Monthly budget").
				Description("Category ceilings are kept as configured.").
				Value(&monthly).
				Validate(validateMoney),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
			huh.NewConfirm().
				Title("Keep an expense journal?").
				Description("Saved to " + config.DefaultJournalPath()).
				Affirmative("Yes").
				Negative("No, in-memory only").
				Value(&journal),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("setup form: %w", err)
	}

	cfg.Budget.Monthly, _ = strconv.ParseFloat(strings.TrimSpace(monthly), 64)
	cfg.Appearance.Theme = themeName
	switch {
	case !journal:
		cfg.Storage.Path = ""
	case cfg.Storage.Path == "":
		cfg.Storage.Path = config.DefaultJournalPath()
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `spendwise setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func validateMoney(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number like 1200")
	}
	if v < 0 {
		return config.ErrNegativeCeiling
	}
	return nil
}
