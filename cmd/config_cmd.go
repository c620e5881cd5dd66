package cmd

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/spendwise/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := settings.GetString("config")
	if path == "" {
		path = config.ConfigPath()
	}
	fmt.Printf("  Config file: %s\n", path)
	if config.Exists() || settings.GetString("config") != "" {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Monthly: $%.2f\n", cfg.Budget.Monthly)
	names := make([]string, 0, len(cfg.Budget.Categories))
	for name := range cfg.Budget.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("    %-15s $%.2f\n", name+":", cfg.Budget.Categories[name])
	}
	fmt.Println()

	fmt.Println("  [Period]")
	month := cfg.Period.Month
	if month == "" {
		month = "current"
	}
	fmt.Printf("    Month:        %s\n", month)
	if cfg.Period.ElapsedDays > 0 {
		fmt.Printf("    Elapsed days: %d\n", cfg.Period.ElapsedDays)
	} else {
		fmt.Println("    Elapsed days: today's day of month")
	}
	fmt.Printf("    Period days:  %d\n", cfg.Period.PeriodDays)
	fmt.Println()

	fmt.Printf("  [Goals] %d configured\n", len(cfg.Goals))
	for _, g := range cfg.Goals {
		fmt.Printf("    %s: $%.2f of $%.2f by %s\n", g.Title, g.Current, g.Target, g.Deadline)
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	if cfg.Storage.Path != "" {
		fmt.Printf("    Journal: %s\n", cfg.Storage.Path)
	} else {
		fmt.Println("    Journal: disabled (in-memory)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level:  %s\n", cfg.Logging.Level)
	fmt.Printf("    Format: %s\n", cfg.Logging.Format)
	fmt.Printf("    TUI log: %s\n", config.LogPath())
	fmt.Println()

	fmt.Println("  Run `spendwise setup` to reconfigure.")
	return nil
}
