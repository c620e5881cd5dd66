package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/spendwise/internal/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagFormat string
	flagOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses and the derived month view as YAML or JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "yaml", "Output format: yaml or json")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

// exportDoc is the exported document.
type exportDoc struct {
	Month      string                   `json:"month" yaml:"month"`
	Budget     model.Budget             `json:"budget" yaml:"budget"`
	Expenses   []model.Expense          `json:"expenses" yaml:"expenses"`
	Summary    model.MonthSummary       `json:"summary" yaml:"summary"`
	Spending   model.MonthSummary       `json:"spending" yaml:"spending"`
	Projection model.SpendingProjection `json:"projection" yaml:"projection"`
	Alerts     []model.Alert            `json:"alerts" yaml:"alerts"`
	Goals      []model.GoalProgress     `json:"goals" yaml:"goals"`
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.state.Snapshot()
	doc := exportDoc{
		Month:      snap.Summary.Month.Format("2006-01"),
		Budget:     snap.Budget,
		Expenses:   s.state.Expenses(),
		Summary:    snap.Summary,
		Spending:   snap.Spending,
		Projection: snap.Projection,
		Alerts:     snap.Alerts,
		Goals:      snap.Goals,
	}

	if flagOutput == "" {
		return writeExport(os.Stdout, flagFormat, doc)
	}

	if err := exportToFile(flagOutput, flagFormat, doc); err != nil {
		return err
	}
	if !quiet() {
		fmt.Fprintf(os.Stderr, "  Wrote %d expenses to %s\n", len(doc.Expenses), flagOutput)
	}
	return nil
}

func exportToFile(path, format string, doc exportDoc) error {
	f, err := os.Create(path) //nolint:gosec // user-chosen output path
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	return writeAndClose(f, format, doc)
}

// writeAndClose writes the export to wc and closes it. A close failure is
// reported when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, format string, doc exportDoc) error {
	err := writeExport(wc, format, doc)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing export file: %w", cerr)
	}
	return err
}

func writeExport(w io.Writer, format string, doc exportDoc) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown export format %q (want yaml or json)", format)
}
