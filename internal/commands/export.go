package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/pnl/internal/export"
)

func newExportCommand() *cobra.Command {
	var repoDir string
	var format string
	var out string
	var raw bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the P&L grid as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			if format == "" {
				format = p.cfg.Export.Format
			}
			if !cmd.Flags().Changed("raw") {
				raw = p.cfg.Export.Raw
			}
			return runExport(p, format, out, raw)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&format, "format", "", "csv or xlsx (default from pnl.yaml)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default exports/pnl-<year>.<format>)")
	cmd.Flags().BoolVar(&raw, "raw", false, "write full-precision values (csv only)")

	return cmd
}

func runExport(p *project, format, out string, raw bool) error {
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("invalid format %q: want csv or xlsx", format)
	}

	if out == "" {
		out = filepath.Join(p.dir, p.cfg.Export.Dir, fmt.Sprintf("pnl-%d.%s", p.cfg.Fiscal.Year, format))
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	lines := export.Serialize(p.ledger)
	switch format {
	case "xlsx":
		err = export.WriteXLSX(f, lines, p.cfg.Export.SheetName)
	default:
		err = export.WriteCSV(f, lines, raw)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	fmt.Printf("Exported %d lines to %s\n", len(lines), out)
	return nil
}
