package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/welfare-index/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the derived table as CSV or XLSX",
	Long: `Writes one row per year with the four inputs, the derived per-capita values, and
both indices. CSV uses machine-readable column names at full precision and goes to
stdout unless --out is set. XLSX uses localized headers and requires --out.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		switch exportFormat {
		case export.FormatCSV:
		case export.FormatXLSX:
			if exportOut == "" {
				return eris.New("export: --out is required for xlsx")
			}
		default:
			return eris.Errorf("export: unknown format %q (valid: csv, xlsx)", exportFormat)
		}

		run, err := buildTable(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		if exportFormat == export.FormatXLSX {
			if err := export.WriteXLSX(exportOut, run.table, run.printer); err != nil {
				return err
			}
		} else if exportOut == "" {
			if err := export.WriteCSV(cmd.OutOrStdout(), run.table); err != nil {
				return err
			}
		} else {
			if err := writeCSVFile(exportOut, run); err != nil {
				return err
			}
		}

		if exportOut != "" {
			run.log.Info("export complete",
				zap.String("format", exportFormat),
				zap.String("path", exportOut),
				zap.Int("rows", run.table.Len()),
			)
		}
		return nil
	},
}

func writeCSVFile(path string, run *pipelineRun) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = eris.Wrapf(cerr, "export: close %s", path)
		}
	}()
	return export.WriteCSV(f, run.table)
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatCSV, "output format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (csv defaults to stdout)")
	rootCmd.AddCommand(exportCmd)
}
