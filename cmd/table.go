package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/welfare-index/internal/export"
)

var tableSummary bool

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the derived per-year values and both indices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		run, err := buildTable(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := export.WriteText(out, run.table, run.printer); err != nil {
			return eris.Wrap(err, "table")
		}
		if tableSummary {
			if err := export.WriteSummary(out, run.table, run.printer); err != nil {
				return eris.Wrap(err, "table")
			}
		}
		return nil
	},
}

func init() {
	tableCmd.Flags().BoolVar(&tableSummary, "summary", true, "print a first-to-last year comparison after the table")
	rootCmd.AddCommand(tableCmd)
}
