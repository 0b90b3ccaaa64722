package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/welfare-index/internal/dataset"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "List the input series with units, sources, and year coverage",
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := dataset.NewSource(cfg.Data.Source, cfg.Data.Path, cfg.Data.Sheet)
		if err != nil {
			return eris.Wrap(err, "registry")
		}
		reg, err := src.Load(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "registry")
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "source: %s\n", src.Name())
		fmt.Fprintln(tw, "QUANTITY\tLABEL\tUNIT\tYEARS\tSOURCE")
		for _, q := range dataset.Quantities {
			s, err := reg.Get(q)
			if err != nil {
				return eris.Wrap(err, "registry")
			}
			info := q.Info()
			first, last, _ := s.Span()
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d-%d (%d)\t%s\n",
				q, info.Label, info.Unit, first, last, s.Len(), info.Source)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(seriesCmd)
}
