package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/welfare-index/internal/chart"
	"github.com/sells-group/welfare-index/internal/config"
	"github.com/sells-group/welfare-index/internal/locale"
)

var cfg *config.Config

var (
	configPath    string
	referenceYear int
	language      string
	chartOut      string
	noDisplay     bool
)

// viewer displays the finished chart; tests replace it.
var viewer chart.Viewer = chart.SystemViewer{}

var rootCmd = &cobra.Command{
	Use:   "welfare-index",
	Short: "Chart real per-capita social benefits against real GDP per capita",
	Long: `Aligns German social-benefit spending, consumer prices, population, and real GDP
per capita by year, deflates benefits to per-capita reference-year prices, indexes both
series to the reference year (= 100), and renders them as a dual-line chart.

Run without arguments to produce sozialleistungen_vs_bip_final.png from the built-in
1991-2024 figures.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyFlags(cmd, c)
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		run, err := buildTable(ctx, cfg)
		if err != nil {
			return err
		}

		path := cfg.Chart.Output
		spec := chart.BuildSpec(run.table, run.printer)
		opts := chart.Options{WidthInches: cfg.Chart.WidthInches, HeightInches: cfg.Chart.HeightInches}
		if err := chart.Render(spec, path, opts); err != nil {
			return eris.Wrap(err, "render")
		}
		fmt.Fprintln(cmd.OutOrStdout(), run.printer.T(locale.Saved, path))

		if cfg.Chart.Display {
			display(ctx, run.log, path)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./welfare-index.yaml)")
	rootCmd.PersistentFlags().IntVar(&referenceYear, "reference-year", 0, "reference year for both indices (default 2015)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "output language: de or en (default de)")
	rootCmd.Flags().StringVarP(&chartOut, "out", "o", "", "chart image path (.png, .jpg, .svg, .pdf)")
	rootCmd.Flags().BoolVar(&noDisplay, "no-display", false, "do not open the chart after saving")
}

// applyFlags lets explicitly set flags override file and environment settings.
// Chart flags belong to the root command only.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("reference-year") {
		c.Index.ReferenceYear = referenceYear
	}
	if flags.Changed("lang") {
		c.Chart.Language = language
	}
	if cmd.HasParent() {
		return
	}
	if flags.Changed("out") {
		c.Chart.Output = chartOut
	}
	if flags.Changed("no-display") && noDisplay {
		c.Chart.Display = false
	}
}

// display is the last step of a run. The chart already exists at this point, so a
// viewer that cannot be launched is reported but does not fail the run.
func display(ctx context.Context, log *zap.Logger, path string) {
	if err := viewer.Open(ctx, path); err != nil {
		log.Warn("could not open chart viewer", zap.String("path", path), zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
