package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/welfare-index/internal/config"
	"github.com/sells-group/welfare-index/internal/dataset"
	"github.com/sells-group/welfare-index/internal/index"
	"github.com/sells-group/welfare-index/internal/locale"
)

// pipelineRun carries the derived table and the per-run helpers every command needs.
type pipelineRun struct {
	table   *index.Table
	printer *locale.Printer
	log     *zap.Logger
}

// buildTable runs registry, align, and derive in order. Errors carry the failing
// stage name and keep their typed cause for errors.As.
func buildTable(ctx context.Context, c *config.Config) (*pipelineRun, error) {
	log := zap.L().With(zap.String("run_id", uuid.NewString()))

	tag, err := locale.Parse(c.Chart.Language)
	if err != nil {
		return nil, eris.Wrap(err, "config")
	}

	src, err := dataset.NewSource(c.Data.Source, c.Data.Path, c.Data.Sheet)
	if err != nil {
		return nil, eris.Wrap(err, "registry")
	}

	reg, err := src.Load(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "registry")
	}
	years := reg.Years()
	log.Info("registry loaded",
		zap.String("source", src.Name()),
		zap.Int("years", len(years)),
	)

	records, err := index.Align(reg)
	if err != nil {
		return nil, eris.Wrap(err, "align")
	}

	tbl, err := index.Derive(records, c.Index.ReferenceYear)
	if err != nil {
		return nil, eris.Wrap(err, "derive")
	}
	log.Info("indices derived",
		zap.Int("reference_year", tbl.ReferenceYear),
		zap.Int("records", tbl.Len()),
	)

	return &pipelineRun{table: tbl, printer: locale.NewPrinter(tag), log: log}, nil
}
