// Package chart renders the welfare and GDP indices as a dual-line time chart.
package chart

import (
	"strconv"

	"github.com/sells-group/welfare-index/internal/index"
	"github.com/sells-group/welfare-index/internal/locale"
)

// Glyph selects the point marker of a series.
type Glyph int

const (
	Circle Glyph = iota
	Square
)

// Series is one plotted line.
type Series struct {
	Label  string
	Values []float64 // one per Spec.Years entry
	Dashed bool
	Glyph  Glyph
}

// Spec is everything needed to draw the chart, independent of the plotting backend.
type Spec struct {
	Title     string
	XLabel    string
	YLabel    string
	Years     []int
	Series    []Series
	Reference float64 // horizontal calibration line
}

// BuildSpec lays out the welfare index (solid, circles) and the GDP index
// (dashed, squares) with labels in the printer's language.
func BuildSpec(tbl *index.Table, p *locale.Printer) Spec {
	ref := strconv.Itoa(tbl.ReferenceYear)
	return Spec{
		Title:  p.T(locale.ChartTitle, ref),
		XLabel: p.T(locale.ChartXLabel),
		YLabel: p.T(locale.ChartYLabel, ref),
		Years:  tbl.Years(),
		Series: []Series{
			{Label: p.T(locale.ChartWelfare), Values: tbl.WelfareIndex(), Glyph: Circle},
			{Label: p.T(locale.ChartOutput), Values: tbl.OutputIndex(), Dashed: true, Glyph: Square},
		},
		Reference: 100,
	}
}
