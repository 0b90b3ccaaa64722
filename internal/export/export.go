// Package export writes the derived index table as CSV, XLSX, or a console table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/sells-group/welfare-index/internal/index"
	"github.com/sells-group/welfare-index/internal/locale"
)

// Formats accepted by the export command.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "Index"

// csvHeader uses stable machine-readable names.
var csvHeader = []string{
	"year", "spending", "cpi", "population", "gdp_per_capita",
	"welfare_per_capita", "price_index_rebased", "welfare_per_capita_real",
	"welfare_index", "output_index",
}

var columnKeys = []string{
	locale.ColYear, locale.ColSpending, locale.ColCPI, locale.ColPopulation, locale.ColGDPPerCapita,
	locale.ColWelfarePC, locale.ColPriceRebased, locale.ColWelfarePCReal,
	locale.ColWelfareIndex, locale.ColOutputIndex,
}

func values(r index.Record) []float64 {
	return []float64{
		r.Spending, r.CPI, r.Population, r.GDPPerCapita,
		r.WelfarePerCapita, r.PriceIndexRebased, r.WelfarePerCapitaReal,
		r.WelfareIndex, r.OutputIndex,
	}
}

// WriteCSV writes every record at full float precision, so identical inputs give
// byte-identical output.
func WriteCSV(w io.Writer, tbl *index.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, r := range tbl.Records {
		row := []string{strconv.Itoa(r.Year)}
		for _, v := range values(r) {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrapf(err, "export: write csv row %d", r.Year)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}
	return nil
}

// WriteXLSX saves the table to a workbook with one header row in the printer's language.
func WriteXLSX(path string, tbl *index.Table, p *locale.Printer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return eris.Wrap(err, "export: rename sheet")
	}

	header := make([]any, len(columnKeys))
	for i, key := range columnKeys {
		header[i] = p.T(key)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return eris.Wrap(err, "export: write xlsx header")
	}
	if err := f.SetColWidth(SheetName, "A", "J", 22); err != nil {
		return eris.Wrap(err, "export: set column width")
	}

	for i, r := range tbl.Records {
		row := []any{r.Year}
		for _, v := range values(r) {
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return eris.Wrap(err, "export: cell name")
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return eris.Wrapf(err, "export: write xlsx row %d", r.Year)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

// WriteText prints the derived columns as an aligned table with locale number formatting.
func WriteText(w io.Writer, tbl *index.Table, p *locale.Printer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	cols := []string{
		locale.ColYear, locale.ColWelfarePC, locale.ColPriceRebased,
		locale.ColWelfarePCReal, locale.ColWelfareIndex, locale.ColOutputIndex,
	}
	for _, key := range cols {
		fmt.Fprintf(tw, "%s\t", p.T(key))
	}
	fmt.Fprintln(tw)

	for _, r := range tbl.Records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Year,
			p.Number(r.WelfarePerCapita, 1),
			p.Number(r.PriceIndexRebased, 1),
			p.Number(r.WelfarePerCapitaReal, 1),
			p.Number(r.WelfareIndex, 1),
			p.Number(r.OutputIndex, 1),
		)
	}
	if err := tw.Flush(); err != nil {
		return eris.Wrap(err, "export: flush table")
	}
	return nil
}

// WriteSummary prints one line comparing the first and last year.
func WriteSummary(w io.Writer, tbl *index.Table, p *locale.Printer) error {
	s, ok := tbl.Summary()
	if !ok {
		return nil
	}
	line := p.T(locale.SummaryLine,
		strconv.Itoa(s.FirstYear), strconv.Itoa(s.LastYear),
		s.WelfareChange, s.OutputChange,
		strconv.Itoa(s.LastYear), s.GapLast,
	)
	if _, err := fmt.Fprintln(w, line); err != nil {
		return eris.Wrap(err, "export: write summary")
	}
	return nil
}
