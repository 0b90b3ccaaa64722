package index

import (
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/welfare-index/internal/dataset"
	"github.com/sells-group/welfare-index/internal/series"
)

const (
	billion = 1e9
	million = 1e6
)

// Align joins the registry's four series on year. Every year must be present in
// every series; the result holds one record per year in strictly ascending order.
func Align(reg *dataset.Registry) ([]Record, error) {
	if err := series.CheckAligned(reg.Series()...); err != nil {
		return nil, err
	}

	years := reg.Years()
	records := make([]Record, len(years))
	for i, y := range years {
		r := Record{Year: y}
		r.Spending, _ = reg.Spending().Value(y)
		r.CPI, _ = reg.CPI().Value(y)
		r.Population, _ = reg.Population().Value(y)
		r.GDPPerCapita, _ = reg.Output().Value(y)
		records[i] = r
	}

	for i := 1; i < len(records); i++ {
		if records[i].Year <= records[i-1].Year {
			return nil, eris.Errorf("align: years out of order at %d", records[i].Year)
		}
	}

	zap.L().Debug("aligned series",
		zap.Int("years", len(records)),
		zap.Int("first_year", records[0].Year),
		zap.Int("last_year", records[len(records)-1].Year),
	)
	return records, nil
}

// Derive computes per-capita, deflated, and indexed values for every record.
// Reference-year values are captured once and reused for all years, so both
// indices are exactly 100 at referenceYear. The input slice is not modified.
func Derive(records []Record, referenceYear int) (*Table, error) {
	ref := -1
	for i, r := range records {
		if r.Year == referenceYear {
			ref = i
			break
		}
	}
	if ref < 0 {
		e := &ReferenceYearNotFoundError{Year: referenceYear}
		if len(records) > 0 {
			e.FirstYear = records[0].Year
			e.LastYear = records[len(records)-1].Year
		}
		return nil, e
	}

	for _, r := range records {
		if err := validate(r); err != nil {
			return nil, err
		}
	}

	out := make([]Record, len(records))
	copy(out, records)

	// Steps 1-3: per capita, rebased price level, deflation.
	cpiRef := out[ref].CPI
	for i := range out {
		r := &out[i]
		r.WelfarePerCapita = (r.Spending * billion) / (r.Population * million)
		r.PriceIndexRebased = r.CPI / cpiRef * 100
		r.WelfarePerCapitaReal = r.WelfarePerCapita / r.PriceIndexRebased * 100
	}

	// Step 4: welfare index.
	welfareRef := out[ref].WelfarePerCapitaReal
	if !(welfareRef > 0) {
		return nil, &InvalidObservationError{
			Year:   referenceYear,
			Field:  string(dataset.Spending),
			Value:  out[ref].Spending,
			Reason: "reference-year value must be positive",
		}
	}
	for i := range out {
		out[i].WelfareIndex = out[i].WelfarePerCapitaReal / welfareRef * 100
	}

	// Step 5: output index. GDP per head is already real, so it is only rebased.
	outputRef := out[ref].GDPPerCapita
	if !(outputRef > 0) {
		return nil, &InvalidObservationError{
			Year:   referenceYear,
			Field:  string(dataset.GDPPerCapita),
			Value:  outputRef,
			Reason: "reference-year value must be positive",
		}
	}
	for i := range out {
		out[i].OutputIndex = out[i].GDPPerCapita / outputRef * 100
	}

	zap.L().Debug("derived indices",
		zap.Int("reference_year", referenceYear),
		zap.Float64("cpi_ref", cpiRef),
		zap.Float64("welfare_per_capita_real_ref", welfareRef),
		zap.Float64("gdp_per_capita_ref", outputRef),
	)
	return &Table{ReferenceYear: referenceYear, Records: out}, nil
}

func validate(r Record) error {
	fields := []struct {
		name     string
		value    float64
		positive bool
	}{
		{string(dataset.Spending), r.Spending, false},
		{string(dataset.CPI), r.CPI, true},
		{string(dataset.Population), r.Population, true},
		{string(dataset.GDPPerCapita), r.GDPPerCapita, false},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidObservationError{Year: r.Year, Field: f.name, Value: f.value, Reason: "not a finite number"}
		}
		if f.positive && f.value <= 0 {
			return &InvalidObservationError{Year: r.Year, Field: f.name, Value: f.value, Reason: "must be positive"}
		}
	}
	return nil
}
