package index

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/welfare-index/internal/dataset"
	"github.com/sells-group/welfare-index/internal/series"
)

func builtinRecords(t *testing.T) []Record {
	t.Helper()
	reg, err := dataset.Builtin{}.Load(context.Background())
	require.NoError(t, err)
	records, err := Align(reg)
	require.NoError(t, err)
	return records
}

func registry(t *testing.T, spending, cpi, pop, gdp map[int]float64) *dataset.Registry {
	t.Helper()
	reg, err := dataset.NewRegistry(
		series.FromMap("spending", spending),
		series.FromMap("cpi", cpi),
		series.FromMap("population", pop),
		series.FromMap("gdp_per_capita", gdp),
	)
	require.NoError(t, err)
	return reg
}

func TestAlign_Complete(t *testing.T) {
	records := builtinRecords(t)
	require.Len(t, records, 34)

	for i, r := range records {
		assert.Equal(t, 1991+i, r.Year)
	}
	first := records[0]
	assert.InDelta(t, 394.9, first.Spending, 1e-12)
	assert.InDelta(t, 62.1, first.CPI, 1e-12)
	assert.InDelta(t, 79.973, first.Population, 1e-12)
	assert.InDelta(t, 30.4, first.GDPPerCapita, 1e-12)
	assert.Zero(t, first.WelfareIndex)
}

func TestAlign_SortsUnorderedInput(t *testing.T) {
	in := []series.Point{{Year: 2003, Value: 3}, {Year: 2001, Value: 1}, {Year: 2002, Value: 2}}
	mk := func(name string) *series.Series {
		s, err := series.New(name, in)
		require.NoError(t, err)
		return s
	}
	reg, err := dataset.NewRegistry(mk("spending"), mk("cpi"), mk("population"), mk("gdp_per_capita"))
	require.NoError(t, err)

	records, err := Align(reg)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int{2001, 2002, 2003}, []int{records[0].Year, records[1].Year, records[2].Year})
	assert.InDelta(t, 2.0, records[1].CPI, 1e-12)
}

func TestAlign_MissingYearFailsFast(t *testing.T) {
	full := map[int]float64{1999: 1, 2000: 2, 2001: 3}
	gap := map[int]float64{1999: 1, 2001: 3}

	// Registry would reject this set; go through the same check Align relies on.
	err := series.CheckAligned(
		series.FromMap("spending", full),
		series.FromMap("cpi", full),
		series.FromMap("population", full),
		series.FromMap("gdp_per_capita", gap),
	)
	var dae *series.DataAlignmentError
	require.True(t, errors.As(err, &dae))
	assert.Equal(t, []int{2000}, dae.Years())
	assert.Contains(t, err.Error(), "year 2000")

	_, err = dataset.NewRegistry(
		series.FromMap("spending", full),
		series.FromMap("cpi", full),
		series.FromMap("population", full),
		series.FromMap("gdp_per_capita", gap),
	)
	require.True(t, errors.As(err, &dae))
}

func TestDerive_ConcreteScenario2015(t *testing.T) {
	tbl, err := Derive(builtinRecords(t), 2015)
	require.NoError(t, err)
	assert.Equal(t, 2015, tbl.ReferenceYear)

	r, ok := tbl.Lookup(2015)
	require.True(t, ok)
	assert.InDelta(t, 10924.6, r.WelfarePerCapita, 0.5)
	assert.Equal(t, 100.0, r.PriceIndexRebased)
	assert.Equal(t, 100.0, r.WelfareIndex)
	assert.Equal(t, 100.0, r.OutputIndex)
}

func TestDerive_KnownValues(t *testing.T) {
	tbl, err := Derive(builtinRecords(t), 2015)
	require.NoError(t, err)

	first, _ := tbl.Lookup(1991)
	assert.InDelta(t, 4937.9165, first.WelfarePerCapita, 1e-3)
	assert.InDelta(t, 65.4373, first.PriceIndexRebased, 1e-3)
	assert.InDelta(t, 7546.0271, first.WelfarePerCapitaReal, 1e-3)
	assert.InDelta(t, 69.0735, first.WelfareIndex, 1e-3)
	assert.InDelta(t, 74.1463, first.OutputIndex, 1e-3)

	last, _ := tbl.Lookup(2024)
	assert.InDelta(t, 115.6379, last.WelfareIndex, 1e-3)
	assert.InDelta(t, 103.9024, last.OutputIndex, 1e-3)
}

func TestDerive_ReferenceYearIdentity(t *testing.T) {
	records := builtinRecords(t)
	for _, year := range []int{1991, 2000, 2015, 2020, 2024} {
		tbl, err := Derive(records, year)
		require.NoError(t, err)
		r, ok := tbl.Lookup(year)
		require.True(t, ok)
		assert.Equal(t, 100.0, r.WelfareIndex, "welfare index at %d", year)
		assert.Equal(t, 100.0, r.OutputIndex, "output index at %d", year)
		assert.Equal(t, 100.0, r.PriceIndexRebased, "price index at %d", year)
	}
}

func TestDerive_ConstantCPINoDrift(t *testing.T) {
	spending, cpi, pop, gdp := map[int]float64{}, map[int]float64{}, map[int]float64{}, map[int]float64{}
	for y := 2000; y <= 2003; y++ {
		spending[y] = 500 + float64(y-2000)*25
		cpi[y] = 87.5
		pop[y] = 80 + float64(y-2000)
		gdp[y] = 35
	}
	records, err := Align(registry(t, spending, cpi, pop, gdp))
	require.NoError(t, err)

	tbl, err := Derive(records, 2001)
	require.NoError(t, err)
	for _, r := range tbl.Records {
		assert.InDelta(t, 100.0, r.PriceIndexRebased, 1e-12)
		assert.InDelta(t, 1.0, r.WelfarePerCapitaReal/r.WelfarePerCapita, 1e-12, "year %d", r.Year)
	}
}

func TestDerive_DoublingPopulationHalvesPerCapita(t *testing.T) {
	base := builtinRecords(t)
	doubled := make([]Record, len(base))
	copy(doubled, base)
	for i := range doubled {
		if doubled[i].Year == 2005 {
			doubled[i].Population *= 2
		}
	}

	a, err := Derive(base, 2015)
	require.NoError(t, err)
	b, err := Derive(doubled, 2015)
	require.NoError(t, err)

	ra, _ := a.Lookup(2005)
	rb, _ := b.Lookup(2005)
	assert.InDelta(t, ra.WelfarePerCapita/2, rb.WelfarePerCapita, 1e-9)

	other, _ := b.Lookup(2006)
	same, _ := a.Lookup(2006)
	assert.Equal(t, same, other)
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	records := builtinRecords(t)
	snapshot := make([]Record, len(records))
	copy(snapshot, records)

	_, err := Derive(records, 2015)
	require.NoError(t, err)
	assert.Equal(t, snapshot, records)
}

func TestDerive_Deterministic(t *testing.T) {
	a, err := Derive(builtinRecords(t), 2015)
	require.NoError(t, err)
	b, err := Derive(builtinRecords(t), 2015)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDerive_ReferenceYearNotFound(t *testing.T) {
	t.Run("outside range", func(t *testing.T) {
		_, err := Derive(builtinRecords(t), 1990)
		var rnf *ReferenceYearNotFoundError
		require.True(t, errors.As(err, &rnf))
		assert.Equal(t, 1990, rnf.Year)
		assert.Equal(t, 1991, rnf.FirstYear)
		assert.Equal(t, 2024, rnf.LastYear)
		assert.Contains(t, err.Error(), "1990")
	})

	t.Run("no records", func(t *testing.T) {
		_, err := Derive(nil, 2015)
		var rnf *ReferenceYearNotFoundError
		require.True(t, errors.As(err, &rnf))
		assert.Contains(t, err.Error(), "no records")
	})
}

func TestDerive_InvalidObservation(t *testing.T) {
	tests := []struct {
		name   string
		year   int
		mutate func(r *Record)
		field  string
	}{
		{"zero cpi", 2003, func(r *Record) { r.CPI = 0 }, "cpi"},
		{"negative cpi", 1995, func(r *Record) { r.CPI = -1 }, "cpi"},
		{"zero population", 2010, func(r *Record) { r.Population = 0 }, "population"},
		{"negative population", 2024, func(r *Record) { r.Population = -84.7 }, "population"},
		{"nan spending", 2000, func(r *Record) { r.Spending = math.NaN() }, "spending"},
		{"inf gdp", 2001, func(r *Record) { r.GDPPerCapita = math.Inf(1) }, "gdp_per_capita"},
		{"zero gdp at reference", 2015, func(r *Record) { r.GDPPerCapita = 0 }, "gdp_per_capita"},
		{"zero spending at reference", 2015, func(r *Record) { r.Spending = 0 }, "spending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := builtinRecords(t)
			for i := range records {
				if records[i].Year == tt.year {
					tt.mutate(&records[i])
				}
			}

			tbl, err := Derive(records, 2015)
			require.Error(t, err)
			assert.Nil(t, tbl)

			var ioe *InvalidObservationError
			require.True(t, errors.As(err, &ioe))
			assert.Equal(t, tt.year, ioe.Year)
			assert.Equal(t, tt.field, ioe.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDerive_NonReferenceGDPZeroAllowed(t *testing.T) {
	records := builtinRecords(t)
	for i := range records {
		if records[i].Year == 2009 {
			records[i].GDPPerCapita = 0
		}
	}
	tbl, err := Derive(records, 2015)
	require.NoError(t, err)
	r, _ := tbl.Lookup(2009)
	assert.Zero(t, r.OutputIndex)
}

func TestTable_Accessors(t *testing.T) {
	tbl, err := Derive(builtinRecords(t), 2015)
	require.NoError(t, err)

	assert.Equal(t, 34, tbl.Len())
	years := tbl.Years()
	assert.Equal(t, 1991, years[0])
	assert.Equal(t, 2024, years[33])

	w := tbl.WelfareIndex()
	o := tbl.OutputIndex()
	require.Len(t, w, 34)
	require.Len(t, o, 34)
	assert.Equal(t, 100.0, w[2015-1991])
	assert.Equal(t, 100.0, o[2015-1991])

	_, ok := tbl.Lookup(1850)
	assert.False(t, ok)
}

func TestTable_Summary(t *testing.T) {
	tbl, err := Derive(builtinRecords(t), 2015)
	require.NoError(t, err)

	s, ok := tbl.Summary()
	require.True(t, ok)
	assert.Equal(t, 1991, s.FirstYear)
	assert.Equal(t, 2024, s.LastYear)
	assert.InDelta(t, 115.6379/69.0735*100-100, s.WelfareChange, 1e-2)
	assert.InDelta(t, 42.6/30.4*100-100, s.OutputChange, 1e-9)
	assert.InDelta(t, s.WelfareLast-s.OutputLast, s.GapLast, 1e-12)

	_, ok = (&Table{}).Summary()
	assert.False(t, ok)
}
