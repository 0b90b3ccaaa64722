// Package index aligns the input series by year and derives real per-capita
// welfare spending and GDP indices rebased to a reference year.
package index

// Record is one aligned year: the four raw observations and the derived fields.
// Derived fields are zero until Derive runs.
type Record struct {
	Year int

	Spending     float64 // bn EUR, nominal
	CPI          float64 // source base (2020 = 100)
	Population   float64 // millions
	GDPPerCapita float64 // thousand EUR, real

	WelfarePerCapita     float64 // EUR per person, nominal
	PriceIndexRebased    float64 // CPI with reference year = 100
	WelfarePerCapitaReal float64 // EUR per person in reference-year prices
	WelfareIndex         float64 // reference year = 100
	OutputIndex          float64 // reference year = 100
}

// Table is the derived, year-ascending result of the pipeline.
type Table struct {
	ReferenceYear int
	Records       []Record
}

// Len returns the number of years.
func (t *Table) Len() int { return len(t.Records) }

// Years returns all years in ascending order.
func (t *Table) Years() []int {
	out := make([]int, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Year
	}
	return out
}

// Lookup returns the record for year.
func (t *Table) Lookup(year int) (Record, bool) {
	for _, r := range t.Records {
		if r.Year == year {
			return r, true
		}
	}
	return Record{}, false
}

// WelfareIndex returns the welfare index per year, in table order.
func (t *Table) WelfareIndex() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.WelfareIndex
	}
	return out
}

// OutputIndex returns the GDP index per year, in table order.
func (t *Table) OutputIndex() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.OutputIndex
	}
	return out
}

// Summary compares the first and last year of both indices.
type Summary struct {
	FirstYear     int
	LastYear      int
	WelfareFirst  float64
	WelfareLast   float64
	OutputFirst   float64
	OutputLast    float64
	WelfareChange float64 // percent, first to last
	OutputChange  float64 // percent, first to last
	GapLast       float64 // WelfareLast - OutputLast, index points
}

// Summary returns the first-to-last comparison. ok is false for an empty table.
func (t *Table) Summary() (s Summary, ok bool) {
	if len(t.Records) == 0 {
		return Summary{}, false
	}
	first, last := t.Records[0], t.Records[len(t.Records)-1]
	s = Summary{
		FirstYear:    first.Year,
		LastYear:     last.Year,
		WelfareFirst: first.WelfareIndex,
		WelfareLast:  last.WelfareIndex,
		OutputFirst:  first.OutputIndex,
		OutputLast:   last.OutputIndex,
		GapLast:      last.WelfareIndex - last.OutputIndex,
	}
	s.WelfareChange = pctChange(first.WelfareIndex, last.WelfareIndex)
	s.OutputChange = pctChange(first.OutputIndex, last.OutputIndex)
	return s, true
}

func pctChange(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return (to/from - 1) * 100
}
