package dataset

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/welfare-index/internal/series"
)

// Registry holds the four input series. All series cover the identical set of years.
type Registry struct {
	series map[Quantity]*series.Series
}

// NewRegistry validates and stores the four series. It fails with a
// series.DataAlignmentError when the year sets differ.
func NewRegistry(spending, cpi, population, output *series.Series) (*Registry, error) {
	r := &Registry{
		series: map[Quantity]*series.Series{
			Spending:     spending,
			CPI:          cpi,
			Population:   population,
			GDPPerCapita: output,
		},
	}
	for _, q := range Quantities {
		if r.series[q] == nil {
			return nil, eris.Errorf("registry: series %q is nil", q)
		}
	}
	if err := series.CheckAligned(r.Series()...); err != nil {
		return nil, err
	}
	return r, nil
}

// Spending returns nominal social benefits in bn EUR.
func (r *Registry) Spending() *series.Series { return r.series[Spending] }

// CPI returns the consumer price index.
func (r *Registry) CPI() *series.Series { return r.series[CPI] }

// Population returns population in millions.
func (r *Registry) Population() *series.Series { return r.series[Population] }

// Output returns real GDP per head in thousand EUR.
func (r *Registry) Output() *series.Series { return r.series[GDPPerCapita] }

// Get returns the series for q.
func (r *Registry) Get(q Quantity) (*series.Series, error) {
	s, ok := r.series[q]
	if !ok {
		return nil, eris.Errorf("registry: unknown quantity %q", q)
	}
	return s, nil
}

// Series returns all four series in registry order.
func (r *Registry) Series() []*series.Series {
	out := make([]*series.Series, len(Quantities))
	for i, q := range Quantities {
		out[i] = r.series[q]
	}
	return out
}

// Years returns the shared year set, ascending.
func (r *Registry) Years() []int {
	return r.series[Spending].Years()
}
