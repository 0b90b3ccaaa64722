// Package dataset provides the four annual statistics the welfare index is computed
// from, behind a Source interface so the built-in figures can be swapped for a file.
//
// The series come from different publications (BMAS Sozialbudget, AMECO, national
// accounts) and are assumed to be reconciled to a consistent vintage. Nothing here
// checks that; a Registry only guarantees the years line up.
package dataset

import (
	"context"
)

// Quantity identifies one of the four input statistics.
type Quantity string

const (
	Spending     Quantity = "spending"       // Sozialleistungen, bn EUR, current prices
	CPI          Quantity = "cpi"            // consumer price index, 2020 = 100
	Population   Quantity = "population"     // total population, millions
	GDPPerCapita Quantity = "gdp_per_capita" // real GDP per head, thousand EUR
)

// Quantities lists every quantity in registry order.
var Quantities = []Quantity{Spending, CPI, Population, GDPPerCapita}

// QuantityInfo describes a quantity for listings.
type QuantityInfo struct {
	Quantity Quantity
	Label    string
	Unit     string
	Source   string
}

var quantityInfo = map[Quantity]QuantityInfo{
	Spending: {
		Quantity: Spending,
		Label:    "Social benefits, total",
		Unit:     "bn EUR (nominal)",
		Source:   "BMAS Sozialbudget 2024, Sozialleistungen insgesamt 1960-2024",
	},
	CPI: {
		Quantity: CPI,
		Label:    "Consumer price index, national",
		Unit:     "index, 2020 = 100",
		Source:   "AMECO ZCPIN",
	},
	Population: {
		Quantity: Population,
		Label:    "Total population (national accounts)",
		Unit:     "million persons",
		Source:   "AMECO NPTD",
	},
	GDPPerCapita: {
		Quantity: GDPPerCapita,
		Label:    "GDP per head, price adjusted",
		Unit:     "thousand EUR (real)",
		Source:   "national accounts",
	},
}

// Info returns the descriptor for q.
func (q Quantity) Info() QuantityInfo {
	if info, ok := quantityInfo[q]; ok {
		return info
	}
	return QuantityInfo{Quantity: q, Label: string(q)}
}

// ParseQuantity matches a column or key name against the known quantities.
func ParseQuantity(s string) (Quantity, bool) {
	n := normalizeName(s)
	for _, q := range Quantities {
		if n == string(q) {
			return q, true
		}
	}
	return "", false
}

// Source loads the four series into a validated Registry.
type Source interface {
	// Name identifies the source in logs (e.g. "builtin", "csv:data.csv").
	Name() string

	// Load reads all four series. Duplicate years and mismatched year sets are
	// reported here, before any alignment happens.
	Load(ctx context.Context) (*Registry, error)
}
