// Package locale holds the user-facing strings for chart, table, and console output
// in German and English, and formats numbers the way each language writes them.
package locale

import (
	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Message keys. Years are passed as strings: the printer would otherwise group
// them as numbers (2.015).
const (
	ChartTitle   = "chart.title"
	ChartXLabel  = "chart.x_label"
	ChartYLabel  = "chart.y_label"
	ChartWelfare = "chart.welfare"
	ChartOutput  = "chart.output"
	Saved        = "console.saved"
	SummaryLine  = "console.summary"

	ColYear          = "col.year"
	ColSpending      = "col.spending"
	ColCPI           = "col.cpi"
	ColPopulation    = "col.population"
	ColGDPPerCapita  = "col.gdp_per_capita"
	ColWelfarePC     = "col.welfare_pc"
	ColPriceRebased  = "col.price_rebased"
	ColWelfarePCReal = "col.welfare_pc_real"
	ColWelfareIndex  = "col.welfare_index"
	ColOutputIndex   = "col.output_index"
)

var messages = map[language.Tag]map[string]string{
	language.German: {
		ChartTitle:   "Reale Entwicklung: Sozialleistungen vs. BIP pro Kopf (Index %s=100)",
		ChartXLabel:  "Jahr",
		ChartYLabel:  "Index (%s=100)",
		ChartWelfare: "Reale Sozialleistungen p.K.",
		ChartOutput:  "Reales BIP p.K.",
		Saved:        "Die kombinierte Grafik wurde erfolgreich als '%s' gespeichert.",
		SummaryLine:  "%s-%s: Sozialleistungen p.K. real %+.1f %%, BIP p.K. real %+.1f %%, Abstand %s: %+.1f Indexpunkte",

		ColYear:          "Jahr",
		ColSpending:      "Sozialleistungen (Mrd. EUR)",
		ColCPI:           "VPI",
		ColPopulation:    "Bevölkerung (Mio.)",
		ColGDPPerCapita:  "BIP p.K. real (Tsd. EUR)",
		ColWelfarePC:     "Sozialleistungen p.K. (EUR)",
		ColPriceRebased:  "VPI (Basisjahr=100)",
		ColWelfarePCReal: "Sozialleistungen p.K. real (EUR)",
		ColWelfareIndex:  "Index Sozialleistungen",
		ColOutputIndex:   "Index BIP",
	},
	language.English: {
		ChartTitle:   "Real trend: social benefits vs. GDP per capita (index %s=100)",
		ChartXLabel:  "Year",
		ChartYLabel:  "Index (%s=100)",
		ChartWelfare: "Real social benefits per capita",
		ChartOutput:  "Real GDP per capita",
		Saved:        "The combined chart was saved as '%s'.",
		SummaryLine:  "%s-%s: real social benefits per capita %+.1f %%, real GDP per capita %+.1f %%, gap %s: %+.1f index points",

		ColYear:          "Year",
		ColSpending:      "Social benefits (bn EUR)",
		ColCPI:           "CPI",
		ColPopulation:    "Population (mn)",
		ColGDPPerCapita:  "Real GDP per capita (k EUR)",
		ColWelfarePC:     "Social benefits per capita (EUR)",
		ColPriceRebased:  "CPI (base year=100)",
		ColWelfarePCReal: "Real social benefits per capita (EUR)",
		ColWelfareIndex:  "Social benefits index",
		ColOutputIndex:   "GDP index",
	},
}

var cat = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.German))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(eris.Wrapf(err, "locale: register %s %s", tag, key))
			}
		}
	}
	return b
}

// Supported lists the accepted language codes.
var Supported = []string{"de", "en"}

// Parse maps a language code to a supported tag.
func Parse(code string) (language.Tag, error) {
	switch code {
	case "", "de":
		return language.German, nil
	case "en":
		return language.English, nil
	default:
		return language.Und, eris.Errorf("locale: unsupported language %q (valid: de, en)", code)
	}
}

// Printer formats messages and numbers for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for tag.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Tag returns the printer's language.
func (p *Printer) Tag() language.Tag { return p.tag }

// T returns the translated message for key, formatted with args.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Number formats v with a fixed number of decimals and locale grouping
// (German: 10.924,6; English: 10,924.6).
func (p *Printer) Number(v float64, decimals int) string {
	return p.p.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}
