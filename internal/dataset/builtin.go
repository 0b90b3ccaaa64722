package dataset

import (
	"context"

	"github.com/sells-group/welfare-index/internal/series"
)

// Builtin serves the transcribed 1991-2024 figures for Germany.
type Builtin struct{}

func (Builtin) Name() string { return "builtin" }

// Load builds the registry from the embedded tables.
func (Builtin) Load(ctx context.Context) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewRegistry(
		series.FromMap(string(Spending), builtinSpending),
		series.FromMap(string(CPI), builtinCPI),
		series.FromMap(string(Population), builtinPopulation),
		series.FromMap(string(GDPPerCapita), builtinGDPPerCapita),
	)
}

// Sozialleistungen insgesamt, bn EUR.
var builtinSpending = map[int]float64{
	1991: 394.9, 1992: 448.3, 1993: 472.9, 1994: 495.5, 1995: 522.7, 1996: 552.5,
	1997: 556.1, 1998: 569.5, 1999: 590.7, 2000: 607.4, 2001: 624.9, 2002: 648.1,
	2003: 660.9, 2004: 659.3, 2005: 664.4, 2006: 663.5, 2007: 673.2, 2008: 695.3,
	2009: 752.5, 2010: 770.2, 2011: 774.9, 2012: 794.2, 2013: 822.9, 2014: 854.8,
	2015: 892.4, 2016: 932.9, 2017: 968.0, 2018: 1001.0, 2019: 1047.4, 2020: 1121.8,
	2021: 1161.5, 2022: 1192.6, 2023: 1262.2, 2024: 1345.4,
}

// CPI, 2020 = 100.
var builtinCPI = map[int]float64{
	1991: 62.1, 1992: 65.3, 1993: 68.2, 1994: 70.0, 1995: 71.2, 1996: 72.2, 1997: 73.6,
	1998: 74.3, 1999: 74.8, 2000: 75.8, 2001: 77.3, 2002: 78.4, 2003: 79.2, 2004: 80.6,
	2005: 81.8, 2006: 83.1, 2007: 85.0, 2008: 87.2, 2009: 87.5, 2010: 88.5, 2011: 90.3,
	2012: 92.1, 2013: 93.5, 2014: 94.4, 2015: 94.9, 2016: 95.3, 2017: 96.8, 2018: 98.4,
	2019: 99.9, 2020: 100.0, 2021: 103.1, 2022: 110.2, 2023: 116.7, 2024: 119.3,
}

// Population, millions.
var builtinPopulation = map[int]float64{
	1991: 79.973, 1992: 80.500, 1993: 80.946, 1994: 81.147, 1995: 81.308,
	1996: 81.466, 1997: 81.510, 1998: 81.446, 1999: 81.422, 2000: 81.457,
	2001: 81.517, 2002: 81.517, 2003: 81.549, 2004: 81.456, 2005: 81.337,
	2006: 81.173, 2007: 80.992, 2008: 80.864, 2009: 80.483, 2010: 80.284,
	2011: 80.275, 2012: 80.426, 2013: 80.426, 2014: 80.983, 2015: 81.687,
	2016: 82.657, 2017: 82.657, 2018: 82.906, 2019: 83.093, 2020: 83.161,
	2021: 83.196, 2022: 83.798, 2023: 84.514, 2024: 84.717,
}

// Real GDP per head, thousand EUR.
var builtinGDPPerCapita = map[int]float64{
	1991: 30.4, 1992: 30.8, 1993: 30.4, 1994: 31.1, 1995: 31.5,
	1996: 31.7, 1997: 32.3, 1998: 33.0, 1999: 33.7, 2000: 34.7,
	2001: 35.2, 2002: 35.1, 2003: 34.9, 2004: 35.4, 2005: 35.7,
	2006: 37.2, 2007: 38.4, 2008: 38.8, 2009: 36.8, 2010: 38.4,
	2011: 39.9, 2012: 40.0, 2013: 40.0, 2014: 40.7, 2015: 41.0,
	2016: 41.6, 2017: 42.6, 2018: 43.0, 2019: 43.3, 2020: 41.5,
	2021: 43.0, 2022: 43.3, 2023: 42.8, 2024: 42.6,
}
