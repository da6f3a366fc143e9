package model

// DataPoint is one simulated month.
//
// Units:
// - NominalValue, RealValue: rupees, rounded to whole units
// - InflationIndex: base 100 at the first point, rounded to 2 dp
// - AssetGrowthPct, RealGrowthPct: percent change since the first point
type DataPoint struct {
	Index          int     `json:"index"`
	DateLabel      string  `json:"date"`
	NominalValue   float64 `json:"nominal_value"`
	RealValue      float64 `json:"real_value"`
	InflationIndex float64 `json:"inflation_index"`
	AssetGrowthPct float64 `json:"asset_growth_pct"`
	RealGrowthPct  float64 `json:"real_growth_pct"`
}

// Summary holds headline statistics derived from the first and last points.
type Summary struct {
	TotalNominalReturnPct float64 `json:"total_nominal_return_pct"`
	TotalRealReturnPct    float64 `json:"total_real_return_pct"`
	CAGRNominalPct        float64 `json:"cagr_nominal_pct"`
	CAGRRealPct           float64 `json:"cagr_real_pct"`
}

// ChartData is the generator's output: months+1 points in chronological order.
type ChartData struct {
	Series  []DataPoint `json:"series"`
	Summary Summary     `json:"summary"`
}

// Months returns the number of simulated steps (len(Series)-1).
func (c *ChartData) Months() int {
	if c == nil || len(c.Series) == 0 {
		return 0
	}
	return len(c.Series) - 1
}

// Last returns the final point, or the zero value for an empty series.
func (c *ChartData) Last() DataPoint {
	if c == nil || len(c.Series) == 0 {
		return DataPoint{}
	}
	return c.Series[len(c.Series)-1]
}
