package params

import (
	"errors"
	"fmt"

	"inflation-lens/internal/model"
)

// AssetParams is the drift and dispersion of an asset class.
// Units: fractional annual rates (0.12 = 12%/yr).
type AssetParams struct {
	AnnualMean       float64 `json:"annual_mean" yaml:"mean"`
	AnnualVolatility float64 `json:"annual_volatility" yaml:"volatility"`
}

// InflationParams is the drift and dispersion of an inflation index.
type InflationParams struct {
	AnnualBaseRate   float64 `json:"annual_base_rate" yaml:"base_rate"`
	AnnualVolatility float64 `json:"annual_volatility" yaml:"volatility"`
}

// Fallback rows used when a selection has no entry.
const (
	DefaultAsset     = model.AssetFD
	DefaultInflation = model.InflationCPICombined
	DefaultMonths    = 60
)

// Table bundles the three lookups the generator consults.
type Table struct {
	Assets    map[model.AssetType]AssetParams
	Inflation map[model.InflationType]InflationParams
	Months    map[model.TimeRange]int
}

// Default returns the calibration approximating 2013-2023 Indian asset behaviour.
func Default() *Table {
	return &Table{
		Assets: map[model.AssetType]AssetParams{
			model.AssetNifty50:      {AnnualMean: 0.12, AnnualVolatility: 0.15},
			model.AssetSensex:       {AnnualMean: 0.125, AnnualVolatility: 0.15},
			model.AssetGold:         {AnnualMean: 0.09, AnnualVolatility: 0.12},
			model.AssetFD:           {AnnualMean: 0.065, AnnualVolatility: 0.002},
			model.AssetPPF:          {AnnualMean: 0.071, AnnualVolatility: 0.0},
			model.AssetMedianSalary: {AnnualMean: 0.08, AnnualVolatility: 0.01},
			model.AssetCash:         {AnnualMean: 0.0, AnnualVolatility: 0.0},
		},
		Inflation: map[model.InflationType]InflationParams{
			model.InflationCPICombined:    {AnnualBaseRate: 0.06, AnnualVolatility: 0.005},
			model.InflationCPIFood:        {AnnualBaseRate: 0.07, AnnualVolatility: 0.015},
			model.InflationCPIFuel:        {AnnualBaseRate: 0.05, AnnualVolatility: 0.02},
			model.InflationWPI:            {AnnualBaseRate: 0.04, AnnualVolatility: 0.01},
			model.InflationLifestyleMetro: {AnnualBaseRate: 0.10, AnnualVolatility: 0.008},
		},
		Months: map[model.TimeRange]int{
			model.Range1Y:  12,
			model.Range3Y:  36,
			model.Range5Y:  60,
			model.Range10Y: 120,
			model.RangeMax: 240,
		},
	}
}

// Clone returns a deep copy so overrides never touch the shared defaults.
func (t *Table) Clone() *Table {
	out := &Table{
		Assets:    make(map[model.AssetType]AssetParams, len(t.Assets)),
		Inflation: make(map[model.InflationType]InflationParams, len(t.Inflation)),
		Months:    make(map[model.TimeRange]int, len(t.Months)),
	}
	for k, v := range t.Assets {
		out.Assets[k] = v
	}
	for k, v := range t.Inflation {
		out.Inflation[k] = v
	}
	for k, v := range t.Months {
		out.Months[k] = v
	}
	return out
}

// Asset looks up an asset row, falling back to the fixed-deposit row.
func (t *Table) Asset(a model.AssetType) AssetParams {
	if p, ok := t.Assets[a]; ok {
		return p
	}
	return t.Assets[DefaultAsset]
}

// InflationFor looks up an inflation row, falling back to headline CPI.
func (t *Table) InflationFor(i model.InflationType) InflationParams {
	if p, ok := t.Inflation[i]; ok {
		return p
	}
	return t.Inflation[DefaultInflation]
}

// MonthsFor resolves a range to a month count, falling back to DefaultMonths.
func (t *Table) MonthsFor(r model.TimeRange) int {
	if m, ok := t.Months[r]; ok {
		return m
	}
	return DefaultMonths
}

// Validate checks coverage and value sanity. A range mapped to zero months
// would make CAGR undefined, so it is rejected here rather than at generation time.
func (t *Table) Validate() error {
	if t == nil {
		return errors.New("params table is nil")
	}
	if _, ok := t.Assets[DefaultAsset]; !ok {
		return fmt.Errorf("asset table missing default row %q", DefaultAsset)
	}
	if _, ok := t.Inflation[DefaultInflation]; !ok {
		return fmt.Errorf("inflation table missing default row %q", DefaultInflation)
	}
	for a, p := range t.Assets {
		if p.AnnualMean <= -1 {
			return fmt.Errorf("asset %q: mean must be > -1", a)
		}
		if p.AnnualVolatility < 0 {
			return fmt.Errorf("asset %q: volatility must be >= 0", a)
		}
	}
	for i, p := range t.Inflation {
		if p.AnnualBaseRate <= -1 {
			return fmt.Errorf("inflation %q: base rate must be > -1", i)
		}
		if p.AnnualVolatility < 0 {
			return fmt.Errorf("inflation %q: volatility must be >= 0", i)
		}
	}
	for r, m := range t.Months {
		if m <= 0 {
			return fmt.Errorf("range %q: months must be > 0", r)
		}
	}
	return nil
}
