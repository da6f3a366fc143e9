package simulate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"inflation-lens/internal/growth"
	"inflation-lens/internal/model"
	"inflation-lens/internal/params"
	"inflation-lens/internal/sampler"

	"github.com/shopspring/decimal"
)

// Options are the calibration constants that are not per-asset.
type Options struct {
	// InitialNominal is the starting balance in rupees.
	InitialNominal float64
	// BaseIndex is the inflation index value at month 0.
	BaseIndex float64
	// InflationFloor caps monthly deflation (-0.01 = at most -1% per month).
	InflationFloor float64
	// SalaryHikeJitter is the half-width of the uniform band around each annual hike.
	SalaryHikeJitter float64
}

func DefaultOptions() Options {
	return Options{
		InitialNominal:   100000,
		BaseIndex:        100,
		InflationFloor:   -0.01,
		SalaryHikeJitter: 0.02,
	}
}

func (o Options) Validate() error {
	if o.InitialNominal <= 0 {
		return errors.New("InitialNominal must be > 0")
	}
	if o.BaseIndex <= 0 {
		return errors.New("BaseIndex must be > 0")
	}
	if o.InflationFloor <= -1 || o.InflationFloor > 0 {
		return errors.New("InflationFloor must be in (-1, 0]")
	}
	if o.SalaryHikeJitter < 0 {
		return errors.New("SalaryHikeJitter must be >= 0")
	}
	return nil
}

// Generator simulates a nominal asset path and an inflation index side by side.
// A Generator owns its sampler and is therefore not safe for concurrent use.
type Generator struct {
	table   *params.Table
	sampler sampler.Sampler
	opts    Options
	now     func() time.Time
}

type Option func(*Generator)

// WithOptions replaces the default calibration constants.
func WithOptions(o Options) Option {
	return func(g *Generator) { g.opts = o }
}

// WithClock fixes "today", which anchors the date labels.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(table *params.Table, s sampler.Sampler, opts ...Option) *Generator {
	g := &Generator{
		table:   table,
		sampler: s,
		opts:    DefaultOptions(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Table exposes the parameter table the generator reads.
func (g *Generator) Table() *params.Table { return g.table }

// Generate runs one simulation. Month 0 carries the initial values; each of
// months 1..M applies an inflation step and then the asset's growth rule.
func (g *Generator) Generate(asset model.AssetType, inflation model.InflationType, r model.TimeRange) (*model.ChartData, error) {
	if g.sampler == nil {
		return nil, errors.New("sampler is nil")
	}
	if err := g.table.Validate(); err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	if err := g.opts.Validate(); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}

	months := g.table.MonthsFor(r)
	assetParams := g.table.Asset(asset)
	inflParams := g.table.InflationFor(inflation)
	policy := growth.For(asset)
	start := StartMonth(g.now(), months)

	monthlyInflation := growth.MonthlyRate(inflParams.AnnualBaseRate)
	nominal := g.opts.InitialNominal
	index := g.opts.BaseIndex

	series := make([]model.DataPoint, 0, months+1)
	series = append(series, g.point(0, start, nominal, index))

	for i := 1; i <= months; i++ {
		shock := g.sampler.StandardNormal() * inflParams.AnnualVolatility
		period := math.Max(g.opts.InflationFloor, monthlyInflation+shock)
		index *= 1 + period

		nominal = policy.Step(growth.Context{
			Step:             i,
			Nominal:          nominal,
			Params:           assetParams,
			Sampler:          g.sampler,
			SalaryHikeJitter: g.opts.SalaryHikeJitter,
		})

		series = append(series, g.point(i, start, nominal, index))
	}

	fillGrowth(series)

	summary, err := Summarize(series, months)
	if err != nil {
		return nil, fmt.Errorf("%s/%s/%s summary: %w", asset, inflation, r, err)
	}
	return &model.ChartData{Series: series, Summary: summary}, nil
}

func (g *Generator) point(i int, start time.Time, nominal, index float64) model.DataPoint {
	realValue := nominal / (index / g.opts.BaseIndex)
	return model.DataPoint{
		Index:          i,
		DateLabel:      Label(start, i),
		NominalValue:   math.Round(nominal),
		RealValue:      math.Round(realValue),
		InflationIndex: decimal.NewFromFloat(index).Round(2).InexactFloat64(),
	}
}

// fillGrowth sets per-point growth relative to point 0 from the rounded values.
func fillGrowth(series []model.DataPoint) {
	if len(series) == 0 {
		return
	}
	n0 := series[0].NominalValue
	r0 := series[0].RealValue
	for i := range series {
		if n0 != 0 {
			series[i].AssetGrowthPct = (series[i].NominalValue - n0) / n0 * 100
		}
		if r0 != 0 {
			series[i].RealGrowthPct = (series[i].RealValue - r0) / r0 * 100
		}
	}
}
