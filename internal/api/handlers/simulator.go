package handlers

import (
	"strings"
	"time"

	"inflation-lens/internal/analysis"
	"inflation-lens/internal/api/models"
	"inflation-lens/internal/metrics"
	"inflation-lens/internal/model"
	"inflation-lens/internal/params"
	"inflation-lens/internal/sampler"
	"inflation-lens/internal/simulate"
)

// Selections used when a query parameter is omitted.
const (
	DefaultAsset     = model.AssetNifty50
	DefaultInflation = model.InflationCPICombined
	DefaultRange     = model.Range5Y
)

// Simulator holds the shared, read-only calibration. Every request builds its
// own generator and sampler from it, so handlers never share a random stream.
type Simulator struct {
	Table         *params.Table
	Options       simulate.Options
	Now           func() time.Time
	DefaultTrials int
	MaxTrials     int
}

// NewSimulator returns a Simulator with the built-in calibration.
func NewSimulator() *Simulator {
	return &Simulator{
		Table:         params.Default(),
		Options:       simulate.DefaultOptions(),
		Now:           time.Now,
		DefaultTrials: 500,
		MaxTrials:     5000,
	}
}

// seedOrNow returns seed, or a fresh clock-derived seed the caller can echo back.
func (s *Simulator) seedOrNow(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return s.now().UnixNano()
}

func (s *Simulator) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Simulator) generator(seed int64) *simulate.Generator {
	return simulate.New(s.Table, sampler.NewSeeded(seed),
		simulate.WithOptions(s.Options),
		simulate.WithClock(s.now),
	)
}

// resolve applies API defaults to empty parameters and table fallbacks to unknown ones.
func (s *Simulator) resolve(asset, inflation, rng string) models.Selection {
	a := DefaultAsset
	if strings.TrimSpace(asset) != "" {
		a = model.ParseAsset(asset)
		if !a.Known() {
			a = params.DefaultAsset
		}
	}

	i := DefaultInflation
	if strings.TrimSpace(inflation) != "" {
		i = model.ParseInflation(inflation)
		if !i.Known() {
			i = params.DefaultInflation
		}
	}

	r := DefaultRange
	if strings.TrimSpace(rng) != "" {
		r = model.ParseTimeRange(rng)
		if _, ok := s.Table.Months[r]; !ok {
			r = model.Range5Y
		}
	}

	return models.Selection{Asset: a, Inflation: i, Range: r, Months: s.Table.MonthsFor(r)}
}

// observed records every generation it forwards.
type observed struct {
	gen *simulate.Generator
}

func (o observed) Generate(asset model.AssetType, inflation model.InflationType, r model.TimeRange) (*model.ChartData, error) {
	started := time.Now()
	data, err := o.gen.Generate(asset, inflation, r)
	metrics.ObserveGeneration(string(asset), string(inflation), string(r), started, err)
	return data, err
}

var _ analysis.Generator = observed{}
