package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"inflation-lens/internal/model"
)

// Generator is the slice of simulate.Generator the analyses need.
type Generator interface {
	Generate(asset model.AssetType, inflation model.InflationType, r model.TimeRange) (*model.ChartData, error)
}

// Stats summarises one metric across Monte-Carlo trials.
type Stats struct {
	Min    float64 `json:"min"`
	P05    float64 `json:"p05"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	P95    float64 `json:"p95"`
	Max    float64 `json:"max"`
}

// Distribution is the spread of outcomes for one selection.
// It answers "how often does this asset actually beat this index?"
type Distribution struct {
	Asset     model.AssetType     `json:"asset"`
	Inflation model.InflationType `json:"inflation"`
	Range     model.TimeRange     `json:"range"`
	Trials    int                 `json:"trials"`

	CAGRNominal Stats `json:"cagr_nominal_pct"`
	CAGRReal    Stats `json:"cagr_real_pct"`
	FinalReal   Stats `json:"final_real_value"`

	// BeatInflationShare is the fraction of trials with a positive real return.
	BeatInflationShare float64 `json:"beat_inflation_share"`
}

// ComputeDistribution runs trials independent generations and aggregates them.
// The generator's sampler advances between trials, so each trial differs.
func ComputeDistribution(gen Generator, asset model.AssetType, inflation model.InflationType, r model.TimeRange, trials int) (*Distribution, error) {
	if gen == nil {
		return nil, errors.New("generator is nil")
	}
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be > 0, got %d", trials)
	}

	nominal := make([]float64, 0, trials)
	realCAGR := make([]float64, 0, trials)
	final := make([]float64, 0, trials)
	beat := 0

	for i := 0; i < trials; i++ {
		data, err := gen.Generate(asset, inflation, r)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		nominal = append(nominal, data.Summary.CAGRNominalPct)
		realCAGR = append(realCAGR, data.Summary.CAGRRealPct)
		final = append(final, data.Last().RealValue)
		if data.Summary.TotalRealReturnPct > 0 {
			beat++
		}
	}

	return &Distribution{
		Asset:              asset,
		Inflation:          inflation,
		Range:              r,
		Trials:             trials,
		CAGRNominal:        computeStats(nominal),
		CAGRReal:           computeStats(realCAGR),
		FinalReal:          computeStats(final),
		BeatInflationShare: float64(beat) / float64(trials),
	}, nil
}

func computeStats(vals []float64) Stats {
	if len(vals) == 0 {
		return Stats{}
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return Stats{
		Min:    sorted[0],
		P05:    percentileSorted(sorted, 0.05),
		Median: percentileSorted(sorted, 0.5),
		Mean:   sum / float64(len(sorted)),
		P95:    percentileSorted(sorted, 0.95),
		Max:    sorted[len(sorted)-1],
	}
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
