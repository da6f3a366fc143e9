package analysis

import (
	"errors"
	"fmt"
	"sort"

	"inflation-lens/internal/model"
)

// Outcome is one asset's result against a shared inflation index and range.
type Outcome struct {
	Asset         model.AssetType `json:"asset"`
	Name          string          `json:"name"`
	FinalNominal  float64         `json:"final_nominal"`
	FinalReal     float64         `json:"final_real"`
	Summary       model.Summary   `json:"summary"`
	BeatInflation bool            `json:"beat_inflation"`
}

// Compare generates every asset once and ranks them by real CAGR.
func Compare(gen Generator, assets []model.AssetType, inflation model.InflationType, r model.TimeRange) ([]Outcome, error) {
	if gen == nil {
		return nil, errors.New("generator is nil")
	}
	out := make([]Outcome, 0, len(assets))
	for _, a := range assets {
		data, err := gen.Generate(a, inflation, r)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", a, err)
		}
		last := data.Last()
		out = append(out, Outcome{
			Asset:         a,
			Name:          a.DisplayName(),
			FinalNominal:  last.NominalValue,
			FinalReal:     last.RealValue,
			Summary:       data.Summary,
			BeatInflation: data.Summary.TotalRealReturnPct > 0,
		})
	}
	RankByRealCAGR(out)
	return out, nil
}

// RankByRealCAGR sorts outcomes descending by real CAGR, keeping input order on ties.
func RankByRealCAGR(out []Outcome) {
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Summary.CAGRRealPct > out[j].Summary.CAGRRealPct
	})
}
