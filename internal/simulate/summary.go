package simulate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"inflation-lens/internal/growth"
	"inflation-lens/internal/model"
)

// LabelLayout renders month labels such as "Jan 23".
const LabelLayout = "Jan 06"

// Summarize derives total return and CAGR from the first and last points.
// months is the elapsed time between them.
func Summarize(series []model.DataPoint, months int) (model.Summary, error) {
	if len(series) < 2 {
		return model.Summary{}, errors.New("series needs at least two points")
	}
	if months <= 0 {
		return model.Summary{}, fmt.Errorf("months must be > 0, got %d", months)
	}

	first := series[0]
	last := series[len(series)-1]
	if first.NominalValue <= 0 || first.RealValue <= 0 {
		return model.Summary{}, fmt.Errorf("start values must be > 0 (nominal=%v real=%v)", first.NominalValue, first.RealValue)
	}

	years := float64(months) / growth.MonthsPerYear
	s := model.Summary{
		TotalNominalReturnPct: (last.NominalValue - first.NominalValue) / first.NominalValue * 100,
		TotalRealReturnPct:    (last.RealValue - first.RealValue) / first.RealValue * 100,
		CAGRNominalPct:        cagr(first.NominalValue, last.NominalValue, years),
		CAGRRealPct:           cagr(first.RealValue, last.RealValue, years),
	}
	for name, v := range map[string]float64{
		"total_nominal_return": s.TotalNominalReturnPct,
		"total_real_return":    s.TotalRealReturnPct,
		"cagr_nominal":         s.CAGRNominalPct,
		"cagr_real":            s.CAGRRealPct,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return model.Summary{}, fmt.Errorf("%s is not finite", name)
		}
	}
	return s, nil
}

func cagr(start, end, years float64) float64 {
	return (math.Pow(end/start, 1/years) - 1) * 100
}

// StartMonth is the first day of the month that lies `months` before now.
func StartMonth(now time.Time, months int) time.Time {
	return time.Date(now.Year(), now.Month()-time.Month(months), 1, 0, 0, 0, 0, now.Location())
}

// Label formats the date of step i counted from start.
func Label(start time.Time, i int) string {
	return start.AddDate(0, i, 0).Format(LabelLayout)
}
