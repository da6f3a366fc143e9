// Package growth holds the per-asset monthly update rules.
//
// Each rule is a plain function chosen by asset tag. The only state is the
// nominal value carried by the caller.
package growth

import (
	"math"

	"inflation-lens/internal/model"
	"inflation-lens/internal/params"
	"inflation-lens/internal/sampler"
)

// MonthsPerYear converts annual rates to monthly geometric rates.
const MonthsPerYear = 12

// Context is everything a rule may read for one month.
type Context struct {
	// Step is the month index, 1..M. Step 0 is never passed; it is the initial point.
	Step    int
	Nominal float64
	Params  params.AssetParams
	Sampler sampler.Sampler

	// SalaryHikeJitter is the half-width of the uniform band added to annual hikes.
	SalaryHikeJitter float64
}

// StepFunc returns the nominal value after one month.
type StepFunc func(ctx Context) float64

// Policy names a rule, for logs and the selections listing.
type Policy struct {
	Name string
	Step StepFunc
}

const (
	PolicySalaryStep  = "salary-step"
	PolicyFixedIncome = "fixed-income"
	PolicyMarketGBM   = "market-gbm"
)

// For selects the rule for an asset class.
func For(asset model.AssetType) Policy {
	switch {
	case asset == model.AssetMedianSalary:
		return Policy{Name: PolicySalaryStep, Step: SalaryStep}
	case asset.IsFixedIncome():
		return Policy{Name: PolicyFixedIncome, Step: FixedIncome}
	case !asset.Known():
		// Unknown assets read the fixed-deposit row, so they compound like one.
		return Policy{Name: PolicyFixedIncome, Step: FixedIncome}
	default:
		return Policy{Name: PolicyMarketGBM, Step: MarketGBM}
	}
}

// MonthlyRate converts an annual fractional rate to its monthly geometric equivalent.
func MonthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/MonthsPerYear) - 1
}

// SalaryStep holds the value flat and applies one hike every twelfth month:
// 1 + mean + U(-jitter, +jitter). No Gaussian shock in any month.
func SalaryStep(ctx Context) float64 {
	if ctx.Step <= 0 || ctx.Step%MonthsPerYear != 0 {
		return ctx.Nominal
	}
	j := ctx.SalaryHikeJitter
	jitter := -j + ctx.Sampler.Uniform()*2*j
	return ctx.Nominal * (1 + ctx.Params.AnnualMean + jitter)
}

// FixedIncome compounds smoothly at the monthly equivalent of the mean.
// The volatility column is ignored; these classes are treated as near risk-free.
func FixedIncome(ctx Context) float64 {
	return ctx.Nominal * (1 + MonthlyRate(ctx.Params.AnnualMean))
}

// MarketGBM applies drift plus a Gaussian shock scaled by annual volatility.
func MarketGBM(ctx Context) float64 {
	shock := ctx.Sampler.StandardNormal() * ctx.Params.AnnualVolatility
	return ctx.Nominal * (1 + MonthlyRate(ctx.Params.AnnualMean) + shock)
}
