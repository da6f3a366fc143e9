package growth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"inflation-lens/internal/model"
	"inflation-lens/internal/params"
	"inflation-lens/internal/sampler"
)

func TestFor_SelectsRuleByAsset(t *testing.T) {
	cases := map[model.AssetType]string{
		model.AssetNifty50:      PolicyMarketGBM,
		model.AssetSensex:       PolicyMarketGBM,
		model.AssetGold:         PolicyMarketGBM,
		model.AssetFD:           PolicyFixedIncome,
		model.AssetPPF:          PolicyFixedIncome,
		model.AssetCash:         PolicyFixedIncome,
		model.AssetMedianSalary: PolicySalaryStep,
		model.AssetType("bond"): PolicyFixedIncome,
	}
	for asset, want := range cases {
		assert.Equal(t, want, For(asset).Name, "asset %s", asset)
	}
}

func TestMonthlyRate_CompoundsToAnnual(t *testing.T) {
	for _, annual := range []float64{0, 0.06, 0.12, -0.05} {
		m := MonthlyRate(annual)
		assert.InDelta(t, 1+annual, math.Pow(1+m, 12), 1e-12)
	}
}

func TestSalaryStep_OnlyOnAnniversaries(t *testing.T) {
	ctx := Context{
		Nominal:          100000,
		Params:           params.AssetParams{AnnualMean: 0.08},
		Sampler:          sampler.Zero(),
		SalaryHikeJitter: 0.02,
	}
	for step := 1; step <= 36; step++ {
		ctx.Step = step
		got := SalaryStep(ctx)
		if step%12 == 0 {
			assert.InDelta(t, 108000, got, 1e-9, "step %d", step)
		} else {
			assert.Equal(t, 100000.0, got, "step %d", step)
		}
	}
}

func TestSalaryStep_JitterBand(t *testing.T) {
	ctx := Context{
		Step:             12,
		Nominal:          1000,
		Params:           params.AssetParams{AnnualMean: 0.08},
		SalaryHikeJitter: 0.02,
	}

	ctx.Sampler = sampler.Fixed{Unif: 0}
	assert.InDelta(t, 1060, SalaryStep(ctx), 1e-9)

	ctx.Sampler = sampler.Fixed{Unif: 1}
	assert.InDelta(t, 1100, SalaryStep(ctx), 1e-9)
}

func TestFixedIncome_IgnoresShock(t *testing.T) {
	ctx := Context{
		Step:    5,
		Nominal: 100000,
		Params:  params.AssetParams{AnnualMean: 0.065, AnnualVolatility: 0.5},
		Sampler: sampler.Fixed{Normal: 3},
	}
	assert.InDelta(t, 100000*(1+MonthlyRate(0.065)), FixedIncome(ctx), 1e-9)
}

func TestMarketGBM_AppliesShock(t *testing.T) {
	ctx := Context{
		Step:    1,
		Nominal: 100000,
		Params:  params.AssetParams{AnnualMean: 0.12, AnnualVolatility: 0.15},
	}

	ctx.Sampler = sampler.Zero()
	base := MarketGBM(ctx)
	assert.InDelta(t, 100000*(1+MonthlyRate(0.12)), base, 1e-9)

	ctx.Sampler = sampler.Fixed{Normal: 1}
	assert.InDelta(t, base+100000*0.15, MarketGBM(ctx), 1e-9)
}
