package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inflation-lens/internal/model"
)

func TestDefault_CoversEverySelection(t *testing.T) {
	tbl := Default()
	require.NoError(t, tbl.Validate())

	for _, a := range model.AllAssets {
		_, ok := tbl.Assets[a]
		assert.True(t, ok, "missing asset row %q", a)
	}
	for _, i := range model.AllInflationTypes {
		_, ok := tbl.Inflation[i]
		assert.True(t, ok, "missing inflation row %q", i)
	}
	for _, r := range model.AllTimeRanges {
		m, ok := tbl.Months[r]
		assert.True(t, ok, "missing range %q", r)
		assert.Positive(t, m)
	}
}

func TestDefault_Months(t *testing.T) {
	tbl := Default()
	want := map[model.TimeRange]int{
		model.Range1Y:  12,
		model.Range3Y:  36,
		model.Range5Y:  60,
		model.Range10Y: 120,
		model.RangeMax: 240,
	}
	for r, m := range want {
		assert.Equal(t, m, tbl.MonthsFor(r), "range %s", r)
	}
}

func TestFallbackRows(t *testing.T) {
	tbl := Default()

	assert.Equal(t, tbl.Assets[model.AssetFD], tbl.Asset(model.AssetType("crypto")))
	assert.Equal(t, tbl.Inflation[model.InflationCPICombined], tbl.InflationFor(model.InflationType("ppi")))
	assert.Equal(t, DefaultMonths, tbl.MonthsFor(model.TimeRange("7Y")))
}

func TestValidate_RejectsBadRows(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Table)
	}{
		{"zero months", func(t *Table) { t.Months[model.Range1Y] = 0 }},
		{"negative volatility", func(t *Table) {
			t.Assets[model.AssetGold] = AssetParams{AnnualMean: 0.09, AnnualVolatility: -0.1}
		}},
		{"total loss mean", func(t *Table) {
			t.Assets[model.AssetCash] = AssetParams{AnnualMean: -1}
		}},
		{"negative inflation volatility", func(t *Table) {
			t.Inflation[model.InflationWPI] = InflationParams{AnnualBaseRate: 0.04, AnnualVolatility: -1}
		}},
		{"missing default asset", func(t *Table) { delete(t.Assets, DefaultAsset) }},
		{"missing default inflation", func(t *Table) { delete(t.Inflation, DefaultInflation) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := Default()
			tc.mutate(tbl)
			assert.Error(t, tbl.Validate())
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	base := Default()
	c := base.Clone()
	c.Assets[model.AssetGold] = AssetParams{AnnualMean: 0.5}
	c.Months[model.Range1Y] = 99

	assert.Equal(t, 0.09, base.Assets[model.AssetGold].AnnualMean)
	assert.Equal(t, 12, base.Months[model.Range1Y])
}
