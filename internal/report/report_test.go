package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inflation-lens/internal/model"
	"inflation-lens/internal/params"
	"inflation-lens/internal/sampler"
	"inflation-lens/internal/simulate"
)

func chart(t *testing.T, asset model.AssetType, r model.TimeRange) *model.ChartData {
	t.Helper()
	now := func() time.Time { return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC) }
	gen := simulate.New(params.Default(), sampler.NewSeeded(7), simulate.WithClock(now))
	data, err := gen.Generate(asset, model.InflationCPICombined, r)
	require.NoError(t, err)
	return data
}

func TestWrite_ProducesPDF(t *testing.T) {
	for _, r := range []model.TimeRange{model.Range1Y, model.RangeMax} {
		var buf bytes.Buffer
		err := Write(&buf, Input{
			Asset:     model.AssetNifty50,
			Inflation: model.InflationCPICombined,
			Range:     r,
			Data:      chart(t, model.AssetNifty50, r),
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "range %s", r)
		assert.Greater(t, buf.Len(), 1000)
	}
}

func TestBytes_WritesFile(t *testing.T) {
	b, err := Bytes(Input{
		Asset:     model.AssetCash,
		Inflation: model.InflationCPICombined,
		Range:     model.Range5Y,
		Generated: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Data:      chart(t, model.AssetCash, model.Range5Y),
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cash.pdf")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(b)), info.Size())
}

func TestWrite_RejectsEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Input{}))
	assert.Error(t, Write(&buf, Input{Data: &model.ChartData{}}))
	assert.Zero(t, buf.Len())
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "Rs. 1,37,009", rupees(137009))
	assert.Equal(t, "-Rs. 1,500", rupees(-1500))
	assert.Equal(t, "Rs. 0", rupees(0))
}
