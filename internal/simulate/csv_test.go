package simulate

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inflation-lens/internal/model"
	"inflation-lens/internal/sampler"
)

func TestWriteSeriesCSV(t *testing.T) {
	g := newGen(t, sampler.Zero())
	data := mustGenerate(t, g, model.AssetFD, model.InflationCPICombined, model.Range1Y)

	var buf bytes.Buffer
	require.NoError(t, WriteSeriesCSV(&buf, data))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 14)

	assert.Equal(t, []string{"index", "date", "nominal_value", "real_value", "inflation_index", "asset_growth_pct", "real_growth_pct"}, rows[0])
	assert.Equal(t, []string{"0", "Oct 25", "100000", "100000", "100.00", "0.0000", "0.0000"}, rows[1])
	assert.Equal(t, "12", rows[13][0])
	assert.Equal(t, "106500", rows[13][2])
	assert.Equal(t, "106.00", rows[13][4])
}

func TestWriteSeriesCSV_NilData(t *testing.T) {
	assert.Error(t, WriteSeriesCSV(&bytes.Buffer{}, nil))
}

func TestWriteSeriesCSVFile_CreatesDirs(t *testing.T) {
	g := newGen(t, sampler.NewSeeded(9))
	data := mustGenerate(t, g, model.AssetGold, model.InflationCPIFood, model.Range3Y)

	path := filepath.Join(t.TempDir(), "out", "gold.csv")
	require.NoError(t, WriteSeriesCSVFile(path, data))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 38)
}
