package simulate

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"inflation-lens/internal/model"
)

// WriteSeriesCSV writes one row per simulated month.
func WriteSeriesCSV(w io.Writer, data *model.ChartData) error {
	if data == nil {
		return errors.New("chart data is nil")
	}

	cw := csv.NewWriter(w)

	header := []string{
		"index",
		"date",
		"nominal_value",
		"real_value",
		"inflation_index",
		"asset_growth_pct",
		"real_growth_pct",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range data.Series {
		row := []string{
			strconv.Itoa(p.Index),
			p.DateLabel,
			fmtFloat(p.NominalValue, 0),
			fmtFloat(p.RealValue, 0),
			fmtFloat(p.InflationIndex, 2),
			fmtFloat(p.AssetGrowthPct, 4),
			fmtFloat(p.RealGrowthPct, 4),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSeriesCSVFile writes the series to path, creating parent directories.
func WriteSeriesCSVFile(path string, data *model.ChartData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteSeriesCSV(f, data)
}

func fmtFloat(x float64, prec int) string {
	return strconv.FormatFloat(x, 'f', prec, 64)
}
