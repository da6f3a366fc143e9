// Package report renders a stored chart as a one-page PDF: selections, the
// headline summary and the nominal/real lines.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"inflation-lens/internal/format"
	"inflation-lens/internal/model"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	plotHeight = 90.0
	axisWidth  = 18.0
)

// Input is what a report needs to know beyond the series itself.
type Input struct {
	Asset     model.AssetType
	Inflation model.InflationType
	Range     model.TimeRange
	Generated time.Time
	Data      *model.ChartData
}

type pdfReport struct {
	pdf *fpdf.Fpdf
	in  Input
}

// Write renders the report to w.
func Write(w io.Writer, in Input) error {
	if in.Data == nil || len(in.Data.Series) == 0 {
		return errors.New("report: empty chart")
	}
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), in: in}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle(fmt.Sprintf("%s vs %s", in.Asset.DisplayName(), in.Inflation.DisplayName()), true)

	r.pdf.AddPage()
	r.addHeader()
	r.addSummaryTable()
	r.addChart()
	r.addFooter()

	if err := r.pdf.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return r.pdf.Output(w)
}

// Bytes renders the report into memory.
func Bytes(in Input) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rupees formats an amount for the PDF core fonts, which lack the rupee glyph.
func rupees(v float64) string {
	g := format.Grouped(v)
	if len(g) > 0 && g[0] == '-' {
		return "-Rs. " + g[1:]
	}
	return "Rs. " + g
}

func (r *pdfReport) addHeader() {
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, "Inflation Lens", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 12)
	r.pdf.SetTextColor(80, 80, 80)
	title := fmt.Sprintf("%s vs %s, %s", r.in.Asset.DisplayName(), r.in.Inflation.DisplayName(), r.in.Range.DisplayName())
	r.pdf.CellFormat(contentWidth, 7, title, "", 1, "L", false, 0, "")

	first, last := r.in.Data.Series[0], r.in.Data.Last()
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.CellFormat(contentWidth, 5, fmt.Sprintf("%s to %s, %d months", first.DateLabel, last.DateLabel, r.in.Data.Months()), "", 1, "L", false, 0, "")
	r.pdf.Ln(6)
}

func (r *pdfReport) addSummaryTable() {
	s := format.Summary(r.in.Data)
	last := r.in.Data.Last()

	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)

	col := contentWidth / 3
	r.pdf.CellFormat(col, 8, "", "1", 0, "L", true, 0, "")
	r.pdf.CellFormat(col, 8, "Nominal", "1", 0, "C", true, 0, "")
	r.pdf.CellFormat(col, 8, "Real (inflation-adjusted)", "1", 1, "C", true, 0, "")

	rows := [][3]string{
		{"Final value", rupees(last.NominalValue), rupees(last.RealValue)},
		{"Total return", s.NominalReturn, s.RealReturn},
		{"CAGR", s.CAGRNominal, s.CAGRReal},
	}
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, row := range rows {
		r.pdf.CellFormat(col, 7, row[0], "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(col, 7, row[1], "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(col, 7, row[2], "1", 1, "R", false, 0, "")
	}

	r.pdf.Ln(3)
	r.pdf.SetFont("Arial", "B", 10)
	if s.BeatInflation {
		r.pdf.SetTextColor(22, 128, 61)
		r.pdf.CellFormat(contentWidth, 6, "Purchasing power grew over the period.", "", 1, "L", false, 0, "")
	} else {
		r.pdf.SetTextColor(185, 28, 28)
		r.pdf.CellFormat(contentWidth, 6, "Purchasing power shrank over the period.", "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(6)
}

// addChart plots nominal (solid) and real (dashed) against the padded domain.
func (r *pdfReport) addChart() {
	series := r.in.Data.Series
	lo, hi := format.AxisDomain(series)
	if hi <= lo {
		hi = lo + 1
	}

	x0 := marginLeft + axisWidth
	y0 := r.pdf.GetY()
	w := contentWidth - axisWidth
	h := plotHeight

	xAt := func(i int) float64 {
		if len(series) == 1 {
			return x0
		}
		return x0 + w*float64(i)/float64(len(series)-1)
	}
	yAt := func(v float64) float64 { return y0 + h - h*(v-lo)/(hi-lo) }

	// Grid and y-axis ticks.
	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.SetDrawColor(225, 225, 225)
	r.pdf.SetLineWidth(0.1)
	const ticks = 5
	for t := 0; t <= ticks; t++ {
		v := lo + (hi-lo)*float64(t)/ticks
		y := yAt(v)
		r.pdf.Line(x0, y, x0+w, y)
		r.pdf.Text(marginLeft, y+1, format.AxisTick(v))
	}

	// X labels at year boundaries, or every month for short ranges.
	step := 12
	if len(series) <= 13 {
		step = 2
	}
	for i := 0; i < len(series); i += step {
		r.pdf.Text(xAt(i)-4, y0+h+5, series[i].DateLabel)
	}

	r.pdf.SetLineWidth(0.6)
	r.pdf.SetDrawColor(59, 130, 246)
	r.polyline(series, xAt, yAt, func(p model.DataPoint) float64 { return p.NominalValue })

	r.pdf.SetDrawColor(16, 185, 129)
	r.pdf.SetDashPattern([]float64{2, 1.5}, 0)
	r.polyline(series, xAt, yAt, func(p model.DataPoint) float64 { return p.RealValue })
	r.pdf.SetDashPattern([]float64{}, 0)

	// Legend.
	ly := y0 + h + 10
	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetDrawColor(59, 130, 246)
	r.pdf.Line(x0, ly, x0+8, ly)
	r.pdf.Text(x0+10, ly+1, "Nominal value")
	r.pdf.SetDrawColor(16, 185, 129)
	r.pdf.SetDashPattern([]float64{2, 1.5}, 0)
	r.pdf.Line(x0+45, ly, x0+53, ly)
	r.pdf.SetDashPattern([]float64{}, 0)
	r.pdf.Text(x0+55, ly+1, "Real value")

	r.pdf.SetY(ly + 6)
}

func (r *pdfReport) polyline(series []model.DataPoint, xAt func(int) float64, yAt func(float64) float64, value func(model.DataPoint) float64) {
	for i := 1; i < len(series); i++ {
		r.pdf.Line(xAt(i-1), yAt(value(series[i-1])), xAt(i), yAt(value(series[i])))
	}
}

func (r *pdfReport) addFooter() {
	generated := r.in.Generated
	if generated.IsZero() {
		generated = time.Now()
	}
	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(contentWidth, 4,
		fmt.Sprintf("Generated %s. Paths are simulated from long-run calibrations and are not historical data or advice.",
			generated.Format("2 January 2006")), "", "L", false)
}
