// Package format renders simulator output the way Indian readers expect:
// lakh/crore grouping for rupee amounts and signed one-decimal percentages.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"inflation-lens/internal/model"

	"github.com/shopspring/decimal"
)

const (
	Crore = 1e7
	Lakh  = 1e5
	// RupeeSymbol prefixes amounts in INR. PDF core fonts cannot draw it; see report.
	RupeeSymbol = "₹"
)

// AxisTick abbreviates an axis value: 1.4Cr, 1.4L, 137k or the plain integer.
func AxisTick(v float64) string {
	switch {
	case v >= Crore:
		return fmt.Sprintf("%.1fCr", v/Crore)
	case v >= Lakh:
		return fmt.Sprintf("%.1fL", v/Lakh)
	case v >= 1000:
		return fmt.Sprintf("%.0fk", v/1000)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// Grouped rounds v to whole units and groups digits Indian style:
// the last three digits, then pairs (12,34,56,789).
func Grouped(v float64) string {
	s := decimal.NewFromFloat(v).Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = strings.Join(parts, ",") + "," + tail
	}
	if neg && s != "0" {
		return "-" + s
	}
	return s
}

// INR is Grouped with the rupee symbol.
func INR(v float64) string {
	g := Grouped(v)
	if strings.HasPrefix(g, "-") {
		return "-" + RupeeSymbol + g[1:]
	}
	return RupeeSymbol + g
}

// SignedPercent renders p with one decimal and an explicit "+" when positive.
func SignedPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 1, 64)
	if s == "-0.0" {
		s = "0.0"
	}
	if p > 0 && s != "0.0" {
		return "+" + s + "%"
	}
	return s + "%"
}

// Percent renders p with one decimal and no forced sign (CAGR sub-lines).
func Percent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 1, 64)
	if s == "-0.0" {
		s = "0.0"
	}
	return s + "%"
}

// AxisDomain pads the combined nominal/real range: 0.9 × min to 1.1 × max.
func AxisDomain(series []model.DataPoint) (lo, hi float64) {
	if len(series) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range series {
		lo = math.Min(lo, math.Min(p.NominalValue, p.RealValue))
		hi = math.Max(hi, math.Max(p.NominalValue, p.RealValue))
	}
	return lo * 0.9, hi * 1.1
}

// SummaryText is the formatted headline block shown above a chart.
type SummaryText struct {
	NominalReturn string `json:"nominal_return"`
	RealReturn    string `json:"real_return"`
	CAGRNominal   string `json:"cagr_nominal"`
	CAGRReal      string `json:"cagr_real"`
	FinalNominal  string `json:"final_nominal"`
	FinalReal     string `json:"final_real"`
	BeatInflation bool   `json:"beat_inflation"`
}

func Summary(data *model.ChartData) SummaryText {
	last := data.Last()
	s := data.Summary
	return SummaryText{
		NominalReturn: SignedPercent(s.TotalNominalReturnPct),
		RealReturn:    SignedPercent(s.TotalRealReturnPct),
		CAGRNominal:   Percent(s.CAGRNominalPct),
		CAGRReal:      Percent(s.CAGRRealPct),
		FinalNominal:  INR(last.NominalValue),
		FinalReal:     INR(last.RealValue),
		BeatInflation: s.TotalRealReturnPct >= 0,
	}
}
