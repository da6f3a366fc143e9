package models

import (
	"time"

	"inflation-lens/internal/analysis"
	"inflation-lens/internal/format"
	"inflation-lens/internal/model"
)

// Selection echoes the resolved selections after defaults and fallbacks
type Selection struct {
	Asset     model.AssetType     `json:"asset"`
	Inflation model.InflationType `json:"inflation"`
	Range     model.TimeRange     `json:"range"`
	Months    int                 `json:"months"`
}

// ChartResponse represents a generated (or stored) chart
type ChartResponse struct {
	ID        string             `json:"id"`
	Selection Selection          `json:"selection"`
	Seed      *int64             `json:"seed,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	Series    []model.DataPoint  `json:"series"`
	Summary   model.Summary      `json:"summary"`
	Formatted format.SummaryText `json:"formatted"`
	Axis      AxisInfo           `json:"axis"`
}

// AxisInfo is the padded y-axis domain for the chart
type AxisInfo struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CompareResponse ranks all assets against one index
type CompareResponse struct {
	Inflation model.InflationType `json:"inflation"`
	Range     model.TimeRange     `json:"range"`
	Seed      *int64              `json:"seed,omitempty"`
	Rankings  []Ranking           `json:"rankings"`
}

// Ranking represents one ranked asset
type Ranking struct {
	Rank int `json:"rank"`
	analysis.Outcome
}

// AssetInfo describes an asset selection
type AssetInfo struct {
	ID          model.AssetType `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Policy      string          `json:"policy"`
	AnnualMean  float64         `json:"annual_mean"`
	AnnualVol   float64         `json:"annual_volatility"`
}

// InflationInfo describes an inflation index selection
type InflationInfo struct {
	ID             model.InflationType `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	AnnualBaseRate float64             `json:"annual_base_rate"`
	AnnualVol      float64             `json:"annual_volatility"`
}

// RangeInfo describes a time range selection
type RangeInfo struct {
	ID     model.TimeRange `json:"id"`
	Name   string          `json:"name"`
	Months int             `json:"months"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeGenerationError = "GENERATION_ERROR"
	CodeStoreError      = "STORE_ERROR"
	CodeReportError     = "REPORT_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

// NewError builds an ErrorResponse
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
