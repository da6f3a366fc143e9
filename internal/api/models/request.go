package models

// ChartRequest is the query string of GET /api/v1/chart
type ChartRequest struct {
	Asset     string `form:"asset"`     // default: nifty50
	Inflation string `form:"inflation"` // default: cpi-combined
	Range     string `form:"range"`     // default: 5Y
	Seed      *int64 `form:"seed"`      // omit for a time-seeded path
}

// CompareRequest is the query string of GET /api/v1/compare
type CompareRequest struct {
	Inflation string `form:"inflation"`
	Range     string `form:"range"`
	Seed      *int64 `form:"seed"`
}

// DistributionRequest is the query string of GET /api/v1/distribution
type DistributionRequest struct {
	Asset     string `form:"asset"`
	Inflation string `form:"inflation"`
	Range     string `form:"range"`
	Trials    int    `form:"trials" binding:"omitempty,min=1"` // default from config
	Seed      *int64 `form:"seed"`
}
