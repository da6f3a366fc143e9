package model

import "strings"

// AssetType identifies an asset class the simulator can grow.
// Keep these values stable; they are used in URLs, CSV output and config files.
type AssetType string

const (
	AssetNifty50      AssetType = "nifty50"
	AssetSensex       AssetType = "sensex"
	AssetGold         AssetType = "gold"
	AssetFD           AssetType = "fd"
	AssetPPF          AssetType = "ppf"
	AssetMedianSalary AssetType = "median-salary"
	AssetCash         AssetType = "cash"
)

// AllAssets lists every asset class in display order.
var AllAssets = []AssetType{
	AssetNifty50,
	AssetSensex,
	AssetGold,
	AssetFD,
	AssetPPF,
	AssetMedianSalary,
	AssetCash,
}

var assetNames = map[AssetType]string{
	AssetNifty50:      "Nifty 50",
	AssetSensex:       "Sensex",
	AssetGold:         "Gold (INR)",
	AssetFD:           "Fixed Deposit",
	AssetPPF:          "PPF",
	AssetMedianSalary: "Median IT Salary",
	AssetCash:         "Cash (Keeping under mattress)",
}

var assetDescriptions = map[AssetType]string{
	AssetNifty50:      "Top 50 large-cap companies on the NSE. Proxy for broad equity exposure.",
	AssetSensex:       "Top 30 companies on the BSE. Similar to Nifty 50 with different weighting.",
	AssetGold:         "Domestic gold price in rupees, driven by USD-INR and import duties. A long-run inflation hedge.",
	AssetFD:           "Bank fixed deposit. Low volatility, often a negative real return after tax.",
	AssetPPF:          "Public Provident Fund. Government-backed, tax-free, rate set quarterly.",
	AssetMedianSalary: "Median white-collar IT salary. Grows through annual hikes, not continuous compounding.",
	AssetCash:         "Hard cash. Zero nominal growth, so it loses exactly the inflation rate.",
}

// DisplayName returns the human-friendly label, or the raw ID for unknown values.
func (a AssetType) DisplayName() string {
	if n, ok := assetNames[a]; ok {
		return n
	}
	return string(a)
}

func (a AssetType) Description() string { return assetDescriptions[a] }

// Known reports whether a is one of AllAssets.
func (a AssetType) Known() bool {
	_, ok := assetNames[a]
	return ok
}

// IsFixedIncome reports whether the asset compounds smoothly without shocks.
func (a AssetType) IsFixedIncome() bool {
	switch a {
	case AssetFD, AssetPPF, AssetCash:
		return true
	default:
		return false
	}
}

// ParseAsset accepts an ID or a display name (case-insensitive).
// Unrecognized input is returned as-is so lookups can apply their default row.
func ParseAsset(s string) AssetType {
	s = strings.TrimSpace(s)
	for _, a := range AllAssets {
		if strings.EqualFold(s, string(a)) || strings.EqualFold(s, a.DisplayName()) {
			return a
		}
	}
	return AssetType(strings.ToLower(s))
}

// InflationType identifies the price index used to deflate nominal values.
type InflationType string

const (
	InflationCPICombined    InflationType = "cpi-combined"
	InflationCPIFood        InflationType = "cpi-food"
	InflationCPIFuel        InflationType = "cpi-fuel"
	InflationWPI            InflationType = "wpi"
	InflationLifestyleMetro InflationType = "lifestyle-metro"
)

var AllInflationTypes = []InflationType{
	InflationCPICombined,
	InflationCPIFood,
	InflationCPIFuel,
	InflationWPI,
	InflationLifestyleMetro,
}

var inflationNames = map[InflationType]string{
	InflationCPICombined:    "CPI (All India Combined)",
	InflationCPIFood:        "CPI (Food & Beverages)",
	InflationCPIFuel:        "CPI (Fuel & Light)",
	InflationWPI:            "WPI (Wholesale)",
	InflationLifestyleMetro: "Metro Lifestyle Index (Est.)",
}

var inflationDescriptions = map[InflationType]string{
	InflationCPICombined:    "Headline consumer price index reported by MOSPI: food, fuel, housing, clothing.",
	InflationCPIFood:        "Food and beverages component of CPI. Usually higher and more volatile than core.",
	InflationCPIFuel:        "Fuel and light component of CPI. Tracks crude prices and local taxes.",
	InflationWPI:            "Wholesale price index. Producer prices, a leading indicator for CPI.",
	InflationLifestyleMetro: "Estimated basket for metro middle-class households: rent, private schooling, healthcare, leisure.",
}

func (i InflationType) DisplayName() string {
	if n, ok := inflationNames[i]; ok {
		return n
	}
	return string(i)
}

func (i InflationType) Description() string { return inflationDescriptions[i] }

func (i InflationType) Known() bool {
	_, ok := inflationNames[i]
	return ok
}

// ParseInflation accepts an ID or a display name (case-insensitive).
func ParseInflation(s string) InflationType {
	s = strings.TrimSpace(s)
	for _, i := range AllInflationTypes {
		if strings.EqualFold(s, string(i)) || strings.EqualFold(s, i.DisplayName()) {
			return i
		}
	}
	return InflationType(strings.ToLower(s))
}

// TimeRange is a look-back window ending at the current month.
type TimeRange string

const (
	Range1Y  TimeRange = "1Y"
	Range3Y  TimeRange = "3Y"
	Range5Y  TimeRange = "5Y"
	Range10Y TimeRange = "10Y"
	RangeMax TimeRange = "MAX"
)

var AllTimeRanges = []TimeRange{Range1Y, Range3Y, Range5Y, Range10Y, RangeMax}

func (r TimeRange) DisplayName() string {
	if r == RangeMax {
		return "Max (20Y)"
	}
	return string(r)
}

func (r TimeRange) Known() bool {
	for _, k := range AllTimeRanges {
		if k == r {
			return true
		}
	}
	return false
}

// ParseTimeRange accepts "5Y", "5y", "max" and "Max (20Y)".
func ParseTimeRange(s string) TimeRange {
	s = strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(s, "MAX") {
		return RangeMax
	}
	return TimeRange(s)
}
