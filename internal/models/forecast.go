package models

import (
	"github.com/shopspring/decimal"
)

// Timeframe is a forecast horizon code such as "7d".
type Timeframe string

const (
	Timeframe1D  Timeframe = "1d"
	Timeframe7D  Timeframe = "7d"
	Timeframe14D Timeframe = "14d"
	Timeframe30D Timeframe = "30d"
	Timeframe90D Timeframe = "90d"

	// DefaultTimeframeDays applies to any code outside the table.
	DefaultTimeframeDays = 7
)

var timeframeDays = map[Timeframe]int{
	Timeframe1D:  1,
	Timeframe7D:  7,
	Timeframe14D: 14,
	Timeframe30D: 30,
	Timeframe90D: 90,
}

// Days maps the code to a number of calendar days.
func (t Timeframe) Days() int {
	if d, ok := timeframeDays[t]; ok {
		return d
	}
	return DefaultTimeframeDays
}

// IsKnown reports whether the code is in the fixed table.
func (t Timeframe) IsKnown() bool {
	_, ok := timeframeDays[t]
	return ok
}

// ForecastAsset is what a forecaster needs to know about the asset.
type ForecastAsset struct {
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	CurrentPrice     decimal.Decimal `json:"currentPrice"`
	HistoricalPrices []PricePoint    `json:"historicalPrices,omitempty"`
}

// ForecastResult is one forecast: the predicted series (earliest first), a
// narrative, a 0-100 confidence and the factors in relevance order.
type ForecastResult struct {
	PredictedPrices   []PricePoint `json:"predictedPrices"`
	Explanation       string       `json:"explanation"`
	Confidence        int          `json:"confidence"`
	FactorsConsidered []string     `json:"factorsConsidered"`
}

// LastPrice returns the terminal predicted price.
func (f *ForecastResult) LastPrice() (decimal.Decimal, bool) {
	if f == nil || len(f.PredictedPrices) == 0 {
		return decimal.Zero, false
	}
	return f.PredictedPrices[len(f.PredictedPrices)-1].Price, true
}
