package models

import (
	"github.com/shopspring/decimal"
)

// AssetQuote is the current state of a ticker plus an optional daily history.
// DayLow <= Price <= DayHigh is best effort only.
type AssetQuote struct {
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Change           decimal.Decimal `json:"change"`
	ChangePercent    decimal.Decimal `json:"changePercent"`
	PreviousClose    decimal.Decimal `json:"previousClose"`
	Open             decimal.Decimal `json:"open"`
	DayHigh          decimal.Decimal `json:"dayHigh"`
	DayLow           decimal.Decimal `json:"dayLow"`
	Volume           int64           `json:"volume"`
	MarketCap        *int64          `json:"marketCap,omitempty"`
	HistoricalPrices []PricePoint    `json:"historicalPrices,omitempty"`
}

// ForecastAsset projects the quote onto the input of a forecast request.
func (q *AssetQuote) ForecastAsset() ForecastAsset {
	return ForecastAsset{
		Symbol:           q.Symbol,
		Name:             q.Name,
		CurrentPrice:     q.Price,
		HistoricalPrices: q.HistoricalPrices,
	}
}

// SymbolMatch is a single search hit.
type SymbolMatch struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// QuoteResult wraps a quote with where it came from. Fallback is set when a
// live lookup failed and synthetic data was substituted.
type QuoteResult struct {
	Quote          *AssetQuote `json:"quote"`
	Source         string      `json:"source"`
	Fallback       bool        `json:"fallback"`
	FallbackReason string      `json:"fallbackReason,omitempty"`
}
