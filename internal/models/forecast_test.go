package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeframe_Days(t *testing.T) {
	cases := map[Timeframe]int{
		"1d":  1,
		"7d":  7,
		"14d": 14,
		"30d": 30,
		"90d": 90,
		"2w":  7,
		"":    7,
	}
	for code, want := range cases {
		assert.Equal(t, want, code.Days(), "timeframe %q", code)
	}
	assert.True(t, Timeframe30D.IsKnown())
	assert.False(t, Timeframe("45d").IsKnown())
}

func TestForecastResult_LastPrice(t *testing.T) {
	var empty *ForecastResult
	_, ok := empty.LastPrice()
	require.False(t, ok)

	f := &ForecastResult{PredictedPrices: []PricePoint{
		{Date: "2024-03-01", Price: decimal.NewFromFloat(100)},
		{Date: "2024-03-02", Price: decimal.NewFromFloat(101.5)},
	}}
	last, ok := f.LastPrice()
	require.True(t, ok)
	require.True(t, last.Equal(decimal.NewFromFloat(101.5)))
}

func TestForecastResult_JSONFieldNames(t *testing.T) {
	raw := `{"predictedPrices":[{"date":"2024-03-01","price":180.25}],"explanation":"up","confidence":72,"factorsConsidered":["a","b"]}`
	var f ForecastResult
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	require.Len(t, f.PredictedPrices, 1)
	require.True(t, f.PredictedPrices[0].Price.Equal(decimal.RequireFromString("180.25")))
	require.Equal(t, 72, f.Confidence)
	require.Equal(t, []string{"a", "b"}, f.FactorsConsidered)
}

func TestPricePoint_Validate(t *testing.T) {
	require.NoError(t, PricePoint{Date: "2024-03-01", Price: decimal.NewFromInt(1)}.Validate())
	require.Error(t, PricePoint{Date: "03/01/2024", Price: decimal.NewFromInt(1)}.Validate())
	require.Error(t, PricePoint{Date: "2024-03-01", Price: decimal.Zero}.Validate())
}

func TestAssetQuote_ForecastAsset(t *testing.T) {
	q := &AssetQuote{
		Symbol: "AAPL",
		Name:   "Apple Inc.",
		Price:  decimal.RequireFromString("175.34"),
		HistoricalPrices: []PricePoint{
			{Date: "2024-03-01", Price: decimal.RequireFromString("174.00")},
		},
	}
	a := q.ForecastAsset()
	assert.Equal(t, "AAPL", a.Symbol)
	assert.Equal(t, "Apple Inc.", a.Name)
	assert.True(t, a.CurrentPrice.Equal(q.Price))
	assert.Len(t, a.HistoricalPrices, 1)
}

func TestPredictionStatus_IsValid(t *testing.T) {
	assert.True(t, PredictionStatusActive.IsValid())
	assert.True(t, PredictionStatusCompleted.IsValid())
	assert.True(t, PredictionStatusFailed.IsValid())
	assert.False(t, PredictionStatus("archived").IsValid())
}

func TestSavedPrediction_CreatedAtIsISO8601(t *testing.T) {
	p := SavedPrediction{
		ID:        "demo-1",
		CreatedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Status:    PredictionStatusActive,
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(b), `"createdAt":"2024-03-01T12:30:00Z"`)
}
