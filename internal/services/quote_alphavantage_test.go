package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
)

func alphaVantageServer(t *testing.T, responses map[string]interface{}) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		fn := r.URL.Query().Get("function")
		body, ok := responses[fn]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func dailySeries(n int) map[string]interface{} {
	series := map[string]interface{}{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i).Format("2006-01-02")
		series[d] = map[string]string{"4. close": decimal.NewFromInt(int64(100 + i)).String()}
	}
	return map[string]interface{}{"Time Series (Daily)": series}
}

func TestAlphaVantageSource_GetQuote(t *testing.T) {
	ts := alphaVantageServer(t, map[string]interface{}{
		"GLOBAL_QUOTE": map[string]interface{}{"Global Quote": map[string]string{
			"01. symbol":         "IBM",
			"02. open":           "185.20",
			"03. high":           "187.00",
			"04. low":            "184.10",
			"05. price":          "186.50",
			"06. volume":         "4123000",
			"08. previous close": "184.90",
			"09. change":         "1.60",
			"10. change percent": "0.8653%",
		}},
		"OVERVIEW":          map[string]string{"Name": "International Business Machines", "MarketCapitalization": "171000000000"},
		"TIME_SERIES_DAILY": dailySeries(45),
	})

	src := NewAlphaVantageSource("test-key", ts.URL, 5*time.Second)
	q, err := src.GetQuote(context.Background(), "IBM")
	require.NoError(t, err)

	assert.Equal(t, "IBM", q.Symbol)
	assert.Equal(t, "International Business Machines", q.Name)
	assert.True(t, q.Price.Equal(decimal.RequireFromString("186.50")))
	assert.True(t, q.ChangePercent.Equal(decimal.RequireFromString("0.8653")))
	assert.True(t, q.DayHigh.Equal(decimal.RequireFromString("187.00")))
	assert.True(t, q.DayLow.Equal(decimal.RequireFromString("184.10")))
	assert.Equal(t, int64(4123000), q.Volume)
	require.NotNil(t, q.MarketCap)
	assert.Equal(t, int64(171000000000), *q.MarketCap)

	require.Len(t, q.HistoricalPrices, 30)
	assert.Equal(t, "2024-01-16", q.HistoricalPrices[0].Date)
	assert.Equal(t, "2024-02-14", q.HistoricalPrices[29].Date)
	assert.True(t, q.HistoricalPrices[29].Price.Equal(decimal.NewFromInt(144)))
}

func TestAlphaVantageSource_EstimatesDayRangeWhenMissing(t *testing.T) {
	ts := alphaVantageServer(t, map[string]interface{}{
		"GLOBAL_QUOTE": map[string]interface{}{"Global Quote": map[string]string{
			"02. open":           "99",
			"05. price":          "100.00",
			"06. volume":         "10",
			"08. previous close": "98",
			"09. change":         "2",
			"10. change percent": "2.04%",
		}},
		"OVERVIEW":          map[string]string{},
		"TIME_SERIES_DAILY": dailySeries(3),
	})

	q, err := NewAlphaVantageSource("test-key", ts.URL, time.Second).GetQuote(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", q.Name, "symbol stands in for a missing name")
	assert.Nil(t, q.MarketCap)
	assert.True(t, q.DayHigh.Equal(decimal.NewFromInt(101)))
	assert.True(t, q.DayLow.Equal(decimal.NewFromInt(99)))
	assert.Len(t, q.HistoricalPrices, 3)
}

func TestAlphaVantageSource_Failures(t *testing.T) {
	goodQuote := map[string]interface{}{"Global Quote": map[string]string{
		"02. open": "1", "05. price": "1", "08. previous close": "1", "09. change": "0", "10. change percent": "0%",
	}}
	cases := []struct {
		name      string
		responses map[string]interface{}
		want      error
	}{
		{"quote http error", map[string]interface{}{}, apperrors.ErrUpstream},
		{"rate limited", map[string]interface{}{"GLOBAL_QUOTE": map[string]string{"Note": "Thank you for using Alpha Vantage!"}}, apperrors.ErrUpstream},
		{"empty quote", map[string]interface{}{"GLOBAL_QUOTE": map[string]interface{}{"Global Quote": map[string]string{}}}, apperrors.ErrParse},
		{"overview fails", map[string]interface{}{"GLOBAL_QUOTE": goodQuote}, apperrors.ErrUpstream},
		{"series missing", map[string]interface{}{"GLOBAL_QUOTE": goodQuote, "OVERVIEW": map[string]string{}, "TIME_SERIES_DAILY": map[string]string{}}, apperrors.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := alphaVantageServer(t, tc.responses)
			_, err := NewAlphaVantageSource("test-key", ts.URL, time.Second).GetQuote(context.Background(), "IBM")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAlphaVantageSource_Search(t *testing.T) {
	ts := alphaVantageServer(t, map[string]interface{}{
		"SYMBOL_SEARCH": map[string]interface{}{"bestMatches": []map[string]string{
			{"1. symbol": "TSCO.LON", "2. name": "Tesco PLC"},
			{"1. symbol": "TSLA", "2. name": "Tesla Inc"},
		}},
	})

	matches, err := NewAlphaVantageSource("test-key", ts.URL, time.Second).Search(context.Background(), "tes")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "TSLA", matches[1].Symbol)
	assert.Equal(t, "Tesla Inc", matches[1].Name)
}
