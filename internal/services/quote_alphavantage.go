package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

const (
	alphaVantageHistoryDays = 30
	alphaVantageQueryPath   = "/query"
)

// AlphaVantageSource reads quotes from the Alpha Vantage REST API.
type AlphaVantageSource struct {
	client *resty.Client
	apiKey string
}

// NewAlphaVantageSource creates a client for baseURL, e.g. https://www.alphavantage.co.
func NewAlphaVantageSource(apiKey, baseURL string, timeout time.Duration) *AlphaVantageSource {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetTimeout(timeout)

	return &AlphaVantageSource{client: client, apiKey: apiKey}
}

func (s *AlphaVantageSource) Name() string { return "alphavantage" }

type avGlobalQuoteResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
}

type avOverviewResponse struct {
	Name                 string `json:"Name"`
	MarketCapitalization string `json:"MarketCapitalization"`
}

type avDailyResponse struct {
	TimeSeries map[string]map[string]string `json:"Time Series (Daily)"`
}

type avSearchResponse struct {
	BestMatches []map[string]string `json:"bestMatches"`
}

// GetQuote combines GLOBAL_QUOTE, OVERVIEW and TIME_SERIES_DAILY. Any failed
// call fails the whole lookup.
func (s *AlphaVantageSource) GetQuote(ctx context.Context, symbol string) (*models.AssetQuote, error) {
	var gq avGlobalQuoteResponse
	if err := s.query(ctx, map[string]string{"function": "GLOBAL_QUOTE", "symbol": symbol}, &gq); err != nil {
		return nil, err
	}
	quote, err := parseGlobalQuote(symbol, gq.GlobalQuote)
	if err != nil {
		return nil, err
	}

	var overview avOverviewResponse
	if err := s.query(ctx, map[string]string{"function": "OVERVIEW", "symbol": symbol}, &overview); err != nil {
		return nil, err
	}
	quote.Name = symbol
	if overview.Name != "" {
		quote.Name = overview.Name
	}
	if mc, err := strconv.ParseInt(overview.MarketCapitalization, 10, 64); err == nil {
		quote.MarketCap = &mc
	}

	var daily avDailyResponse
	if err := s.query(ctx, map[string]string{"function": "TIME_SERIES_DAILY", "symbol": symbol, "outputsize": "compact"}, &daily); err != nil {
		return nil, err
	}
	history, err := parseDailySeries(daily.TimeSeries, alphaVantageHistoryDays)
	if err != nil {
		return nil, err
	}
	quote.HistoricalPrices = history

	return quote, nil
}

func (s *AlphaVantageSource) Search(ctx context.Context, query string) ([]models.SymbolMatch, error) {
	var resp avSearchResponse
	if err := s.query(ctx, map[string]string{"function": "SYMBOL_SEARCH", "keywords": query}, &resp); err != nil {
		return nil, err
	}
	matches := make([]models.SymbolMatch, 0, len(resp.BestMatches))
	for _, m := range resp.BestMatches {
		matches = append(matches, models.SymbolMatch{Symbol: m["1. symbol"], Name: m["2. name"]})
	}
	return matches, nil
}

func (s *AlphaVantageSource) query(ctx context.Context, params map[string]string, out interface{}) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("apikey", s.apiKey).
		Get(alphaVantageQueryPath)
	if err != nil {
		return fmt.Errorf("%w: alpha vantage %s: %v", apperrors.ErrUpstream, params["function"], err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: alpha vantage %s returned %d", apperrors.ErrUpstream, params["function"], resp.StatusCode())
	}

	// Rate limit and bad-key responses come back as 200 with a single message field.
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%w: alpha vantage %s: %v", apperrors.ErrParse, params["function"], err)
	}
	for _, k := range []string{"Error Message", "Note", "Information"} {
		if msg, ok := envelope[k]; ok {
			return fmt.Errorf("%w: alpha vantage %s: %s", apperrors.ErrUpstream, params["function"], string(msg))
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: alpha vantage %s: %v", apperrors.ErrParse, params["function"], err)
	}
	return nil
}

func parseGlobalQuote(symbol string, q map[string]string) (*models.AssetQuote, error) {
	if q == nil || q["05. price"] == "" {
		return nil, fmt.Errorf("%w: invalid GLOBAL_QUOTE payload for %s", apperrors.ErrParse, symbol)
	}

	price, err := decimal.NewFromString(q["05. price"])
	if err != nil {
		return nil, fmt.Errorf("%w: price: %v", apperrors.ErrParse, err)
	}
	quote := &models.AssetQuote{Symbol: strings.ToUpper(symbol), Price: price}

	fields := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"09. change", &quote.Change},
		{"08. previous close", &quote.PreviousClose},
		{"02. open", &quote.Open},
	}
	for _, f := range fields {
		v, err := decimal.NewFromString(q[f.key])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrParse, f.key, err)
		}
		*f.dst = v
	}

	pct, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(q["10. change percent"]), "%"))
	if err != nil {
		return nil, fmt.Errorf("%w: change percent: %v", apperrors.ErrParse, err)
	}
	quote.ChangePercent = pct

	onePercent := price.Mul(decimal.RequireFromString("0.01"))
	quote.DayHigh = price.Add(onePercent).Round(2)
	if v, err := decimal.NewFromString(q["03. high"]); err == nil {
		quote.DayHigh = v
	}
	quote.DayLow = price.Sub(onePercent).Round(2)
	if v, err := decimal.NewFromString(q["04. low"]); err == nil {
		quote.DayLow = v
	}

	if v, err := strconv.ParseInt(q["06. volume"], 10, 64); err == nil {
		quote.Volume = v
	}
	return quote, nil
}

// parseDailySeries keeps the last n closes in ascending date order.
func parseDailySeries(series map[string]map[string]string, n int) ([]models.PricePoint, error) {
	if series == nil {
		return nil, fmt.Errorf("%w: invalid TIME_SERIES_DAILY payload", apperrors.ErrParse)
	}
	dates := make([]string, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > n {
		dates = dates[len(dates)-n:]
	}

	points := make([]models.PricePoint, 0, len(dates))
	for _, d := range dates {
		closePrice, err := decimal.NewFromString(series[d]["4. close"])
		if err != nil {
			return nil, fmt.Errorf("%w: close on %s: %v", apperrors.ErrParse, d, err)
		}
		points = append(points, models.PricePoint{Date: d, Price: closePrice})
	}
	return points, nil
}
