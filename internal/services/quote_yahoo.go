package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

const yahooHistoryDays = 30

// YahooSource reads quotes through the finance-go Yahoo client.
type YahooSource struct {
	now func() time.Time
}

// NewYahooSource points finance-go's Yahoo backend at baseURL (finance.YFinURL
// when empty) with a client bounded by timeout. finance-go keeps its backend in
// package state, so the most recently constructed source wins.
func NewYahooSource(baseURL string, timeout time.Duration, now func() time.Time) *YahooSource {
	if now == nil {
		now = time.Now
	}
	if baseURL == "" {
		baseURL = finance.YFinURL
	}
	client := &http.Client{Timeout: timeout}
	finance.SetHTTPClient(client)
	finance.SetBackend(finance.YFinBackend, &finance.BackendConfiguration{
		Type:       finance.YFinBackend,
		URL:        strings.TrimRight(baseURL, "/"),
		HTTPClient: client,
	})
	return &YahooSource{now: now}
}

func (s *YahooSource) Name() string { return "yahoo" }

func (s *YahooSource) GetQuote(ctx context.Context, symbol string) (*models.AssetQuote, error) {
	symbol = strings.ToUpper(symbol)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter := equity.ListP(&equity.Params{
		Params:  finance.Params{Context: &ctx},
		Symbols: []string{symbol},
	})
	var eq *finance.Equity
	if iter.Next() {
		eq = iter.Equity()
	}
	if err := iter.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: yahoo quote %s: %v", apperrors.ErrUpstream, symbol, err)
	}
	if eq == nil || eq.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("%w: yahoo has no quote for %s", apperrors.ErrUpstream, symbol)
	}

	name := eq.LongName
	if name == "" {
		name = eq.ShortName
	}
	if name == "" {
		name = symbol
	}
	quote := &models.AssetQuote{
		Symbol:        symbol,
		Name:          name,
		Price:         decimal.NewFromFloat(eq.RegularMarketPrice),
		Change:        decimal.NewFromFloat(eq.RegularMarketChange).Round(2),
		ChangePercent: decimal.NewFromFloat(eq.RegularMarketChangePercent).Round(2),
		PreviousClose: decimal.NewFromFloat(eq.RegularMarketPreviousClose),
		Open:          decimal.NewFromFloat(eq.RegularMarketOpen),
		DayHigh:       decimal.NewFromFloat(eq.RegularMarketDayHigh),
		DayLow:        decimal.NewFromFloat(eq.RegularMarketDayLow),
		Volume:        int64(eq.RegularMarketVolume),
	}
	if eq.MarketCap > 0 {
		mc := eq.MarketCap
		quote.MarketCap = &mc
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	history, err := s.history(ctx, symbol)
	if err != nil {
		return nil, err
	}
	quote.HistoricalPrices = history
	return quote, nil
}

func (s *YahooSource) history(ctx context.Context, symbol string) ([]models.PricePoint, error) {
	end := s.now().UTC()
	// Weekends and holidays leave gaps, so ask for a wider window and trim.
	start := end.AddDate(0, 0, -2*yahooHistoryDays)
	iter := chart.Get(&chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	points := make([]models.PricePoint, 0, yahooHistoryDays)
	for iter.Next() {
		bar := iter.Bar()
		points = append(points, models.PricePoint{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC().Format(models.DateLayout),
			Price: bar.Close,
		})
	}
	if err := iter.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: yahoo history %s: %v", apperrors.ErrUpstream, symbol, err)
	}
	if len(points) > yahooHistoryDays {
		points = points[len(points)-yahooHistoryDays:]
	}
	return points, nil
}

// Search is not offered by the Yahoo client.
func (s *YahooSource) Search(_ context.Context, query string) ([]models.SymbolMatch, error) {
	return nil, fmt.Errorf("%w: yahoo source does not support symbol search (query %q)", apperrors.ErrUpstream, query)
}
