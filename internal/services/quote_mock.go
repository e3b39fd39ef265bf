package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/designertech992/stocks-forecast/internal/models"
)

const mockHistoryDays = 30

type mockQuoteFixture struct {
	name          string
	price         string
	change        string
	changePercent string
	previousClose string
	open          string
	dayHigh       string
	dayLow        string
	volume        int64
	marketCap     int64
}

var mockQuoteFixtures = map[string]mockQuoteFixture{
	"AAPL":  {"Apple Inc.", "175.34", "1.25", "0.72", "174.09", "174.28", "176.10", "173.95", 58427000, 2750000000000},
	"MSFT":  {"Microsoft Corporation", "384.21", "3.45", "0.91", "380.76", "381.20", "385.50", "380.18", 22635000, 2850000000000},
	"GOOGL": {"Alphabet Inc.", "141.50", "-0.78", "-0.55", "142.28", "142.30", "142.95", "140.85", 25789000, 1780000000000},
	"AMZN":  {"Amazon.com Inc.", "178.25", "2.15", "1.22", "176.10", "176.80", "179.30", "176.05", 35428000, 1850000000000},
	"TSLA":  {"Tesla, Inc.", "172.63", "-4.27", "-2.41", "176.90", "176.05", "177.38", "171.20", 98752000, 550000000000},
}

// mockSearchCandidates is ordered the way search results are returned.
var mockSearchCandidates = []models.SymbolMatch{
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "AMZN", Name: "Amazon.com Inc."},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "TSLA", Name: "Tesla, Inc."},
}

// MockQuoteSource serves the fixture table and synthesizes anything else.
type MockQuoteSource struct {
	generator *PriceGenerator
	rng       RandSource
}

func NewMockQuoteSource(generator *PriceGenerator, rng RandSource) *MockQuoteSource {
	return &MockQuoteSource{generator: generator, rng: rng}
}

func (s *MockQuoteSource) Name() string { return "mock" }

func (s *MockQuoteSource) GetQuote(_ context.Context, symbol string) (*models.AssetQuote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	var quote *models.AssetQuote
	if f, ok := mockQuoteFixtures[symbol]; ok {
		quote = f.quote(symbol)
	} else {
		quote = s.synthesize(symbol)
	}

	history, err := s.generator.Backward(quote.Price, mockHistoryDays)
	if err != nil {
		return nil, err
	}
	quote.HistoricalPrices = history
	return quote, nil
}

func (s *MockQuoteSource) Search(_ context.Context, query string) ([]models.SymbolMatch, error) {
	q := strings.ToLower(query)
	matches := make([]models.SymbolMatch, 0, len(mockSearchCandidates))
	for _, c := range mockSearchCandidates {
		if strings.Contains(strings.ToLower(c.Symbol), q) || strings.Contains(strings.ToLower(c.Name), q) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (f mockQuoteFixture) quote(symbol string) *models.AssetQuote {
	marketCap := f.marketCap
	return &models.AssetQuote{
		Symbol:        symbol,
		Name:          f.name,
		Price:         decimal.RequireFromString(f.price),
		Change:        decimal.RequireFromString(f.change),
		ChangePercent: decimal.RequireFromString(f.changePercent),
		PreviousClose: decimal.RequireFromString(f.previousClose),
		Open:          decimal.RequireFromString(f.open),
		DayHigh:       decimal.RequireFromString(f.dayHigh),
		DayLow:        decimal.RequireFromString(f.dayLow),
		Volume:        f.volume,
		MarketCap:     &marketCap,
	}
}

// synthesize builds a plausible quote where DayLow <= Price <= DayHigh and
// PreviousClose = Price - Change.
func (s *MockQuoteSource) synthesize(symbol string) *models.AssetQuote {
	price := decimal.NewFromFloat(100 + s.rng.Float64()*200).Round(2)
	change := decimal.NewFromFloat((s.rng.Float64() - 0.4) * 5).Round(2)
	onePercent := price.Mul(decimal.RequireFromString("0.01"))
	marketCap := int64(s.rng.Float64()*500_000_000_000) + 10_000_000_000

	return &models.AssetQuote{
		Symbol:        symbol,
		Name:          fmt.Sprintf("%s Corporation", symbol),
		Price:         price,
		Change:        change,
		ChangePercent: change.Div(price).Mul(decimal.NewFromInt(100)).Round(2),
		PreviousClose: price.Sub(change),
		Open:          price.Sub(change.Div(decimal.NewFromInt(2))).Round(2),
		DayHigh:       price.Add(onePercent).Round(2),
		DayLow:        price.Sub(onePercent).Round(2),
		Volume:        int64(s.rng.Float64()*10_000_000) + 1_000_000,
		MarketCap:     &marketCap,
	}
}
