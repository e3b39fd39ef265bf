package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/designertech992/stocks-forecast/internal/models"
)

const (
	minMockConfidence   = 65
	mockConfidenceRange = 21 // [65, 85]
	minExtraFactors     = 2
)

var baselineFactors = []string{
	"Historical price movement data",
	"Market trend analysis and seasonality",
	"Technical analysis indicators (RSI, MACD, EMA)",
}

func positiveFactors(symbol string) []string {
	return []string{
		fmt.Sprintf("Recent positive financial reports for %s", symbol),
		"Overall growth of the relevant market sector",
		"Favorable macroeconomic indicators",
		"Increase in institutional investment",
	}
}

func negativeFactors(symbol string) []string {
	return []string{
		"Short-term market correction",
		fmt.Sprintf("Rumors of a possible revenue decline for %s", symbol),
		"Increased volatility in the sector",
		"Unfavorable regulatory changes",
	}
}

// MockForecaster synthesizes forecasts locally from a forward random walk.
type MockForecaster struct {
	generator *PriceGenerator
	rng       RandSource
	latency   time.Duration
	logger    *zap.Logger
}

func NewMockForecaster(generator *PriceGenerator, rng RandSource, latency time.Duration, logger *zap.Logger) *MockForecaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockForecaster{generator: generator, rng: rng, latency: latency, logger: logger}
}

// Generate never fails on valid input; the only errors are a non-positive
// current price and context cancellation during the simulated latency.
func (f *MockForecaster) Generate(ctx context.Context, asset models.ForecastAsset, timeframe models.Timeframe) (*models.ForecastResult, error) {
	f.logger.Debug("generating mock forecast",
		zap.String("symbol", asset.Symbol),
		zap.String("timeframe", string(timeframe)))

	if f.latency > 0 {
		timer := time.NewTimer(f.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	predicted, err := f.generator.Forward(asset.CurrentPrice, timeframe.Days())
	if err != nil {
		return nil, err
	}

	last := predicted[len(predicted)-1].Price
	changePercent := last.Div(asset.CurrentPrice).Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))
	positive := changePercent.IsPositive()

	return &models.ForecastResult{
		PredictedPrices:   predicted,
		Explanation:       mockExplanation(asset.Symbol, positive),
		Confidence:        minMockConfidence + f.rng.Intn(mockConfidenceRange),
		FactorsConsidered: f.pickFactors(asset.Symbol, positive),
	}, nil
}

func (f *MockForecaster) pickFactors(symbol string, positive bool) []string {
	pool := negativeFactors(symbol)
	if positive {
		pool = positiveFactors(symbol)
	}

	factors := make([]string, 0, len(baselineFactors)+3)
	factors = append(factors, baselineFactors...)

	n := minExtraFactors + f.rng.Intn(2)
	for i := 0; i < n && len(pool) > 0; i++ {
		idx := f.rng.Intn(len(pool))
		factors = append(factors, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return factors
}

func mockExplanation(symbol string, positive bool) string {
	if positive {
		return fmt.Sprintf("Based on historical data and current market trends, %s shares are expected to rise. "+
			"The company shows stable financial results, and recent news about new products and market expansion "+
			"is lifting investor sentiment. The sector as a whole is also in a bullish trend.", symbol)
	}
	return fmt.Sprintf("Historical data suggests %s shares may decline over the selected period. "+
		"This may be driven by a broader market correction and recent reports of a possible drop in quarterly earnings. "+
		"Elevated volatility in the sector could also cause short-term price swings.", symbol)
}
