package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

// ForecastMode selects where forecasts come from.
type ForecastMode string

const (
	ForecastModeMock ForecastMode = "mock"
	ForecastModeLive ForecastMode = "live"
)

// ForecastProvider dispatches to the mock synthesizer or the live model.
// The mode is fixed at construction.
type ForecastProvider struct {
	mode   ForecastMode
	mock   Forecaster
	live   Forecaster
	logger *zap.Logger
}

func NewForecastProvider(mode ForecastMode, mock, live Forecaster, logger *zap.Logger) *ForecastProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ForecastProvider{mode: mode, mock: mock, live: live, logger: logger}
}

func (p *ForecastProvider) Mode() ForecastMode { return p.mode }

// GenerateForecast validates the asset and delegates. LIVE errors are returned
// unretried and never replaced by mock output.
func (p *ForecastProvider) GenerateForecast(ctx context.Context, asset models.ForecastAsset, timeframe models.Timeframe) (*models.ForecastResult, error) {
	if strings.TrimSpace(asset.Symbol) == "" {
		return nil, apperrors.NewValidation("symbol", "is required")
	}
	if !asset.CurrentPrice.IsPositive() {
		return nil, apperrors.NewValidation("currentPrice", "must be positive")
	}
	if timeframe == "" {
		timeframe = models.Timeframe7D
	}

	if p.mode == ForecastModeMock {
		p.logger.Info("using mock forecast generator", zap.String("symbol", asset.Symbol))
		return p.mock.Generate(ctx, asset, timeframe)
	}
	return p.live.Generate(ctx, asset, timeframe)
}
