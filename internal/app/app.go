// Package app assembles the service graph from a resolved Config. Both the
// HTTP server and the operator CLI start from here.
package app

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/designertech992/stocks-forecast/internal/config"
	"github.com/designertech992/stocks-forecast/internal/db"
	"github.com/designertech992/stocks-forecast/internal/handlers"
	"github.com/designertech992/stocks-forecast/internal/logger"
	"github.com/designertech992/stocks-forecast/internal/repositories"
	"github.com/designertech992/stocks-forecast/internal/services"
)

type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *db.DB
	Quotes      *services.QuoteProvider
	Forecasts   *services.ForecastProvider
	Predictions services.PredictionService
	Auth        services.AuthProvider
}

// New connects storage and builds every facade. Modes are fixed here and do
// not change for the life of the process.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg.LogEnv)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	database, err := db.Connect(db.NewConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	a := &App{Config: cfg, Logger: log, DB: database}
	a.wire(services.NewLockedRand(0), time.Now, repositories.NewKVRepository(database))

	log.Info("application ready",
		zap.String("environment", string(cfg.Environment)),
		zap.Bool("mock_quotes", a.Quotes.UsesMock()),
		zap.String("forecast_mode", string(a.Forecasts.Mode())),
		zap.String("auth_mode", cfg.Auth.Mode),
		zap.String("db_driver", cfg.Database.Driver))
	return a, nil
}

func (a *App) wire(rng services.RandSource, now func() time.Time, kv repositories.KVStore) {
	cfg := a.Config
	generator := services.NewPriceGenerator(rng, now)

	var live services.QuoteSource
	if !cfg.UseMockQuotes() {
		switch cfg.Quotes.Source {
		case config.QuoteSourceYahoo:
			live = services.NewYahooSource(cfg.Quotes.YahooURL, cfg.Quotes.Timeout, now)
		default:
			live = services.NewAlphaVantageSource(cfg.Quotes.AlphaVantageKey, cfg.Quotes.AlphaVantageURL, cfg.Quotes.Timeout)
		}
	}
	a.Quotes = services.NewQuoteProvider(cfg.UseMockQuotes(), services.NewMockQuoteSource(generator, rng), live, a.Logger)

	mode := services.ForecastModeLive
	if cfg.UseMockForecasts() {
		mode = services.ForecastModeMock
	}
	a.Forecasts = services.NewForecastProvider(mode,
		services.NewMockForecaster(generator, rng, cfg.MockLatency, a.Logger),
		services.NewLiveForecaster(
			services.NewOpenAIChatModelFactory(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model),
			cfg.OpenAI.Timeout, a.Logger),
		a.Logger)

	a.Predictions = services.NewPredictionService(kv, now, a.Logger)

	if cfg.Auth.Mode == config.AuthModeSupabase {
		a.Auth = services.NewSupabaseAuthProvider(cfg.Auth.SupabaseURL, cfg.Auth.SupabaseAnonKey, cfg.Quotes.Timeout, a.Logger)
	} else {
		a.Auth = services.NewMockAuthProvider(now, a.Logger)
	}
}

// Router returns the HTTP API over this app's services.
func (a *App) Router() http.Handler {
	return handlers.NewRouter(handlers.Dependencies{
		Quotes:      a.Quotes,
		Forecasts:   a.Forecasts,
		Predictions: a.Predictions,
		Auth:        a.Auth,
		Health:      a.DB.Health,
		Logger:      a.Logger,
	})
}

// Close releases the database and flushes the logger.
func (a *App) Close() error {
	defer a.Logger.Sync()
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
