package services

import (
	"context"

	"github.com/designertech992/stocks-forecast/internal/models"
)

// RandSource is the randomness consumed by the generator and the mock
// providers. *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// Forecaster produces a forecast for one asset over a timeframe.
type Forecaster interface {
	Generate(ctx context.Context, asset models.ForecastAsset, timeframe models.Timeframe) (*models.ForecastResult, error)
}

// QuoteSource is a live market-data collaborator.
type QuoteSource interface {
	Name() string
	GetQuote(ctx context.Context, symbol string) (*models.AssetQuote, error)
	Search(ctx context.Context, query string) ([]models.SymbolMatch, error)
}

// QuoteService is the quote facade used by handlers and the CLI.
type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) (*models.QuoteResult, error)
	GetQuotes(ctx context.Context, symbols []string) ([]*models.QuoteResult, error)
	Search(ctx context.Context, query string) ([]models.SymbolMatch, error)
}

// ForecastService is the forecast facade used by handlers and the CLI.
type ForecastService interface {
	GenerateForecast(ctx context.Context, asset models.ForecastAsset, timeframe models.Timeframe) (*models.ForecastResult, error)
	Mode() ForecastMode
}

// PredictionService manages saved predictions for one owner.
type PredictionService interface {
	List(ctx context.Context) ([]*models.SavedPrediction, error)
	Save(ctx context.Context, quote *models.AssetQuote, forecast *models.ForecastResult, timeframe models.Timeframe) (*models.SavedPrediction, error)
	UpdateStatus(ctx context.Context, id string, status models.PredictionStatus) (*models.SavedPrediction, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.SavedPrediction, error)
	SeedDemoData(ctx context.Context) error
	Summary(ctx context.Context) (*models.PredictionSummary, error)
	ForOwner(owner string) PredictionService
}

// AuthProvider is the session collaborator.
type AuthProvider interface {
	SignIn(ctx context.Context, creds models.Credentials) (*models.Session, error)
	SignUp(ctx context.Context, creds models.Credentials) (*models.Session, error)
	// SignInWithOAuth returns the URL the user must visit to continue.
	SignInWithOAuth(ctx context.Context, provider, redirectTo string) (string, error)
	SignOut(ctx context.Context, accessToken string) error
	// GetSession resolves an access token; it returns nil, nil when the token is not valid.
	GetSession(ctx context.Context, accessToken string) (*models.Session, error)
}
