package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/designertech992/stocks-forecast/internal/docs"
	"github.com/designertech992/stocks-forecast/internal/services"
)

// Dependencies are the services the HTTP API is built on.
type Dependencies struct {
	Quotes      services.QuoteService
	Forecasts   services.ForecastService
	Predictions services.PredictionService
	Auth        services.AuthProvider
	// Health reports storage health; nil means always healthy.
	Health func() error
	Logger *zap.Logger
}

// NewRouter wires every route plus CORS and request logging.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	quoteHandler := NewQuoteHandler(deps.Quotes)
	forecastHandler := NewForecastHandler(deps.Quotes, deps.Forecasts)
	predictionHandler := NewPredictionHandler(deps.Predictions)
	authHandler := NewAuthHandler(deps.Auth)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if deps.Health != nil {
			if err := deps.Health(); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "stocks-forecast",
		})
	})

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/quotes", quoteHandler.HandleQuotes)
	api.HandleFunc("/quotes/{symbol}", quoteHandler.HandleQuote)
	api.HandleFunc("/search", quoteHandler.HandleSearch)
	api.HandleFunc("/forecasts", forecastHandler.HandleForecasts)

	api.HandleFunc("/auth/signin", authHandler.HandleSignIn)
	api.HandleFunc("/auth/signup", authHandler.HandleSignUp)
	api.HandleFunc("/auth/signout", authHandler.HandleSignOut)
	api.HandleFunc("/auth/session", authHandler.HandleSession)
	api.HandleFunc("/auth/oauth/{provider}", authHandler.HandleOAuth)

	predictions := api.PathPrefix("/predictions").Subrouter()
	predictions.Use(RequireSession(deps.Auth))
	predictions.HandleFunc("", predictionHandler.HandlePredictions)
	predictions.HandleFunc("/summary", predictionHandler.HandleSummary)
	predictions.HandleFunc("/seed", predictionHandler.HandleSeed)
	predictions.HandleFunc("/{id}", predictionHandler.HandlePrediction)

	return CORS(RequestLogger(logger)(router))
}
