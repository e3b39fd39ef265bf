package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/designertech992/stocks-forecast/internal/models"
	"github.com/designertech992/stocks-forecast/internal/services"
)

type ForecastHandler struct {
	quotes    services.QuoteService
	forecasts services.ForecastService
}

func NewForecastHandler(quotes services.QuoteService, forecasts services.ForecastService) *ForecastHandler {
	return &ForecastHandler{quotes: quotes, forecasts: forecasts}
}

type ForecastRequest struct {
	Symbol    string           `json:"symbol"`
	Timeframe models.Timeframe `json:"timeframe"`
}

type ForecastResponse struct {
	Quote    *models.QuoteResult    `json:"quote"`
	Forecast *models.ForecastResult `json:"forecast"`
}

// POST /api/forecasts
// @Summary Generate a forecast
// @Description Looks up the quote, then forecasts it over the timeframe (1d, 7d, 14d, 30d, 90d; anything else means 7d).
// @Tags forecasts
// @Accept json
// @Produce json
// @Param request body ForecastRequest true "Forecast request"
// @Success 200 {object} ForecastResponse
// @Failure 400 {string} string "Bad request"
// @Failure 502 {string} string "Completion API failed"
// @Failure 503 {string} string "Completion API not configured"
// @Router /forecasts [post]
func (h *ForecastHandler) HandleForecasts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Timeframe == "" {
		req.Timeframe = models.Timeframe7D
	}

	quote, err := h.quotes.GetQuote(r.Context(), req.Symbol)
	if err != nil {
		writeError(w, err)
		return
	}
	forecast, err := h.forecasts.GenerateForecast(r.Context(), quote.Quote.ForecastAsset(), req.Timeframe)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ForecastResponse{Quote: quote, Forecast: forecast})
}
