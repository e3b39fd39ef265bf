package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/designertech992/stocks-forecast/internal/services"
)

type QuoteHandler struct {
	quotes services.QuoteService
}

func NewQuoteHandler(quotes services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// GET /api/quotes/{symbol}
// @Summary Get a stock quote
// @Description Current quote with 30 days of history. Falls back to mock data when the live source fails.
// @Tags quotes
// @Produce json
// @Param symbol path string true "Ticker symbol (e.g., AAPL)"
// @Success 200 {object} models.QuoteResult
// @Failure 400 {string} string "Bad request"
// @Failure 500 {string} string "Internal server error"
// @Router /quotes/{symbol} [get]
func (h *QuoteHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	res, err := h.quotes.GetQuote(r.Context(), mux.Vars(r)["symbol"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /api/quotes?symbols=AAPL,MSFT
// @Summary Get several quotes
// @Tags quotes
// @Produce json
// @Param symbols query string true "Comma separated ticker symbols"
// @Success 200 {array} models.QuoteResult
// @Failure 400 {string} string "Bad request"
// @Router /quotes [get]
func (h *QuoteHandler) HandleQuotes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	raw := r.URL.Query().Get("symbols")
	if strings.TrimSpace(raw) == "" {
		http.Error(w, "symbols is required", http.StatusBadRequest)
		return
	}
	res, err := h.quotes.GetQuotes(r.Context(), strings.Split(raw, ","))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /api/search?q=apple
// @Summary Search symbols
// @Tags quotes
// @Produce json
// @Param q query string true "Symbol or company name fragment"
// @Success 200 {array} models.SymbolMatch
// @Failure 400 {string} string "Bad request"
// @Router /search [get]
func (h *QuoteHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}
	matches, err := h.quotes.Search(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}
