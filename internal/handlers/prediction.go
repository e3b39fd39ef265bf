package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/designertech992/stocks-forecast/internal/models"
	"github.com/designertech992/stocks-forecast/internal/services"
)

type PredictionHandler struct {
	store services.PredictionService
}

func NewPredictionHandler(store services.PredictionService) *PredictionHandler {
	return &PredictionHandler{store: store}
}

type SavePredictionRequest struct {
	Quote     *models.AssetQuote     `json:"quote"`
	Forecast  *models.ForecastResult `json:"forecast"`
	Timeframe models.Timeframe       `json:"timeframe"`
}

type UpdateStatusRequest struct {
	Status models.PredictionStatus `json:"status"`
}

// storeFor scopes the store to the signed-in user.
func (h *PredictionHandler) storeFor(r *http.Request) services.PredictionService {
	if s := SessionFromContext(r.Context()); s != nil && s.User != nil {
		return h.store.ForOwner(s.User.ID)
	}
	return h.store
}

// /api/predictions
// @Summary List or save predictions
// @Description GET lists the caller's predictions newest first. POST saves a forecast as a new active prediction.
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SavePredictionRequest false "Prediction to save (POST)"
// @Success 200 {array} models.SavedPrediction
// @Success 201 {object} models.SavedPrediction
// @Failure 400 {string} string "Bad request"
// @Failure 401 {string} string "Unauthorized"
// @Router /predictions [get]
// @Router /predictions [post]
func (h *PredictionHandler) HandlePredictions(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(r)
	switch r.Method {
	case http.MethodGet:
		list, err := store.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req SavePredictionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Timeframe == "" {
			req.Timeframe = models.Timeframe7D
		}
		saved, err := store.Save(r.Context(), req.Quote, req.Forecast, req.Timeframe)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// /api/predictions/{id}
// @Summary Get, update or delete one prediction
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prediction ID"
// @Param request body UpdateStatusRequest false "New status (PATCH)"
// @Success 200 {object} models.SavedPrediction
// @Success 204 {string} string "Deleted"
// @Failure 404 {string} string "Not found"
// @Router /predictions/{id} [get]
// @Router /predictions/{id} [patch]
// @Router /predictions/{id} [delete]
func (h *PredictionHandler) HandlePrediction(w http.ResponseWriter, r *http.Request) {
	store := h.storeFor(r)
	id := mux.Vars(r)["id"]

	switch r.Method {
	case http.MethodGet:
		p, err := store.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if p == nil {
			http.Error(w, "Prediction not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPatch:
		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		p, err := store.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			writeError(w, err)
			return
		}
		if p == nil {
			http.Error(w, "Prediction not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		removed, err := store.Delete(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if !removed {
			http.Error(w, "Prediction not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GET /api/predictions/summary
// @Summary Dashboard counters for the caller's predictions
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PredictionSummary
// @Router /predictions/summary [get]
func (h *PredictionHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sum, err := h.storeFor(r).Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// POST /api/predictions/seed
// @Summary Seed demo predictions when the caller has none
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SavedPrediction
// @Router /predictions/seed [post]
func (h *PredictionHandler) HandleSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	store := h.storeFor(r)
	if err := store.SeedDemoData(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	list, err := store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
