package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
	"github.com/designertech992/stocks-forecast/internal/repositories"
)

// PredictionsKey is the storage key for predictions without an owner.
const PredictionsKey = "predictions"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

type predictionService struct {
	kv     repositories.KVStore
	key    string
	mu     *sync.Mutex
	now    func() time.Time
	newID  func() string
	logger *zap.Logger
}

// NewPredictionService stores predictions as one JSON array per key, newest first.
func NewPredictionService(kv repositories.KVStore, now func() time.Time, logger *zap.Logger) PredictionService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &predictionService{
		kv:     kv,
		key:    PredictionsKey,
		mu:     &sync.Mutex{},
		now:    now,
		newID:  uuid.NewString,
		logger: logger,
	}
}

// ForOwner returns a view over the owner's own list. Views share the lock.
func (s *predictionService) ForOwner(owner string) PredictionService {
	view := *s
	view.key = PredictionsKey
	if owner = strings.TrimSpace(owner); owner != "" {
		view.key = PredictionsKey + ":" + owner
	}
	return &view
}

func (s *predictionService) List(ctx context.Context) ([]*models.SavedPrediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		s.logger.Error("failed to read predictions", zap.String("key", s.key), zap.Error(err))
		return []*models.SavedPrediction{}, nil
	}
	return list, nil
}

func (s *predictionService) Save(ctx context.Context, quote *models.AssetQuote, forecast *models.ForecastResult, timeframe models.Timeframe) (*models.SavedPrediction, error) {
	if quote == nil {
		return nil, apperrors.NewValidation("quote", "is required")
	}
	if !quote.Price.IsPositive() {
		return nil, apperrors.NewValidation("quote.price", "must be positive")
	}
	predicted, ok := forecast.LastPrice()
	if !ok {
		return nil, apperrors.NewValidation("forecast.predictedPrices", "must not be empty")
	}

	p := &models.SavedPrediction{
		ID:                s.newID(),
		Symbol:            quote.Symbol,
		Name:              quote.Name,
		CreatedAt:         s.now().UTC(),
		Timeframe:         timeframe,
		StartPrice:        quote.Price,
		CurrentPrice:      quote.Price,
		PredictedPrice:    predicted,
		Change:            predicted.Div(quote.Price).Sub(one).Mul(hundred),
		Status:            models.PredictionStatusActive,
		Confidence:        forecast.Confidence,
		Explanation:       forecast.Explanation,
		FactorsConsidered: append([]string(nil), forecast.FactorsConsidered...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, append([]*models.SavedPrediction{p}, list...)); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStatus returns nil, nil when no prediction has the id.
func (s *predictionService) UpdateStatus(ctx context.Context, id string, status models.PredictionStatus) (*models.SavedPrediction, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidation("status", "must be one of active, completed, failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID != id {
			continue
		}
		p.Status = status
		if err := s.store(ctx, list); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, nil
}

func (s *predictionService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]*models.SavedPrediction, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	if err := s.store(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// GetByID returns nil, nil when no prediction has the id.
func (s *predictionService) GetByID(ctx context.Context, id string) (*models.SavedPrediction, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// SeedDemoData writes the demo fixtures only when the list is empty.
func (s *predictionService) SeedDemoData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	if len(list) > 0 {
		return nil
	}
	s.logger.Info("seeding demo predictions", zap.String("key", s.key))
	return s.store(ctx, demoPredictions(s.now()))
}

func (s *predictionService) Summary(ctx context.Context) (*models.PredictionSummary, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	sum := &models.PredictionSummary{Total: len(list), AverageConfidence: decimal.Zero}
	total := 0
	for _, p := range list {
		switch p.Status {
		case models.PredictionStatusActive:
			sum.Active++
		case models.PredictionStatusCompleted:
			sum.Completed++
		case models.PredictionStatusFailed:
			sum.Failed++
		}
		total += p.Confidence
	}
	if len(list) > 0 {
		sum.AverageConfidence = decimal.NewFromInt(int64(total)).
			Div(decimal.NewFromInt(int64(len(list)))).Round(2)
	}
	return sum, nil
}

// load reads the stored list. A malformed blob reads as an empty list; only
// a failing KV read is an error.
func (s *predictionService) load(ctx context.Context) ([]*models.SavedPrediction, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read predictions: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return []*models.SavedPrediction{}, nil
	}

	var list []*models.SavedPrediction
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Warn("stored predictions are malformed, treating as empty",
			zap.String("key", s.key), zap.Error(err))
		return []*models.SavedPrediction{}, nil
	}

	out := make([]*models.SavedPrediction, 0, len(list))
	for _, p := range list {
		if p == nil || p.ID == "" {
			s.logger.Warn("dropping stored prediction without id", zap.String("key", s.key))
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *predictionService) store(ctx context.Context, list []*models.SavedPrediction) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode predictions: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("write predictions: %w", err)
	}
	return nil
}
