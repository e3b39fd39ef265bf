package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PredictionStatus is the lifecycle state of a saved prediction.
type PredictionStatus string

const (
	PredictionStatusActive    PredictionStatus = "active"
	PredictionStatusCompleted PredictionStatus = "completed"
	PredictionStatusFailed    PredictionStatus = "failed"
)

func (s PredictionStatus) IsValid() bool {
	switch s {
	case PredictionStatusActive, PredictionStatusCompleted, PredictionStatusFailed:
		return true
	}
	return false
}

// SavedPrediction is a persisted forecast. Only Status changes after creation.
type SavedPrediction struct {
	ID                string           `json:"id"`
	Symbol            string           `json:"symbol"`
	Name              string           `json:"name"`
	CreatedAt         time.Time        `json:"createdAt"`
	Timeframe         Timeframe        `json:"timeframe"`
	StartPrice        decimal.Decimal  `json:"startPrice"`
	CurrentPrice      decimal.Decimal  `json:"currentPrice"`
	PredictedPrice    decimal.Decimal  `json:"predictedPrice"`
	Change            decimal.Decimal  `json:"change"`
	Status            PredictionStatus `json:"status"`
	Confidence        int              `json:"confidence"`
	Explanation       string           `json:"explanation,omitempty"`
	FactorsConsidered []string         `json:"factorsConsidered,omitempty"`
}

// PredictionSummary backs the dashboard counters.
type PredictionSummary struct {
	Total             int             `json:"total"`
	Active            int             `json:"active"`
	Completed         int             `json:"completed"`
	Failed            int             `json:"failed"`
	AverageConfidence decimal.Decimal `json:"averageConfidence"`
}
