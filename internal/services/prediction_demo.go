package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/designertech992/stocks-forecast/internal/models"
)

const day = 24 * time.Hour

func demoPredictions(now time.Time) []*models.SavedPrediction {
	now = now.UTC()
	d := decimal.RequireFromString
	return []*models.SavedPrediction{
		{
			ID:                "demo-1",
			Symbol:            "AAPL",
			Name:              "Apple Inc.",
			CreatedAt:         now.Add(-7 * day),
			Timeframe:         models.Timeframe7D,
			StartPrice:        d("175.34"),
			CurrentPrice:      d("182.56"),
			PredictedPrice:    d("184.12"),
			Change:            d("5.01"),
			Status:            models.PredictionStatusActive,
			Confidence:        85,
			Explanation:       "AAPL shares are expected to rise on stable financial results and current market trends.",
			FactorsConsidered: []string{
				"Historical price movement data",
				"Market trend analysis and seasonality",
				"Recent positive financial reports for AAPL",
			},
		},
		{
			ID:                "demo-2",
			Symbol:            "MSFT",
			Name:              "Microsoft Corporation",
			CreatedAt:         now.Add(-10 * day),
			Timeframe:         models.Timeframe14D,
			StartPrice:        d("326.78"),
			CurrentPrice:      d("342.78"),
			PredictedPrice:    d("355.45"),
			Change:            d("8.77"),
			Status:            models.PredictionStatusActive,
			Confidence:        82,
			Explanation:       "MSFT shows upside potential on strong fundamentals and upcoming product releases.",
			FactorsConsidered: []string{
				"Historical price movement data",
				"Market trend analysis and seasonality",
				"Recent positive financial reports for MSFT",
			},
		},
		{
			ID:                "demo-3",
			Symbol:            "GOOGL",
			Name:              "Alphabet Inc.",
			CreatedAt:         now.Add(-25 * day),
			Timeframe:         models.Timeframe30D,
			StartPrice:        d("125.23"),
			CurrentPrice:      d("131.98"),
			PredictedPrice:    d("128.45"),
			Change:            d("-2.67"),
			Status:            models.PredictionStatusActive,
			Confidence:        75,
			Explanation:       "Historical data suggests GOOGL shares may decline somewhat over the selected period.",
			FactorsConsidered: []string{
				"Historical price movement data",
				"Market trend analysis and seasonality",
				"Rumors of a possible revenue decline for GOOGL",
			},
		},
		{
			ID:                "demo-4",
			Symbol:            "AMZN",
			Name:              "Amazon.com Inc.",
			CreatedAt:         now.Add(-45 * day),
			Timeframe:         models.Timeframe30D,
			StartPrice:        d("178.35"),
			CurrentPrice:      d("184.56"),
			PredictedPrice:    d("195.23"),
			Change:            d("9.46"),
			Status:            models.PredictionStatusCompleted,
			Confidence:        88,
			Explanation:       "The forecast rests on strong company results and growth of the e-commerce sector.",
			FactorsConsidered: []string{
				"Historical price movement data",
				"Market trend analysis and seasonality",
				"Overall growth of the relevant market sector",
			},
		},
	}
}
