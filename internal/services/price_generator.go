package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

const (
	upwardTrendThreshold = 0.3
	minVolatility        = 0.01
	volatilityBand       = 0.02
	stepBias             = 0.4
	priceFloor           = 0.01
)

// PriceGenerator builds random-walk price series around a seed price.
type PriceGenerator struct {
	rng RandSource
	now func() time.Time
}

// NewPriceGenerator wires the generator to a random source and a clock.
// A nil clock means time.Now.
func NewPriceGenerator(rng RandSource, now func() time.Time) *PriceGenerator {
	if now == nil {
		now = time.Now
	}
	return &PriceGenerator{rng: rng, now: now}
}

// Forward returns days+1 points starting at (today, p0), one calendar day apart.
func (g *PriceGenerator) Forward(p0 decimal.Decimal, days int) ([]models.PricePoint, error) {
	prices, err := g.walk(p0, days)
	if err != nil {
		return nil, err
	}
	today := g.today()
	points := make([]models.PricePoint, len(prices))
	for i, p := range prices {
		points[i] = models.PricePoint{Date: today.AddDate(0, 0, i).Format(models.DateLayout), Price: p}
	}
	return points, nil
}

// Backward returns days+1 points of synthetic history, oldest first, ending at (today, p0).
func (g *PriceGenerator) Backward(p0 decimal.Decimal, days int) ([]models.PricePoint, error) {
	prices, err := g.walk(p0, days)
	if err != nil {
		return nil, err
	}
	today := g.today()
	points := make([]models.PricePoint, len(prices))
	for i, p := range prices {
		points[len(prices)-1-i] = models.PricePoint{Date: today.AddDate(0, 0, -i).Format(models.DateLayout), Price: p}
	}
	return points, nil
}

func (g *PriceGenerator) walk(p0 decimal.Decimal, days int) ([]decimal.Decimal, error) {
	if days < 0 {
		return nil, apperrors.NewValidation("days", "must not be negative")
	}
	if !p0.IsPositive() {
		return nil, apperrors.NewValidation("price", "must be positive")
	}

	trend := -1.0
	if g.rng.Float64() > upwardTrendThreshold {
		trend = 1.0
	}
	volatility := minVolatility + g.rng.Float64()*volatilityBand

	out := make([]decimal.Decimal, 0, days+1)
	first := p0.Round(2)
	if !first.IsPositive() {
		first = decimal.NewFromFloat(priceFloor)
	}
	out = append(out, first)
	price := p0.InexactFloat64()
	for i := 1; i <= days; i++ {
		change := (g.rng.Float64() - stepBias) * volatility * price
		price = math.Max(price+change*trend, priceFloor)
		out = append(out, decimal.NewFromFloat(price).Round(2))
	}
	return out, nil
}

func (g *PriceGenerator) today() time.Time {
	y, m, d := g.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
