package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

func TestPriceGenerator_ForwardScripted(t *testing.T) {
	// trend up, volatility 2%, then +0.5 and 0.0 perturbations
	rng := &scriptedRand{floats: []float64{0.5, 0.5, 0.9, 0.4}}
	g := NewPriceGenerator(rng, fixedClock)

	points, err := g.Forward(decimal.NewFromInt(100), 2)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-03-15", points[0].Date)
	assert.Equal(t, "2024-03-16", points[1].Date)
	assert.Equal(t, "2024-03-17", points[2].Date)
	assert.True(t, points[0].Price.Equal(decimal.NewFromInt(100)), points[0].Price.String())
	assert.True(t, points[1].Price.Equal(decimal.NewFromInt(101)), points[1].Price.String())
	assert.True(t, points[2].Price.Equal(decimal.NewFromInt(101)), points[2].Price.String())
}

func TestPriceGenerator_BackwardEndsToday(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.5, 0.5, 0.9, 0.4}}
	g := NewPriceGenerator(rng, fixedClock)

	points, err := g.Backward(decimal.RequireFromString("175.34"), 2)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-03-13", points[0].Date)
	assert.Equal(t, "2024-03-14", points[1].Date)
	assert.Equal(t, "2024-03-15", points[2].Date)
	assert.True(t, points[2].Price.Equal(decimal.RequireFromString("175.34")))
}

func TestPriceGenerator_ZeroDays(t *testing.T) {
	g := NewPriceGenerator(rand.New(rand.NewSource(1)), fixedClock)

	for _, walk := range []func(decimal.Decimal, int) ([]models.PricePoint, error){g.Forward, g.Backward} {
		points, err := walk(decimal.RequireFromString("42.50"), 0)
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, "2024-03-15", points[0].Date)
		assert.True(t, points[0].Price.Equal(decimal.RequireFromString("42.50")))
	}
}

func TestPriceGenerator_ClampsAtFloor(t *testing.T) {
	// trend down with maximum volatility
	rng := &scriptedRand{floats: []float64{0.0, 0.99, 0.99}}
	g := NewPriceGenerator(rng, fixedClock)

	points, err := g.Forward(decimal.RequireFromString("0.01"), 10)
	require.NoError(t, err)
	for _, p := range points {
		assert.True(t, p.Price.Equal(decimal.RequireFromString("0.01")), p.Price.String())
	}
}

func TestPriceGenerator_InvalidInput(t *testing.T) {
	g := NewPriceGenerator(rand.New(rand.NewSource(1)), fixedClock)

	_, err := g.Forward(decimal.NewFromInt(100), -1)
	require.True(t, apperrors.IsValidation(err))

	_, err = g.Backward(decimal.Zero, 5)
	require.True(t, apperrors.IsValidation(err))

	_, err = g.Forward(decimal.NewFromInt(-3), 5)
	require.True(t, apperrors.IsValidation(err))
}

func TestPriceGenerator_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewPriceGenerator(rng, fixedClock)
		days := rng.Intn(120)
		p0 := decimal.NewFromFloat(0.5 + rng.Float64()*500).Round(2)

		fwd, err := g.Forward(p0, days)
		require.NoError(t, err)
		back, err := g.Backward(p0, days)
		require.NoError(t, err)

		for _, series := range [][]models.PricePoint{fwd, back} {
			require.Len(t, series, days+1)
			for i, p := range series {
				require.True(t, p.Price.IsPositive(), "seed %d point %d", seed, i)
				require.True(t, p.Price.Equal(p.Price.Round(2)), "two decimals")
				if i > 0 {
					prev, _ := time.Parse(models.DateLayout, series[i-1].Date)
					cur, _ := time.Parse(models.DateLayout, p.Date)
					require.Equal(t, 24*time.Hour, cur.Sub(prev), "seed %d point %d", seed, i)
				}
			}
		}
		assert.Equal(t, "2024-03-15", fwd[0].Date)
		assert.Equal(t, "2024-03-15", back[len(back)-1].Date)
	}
}
