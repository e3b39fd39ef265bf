package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

func testQuote() *models.AssetQuote {
	return &models.AssetQuote{Symbol: "AAPL", Name: "Apple Inc.", Price: decimal.RequireFromString("200")}
}

func testForecast() *models.ForecastResult {
	return &models.ForecastResult{
		PredictedPrices: []models.PricePoint{
			{Date: "2024-03-15", Price: decimal.RequireFromString("200")},
			{Date: "2024-03-22", Price: decimal.RequireFromString("210")},
		},
		Explanation:       "Up.",
		Confidence:        77,
		FactorsConsidered: []string{"Historical price movement data"},
	}
}

func newTestPredictionService(kv *mockKV) *predictionService {
	svc := NewPredictionService(kv, fixedClock, nil).(*predictionService)
	n := 0
	svc.newID = func() string {
		n++
		return "pred-" + string(rune('0'+n))
	}
	return svc
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestPredictionService_SaveThenGet(t *testing.T) {
	svc := newTestPredictionService(newMockKV())
	ctx := context.Background()

	saved, err := svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.NoError(t, err)

	assert.Equal(t, "pred-1", saved.ID)
	assert.Equal(t, models.PredictionStatusActive, saved.Status)
	assert.True(t, saved.StartPrice.Equal(decimal.NewFromInt(200)))
	assert.True(t, saved.CurrentPrice.Equal(saved.StartPrice))
	assert.True(t, saved.PredictedPrice.Equal(decimal.NewFromInt(210)))
	assert.True(t, saved.Change.Equal(decimal.NewFromInt(5)), saved.Change.String())
	assert.Equal(t, testNow, saved.CreatedAt)
	assert.Equal(t, 77, saved.Confidence)

	got, err := svc.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, mustJSON(t, saved), mustJSON(t, got))
}

func TestPredictionService_SaveCopiesFactors(t *testing.T) {
	svc := newTestPredictionService(newMockKV())
	forecast := testForecast()

	saved, err := svc.Save(context.Background(), testQuote(), forecast, models.Timeframe7D)
	require.NoError(t, err)

	forecast.FactorsConsidered[0] = "changed later"
	assert.Equal(t, []string{"Historical price movement data"}, saved.FactorsConsidered)
}

func TestPredictionService_UsesUUIDByDefault(t *testing.T) {
	svc := NewPredictionService(newMockKV(), fixedClock, nil)
	saved, err := svc.Save(context.Background(), testQuote(), testForecast(), models.Timeframe7D)
	require.NoError(t, err)
	assert.Len(t, saved.ID, 36)
}

func TestPredictionService_ListIsNewestFirst(t *testing.T) {
	svc := newTestPredictionService(newMockKV())
	ctx := context.Background()

	first, err := svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.NoError(t, err)
	second, err := svc.Save(ctx, testQuote(), testForecast(), models.Timeframe30D)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2, "no dedup by symbol")
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestPredictionService_SaveValidation(t *testing.T) {
	svc := newTestPredictionService(newMockKV())
	ctx := context.Background()

	_, err := svc.Save(ctx, testQuote(), &models.ForecastResult{}, models.Timeframe7D)
	require.True(t, apperrors.IsValidation(err))

	zero := testQuote()
	zero.Price = decimal.Zero
	_, err = svc.Save(ctx, zero, testForecast(), models.Timeframe7D)
	require.True(t, apperrors.IsValidation(err))

	_, err = svc.Save(ctx, nil, testForecast(), models.Timeframe7D)
	require.True(t, apperrors.IsValidation(err))
}

func TestPredictionService_UpdateStatusChangesOnlyStatus(t *testing.T) {
	kv := newMockKV()
	svc := newTestPredictionService(kv)
	ctx := context.Background()

	saved, err := svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.NoError(t, err)
	before := mustJSON(t, saved)

	updated, err := svc.UpdateStatus(ctx, saved.ID, models.PredictionStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.PredictionStatusCompleted, updated.Status)

	updated.Status = models.PredictionStatusActive
	assert.JSONEq(t, before, mustJSON(t, updated))

	blob := kv.data[PredictionsKey]
	missing, err := svc.UpdateStatus(ctx, "does-not-exist", models.PredictionStatusFailed)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Equal(t, blob, kv.data[PredictionsKey], "unknown id leaves the store untouched")

	_, err = svc.UpdateStatus(ctx, saved.ID, "archived")
	require.True(t, apperrors.IsValidation(err))
}

func TestPredictionService_Delete(t *testing.T) {
	svc := newTestPredictionService(newMockKV())
	ctx := context.Background()

	a, err := svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.NoError(t, err)
	_, err = svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, removed)
	list, _ := svc.List(ctx)
	assert.Len(t, list, 2)

	removed, err = svc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	list, _ = svc.List(ctx)
	assert.Len(t, list, 1)

	got, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPredictionService_SeedDemoDataIsIdempotent(t *testing.T) {
	svc := newTestPredictionService(newMockKV())
	ctx := context.Background()

	require.NoError(t, svc.SeedDemoData(ctx))
	require.NoError(t, svc.SeedDemoData(ctx))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "demo-1", list[0].ID)
	assert.Equal(t, "demo-4", list[3].ID)
	assert.Equal(t, models.PredictionStatusCompleted, list[3].Status)
	assert.True(t, testNow.AddDate(0, 0, -45).Equal(list[3].CreatedAt))
	assert.True(t, list[2].Change.Equal(decimal.RequireFromString("-2.67")))
}

func TestPredictionService_SeedKeepsExistingData(t *testing.T) {
	svc := newTestPredictionService(newMockKV())
	ctx := context.Background()

	_, err := svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.NoError(t, err)
	require.NoError(t, svc.SeedDemoData(ctx))

	list, _ := svc.List(ctx)
	require.Len(t, list, 1)
}

func TestPredictionService_MalformedBlobListsEmpty(t *testing.T) {
	kv := newMockKV()
	kv.data[PredictionsKey] = `{not json`
	svc := newTestPredictionService(kv)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	kv.data[PredictionsKey] = `[{"id":""},null,{"id":"kept","symbol":"AAPL"}]`
	list, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "kept", list[0].ID)
}

func TestPredictionService_KVErrors(t *testing.T) {
	kv := newMockKV()
	svc := newTestPredictionService(kv)
	ctx := context.Background()

	kv.getErr = errors.New("disk gone")
	list, err := svc.List(ctx)
	require.NoError(t, err, "reads degrade to empty")
	assert.Empty(t, list)

	_, err = svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.Error(t, err, "writes never overwrite data they could not read")

	kv.getErr = nil
	kv.setErr = errors.New("read only")
	_, err = svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.Error(t, err)
}

func TestPredictionService_OwnersAreIsolated(t *testing.T) {
	kv := newMockKV()
	base := newTestPredictionService(kv)
	ctx := context.Background()

	alice := base.ForOwner("alice")
	_, err := alice.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
	require.NoError(t, err)

	list, _ := base.List(ctx)
	assert.Empty(t, list)
	list, _ = alice.List(ctx)
	assert.Len(t, list, 1)
	assert.Contains(t, kv.data, "predictions:alice")

	assert.Same(t, base.mu, alice.(*predictionService).mu)
}

func TestPredictionService_ConcurrentSavesAreNotLost(t *testing.T) {
	svc := NewPredictionService(newMockKV(), fixedClock, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Save(ctx, testQuote(), testForecast(), models.Timeframe7D)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestPredictionService_Summary(t *testing.T) {
	svc := newTestPredictionService(newMockKV())
	ctx := context.Background()

	empty, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.True(t, empty.AverageConfidence.IsZero())

	require.NoError(t, svc.SeedDemoData(ctx))
	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 3, sum.Active)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 0, sum.Failed)
	assert.True(t, sum.AverageConfidence.Equal(decimal.RequireFromString("82.5")), sum.AverageConfidence.String())
}
