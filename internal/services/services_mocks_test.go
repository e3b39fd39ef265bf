package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/designertech992/stocks-forecast/internal/models"
)

// ---- Fakes shared by the service unit tests ----

var testNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// scriptedRand replays fixed draws, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

type mockKV struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newMockKV() *mockKV { return &mockKV{data: map[string]string{}} }

func (m *mockKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.data[key], nil
}

func (m *mockKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.data[key] = value
	return nil
}

type fakeChatModel struct {
	content   string
	err       error
	calls     int
	lastInput []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.calls++
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.content, nil), nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported by fake")
}

type fakeQuoteSource struct {
	quote     *models.AssetQuote
	err       error
	matches   []models.SymbolMatch
	searchErr error
	calls     int
}

func (f *fakeQuoteSource) Name() string { return "fake" }

func (f *fakeQuoteSource) GetQuote(_ context.Context, _ string) (*models.AssetQuote, error) {
	f.calls++
	return f.quote, f.err
}

func (f *fakeQuoteSource) Search(_ context.Context, _ string) ([]models.SymbolMatch, error) {
	return f.matches, f.searchErr
}
