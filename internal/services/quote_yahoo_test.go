package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
)

const yahooQuoteBody = `{"quoteResponse":{"result":[{"symbol":"AAPL","shortName":"Apple","longName":"Apple Inc.",
"regularMarketPrice":182.5,"regularMarketChange":1.234,"regularMarketChangePercent":0.678,
"regularMarketPreviousClose":181.27,"regularMarketOpen":181.5,"regularMarketDayHigh":183.1,
"regularMarketDayLow":180.9,"regularMarketVolume":1000,"marketCap":2800000000000}],"error":null}}`

const yahooChartBody = `{"chart":{"result":[{"meta":{"symbol":"AAPL"},
"timestamp":[1710201600,1710288000,1710374400],
"indicators":{"quote":[{"open":[1,1,1],"low":[1,1,1],"high":[1,1,1],"close":[170.1,171.2,172.3],"volume":[1,1,1]}],
"adjclose":[{"adjclose":[170.1,171.2,172.3]}]}}],"error":null}}`

// newYahooServer serves canned quote and chart payloads after delay. It
// counts requests and stops waiting when the client goes away.
func newYahooServer(t *testing.T, delay time.Duration) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/v6/finance/quote":
			fmt.Fprint(w, yahooQuoteBody)
		case strings.HasPrefix(r.URL.Path, "/v8/finance/chart/AAPL"):
			fmt.Fprint(w, yahooChartBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestYahooSource_GetQuote(t *testing.T) {
	srv, hits := newYahooServer(t, 0)
	s := NewYahooSource(srv.URL, time.Second, fixedClock)

	q, err := s.GetQuote(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, "Apple Inc.", q.Name)
	assert.Equal(t, "182.5", q.Price.String())
	assert.Equal(t, "1.23", q.Change.String())
	assert.Equal(t, "0.68", q.ChangePercent.String())
	assert.Equal(t, int64(1000), q.Volume)
	require.NotNil(t, q.MarketCap)
	assert.Equal(t, int64(2800000000000), *q.MarketCap)

	require.Len(t, q.HistoricalPrices, 3)
	assert.Equal(t, "2024-03-12", q.HistoricalPrices[0].Date)
	assert.Equal(t, "2024-03-14", q.HistoricalPrices[2].Date)
	assert.Equal(t, "172.3", q.HistoricalPrices[2].Price.String())
	assert.EqualValues(t, 2, atomic.LoadInt32(hits))
}

func TestYahooSource_ClientTimeout(t *testing.T) {
	srv, _ := newYahooServer(t, 2*time.Second)
	s := NewYahooSource(srv.URL, 100*time.Millisecond, fixedClock)

	start := time.Now()
	_, err := s.GetQuote(context.Background(), "AAPL")
	require.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Less(t, time.Since(start), time.Second)
}

func TestYahooSource_ContextDeadline(t *testing.T) {
	srv, _ := newYahooServer(t, 2*time.Second)
	s := NewYahooSource(srv.URL, 10*time.Second, fixedClock)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := s.GetQuote(ctx, "AAPL")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestYahooSource_CancelledBeforeCall(t *testing.T) {
	srv, hits := newYahooServer(t, 0)
	s := NewYahooSource(srv.URL, time.Second, fixedClock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetQuote(ctx, "AAPL")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestYahooSource_SearchUnsupported(t *testing.T) {
	s := NewYahooSource("", time.Second, fixedClock)
	assert.Equal(t, "yahoo", s.Name())
	_, err := s.Search(context.Background(), "apple")
	require.ErrorIs(t, err, apperrors.ErrUpstream)
}
