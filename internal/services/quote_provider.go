package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

// QuoteProvider serves quotes from a live source, or from the mock source when
// mock mode is on. A failed live lookup is replaced by mock data and reported
// in the result.
type QuoteProvider struct {
	useMock bool
	mock    *MockQuoteSource
	live    QuoteSource
	logger  *zap.Logger
}

// NewQuoteProvider fixes the mode at construction. live may be nil in mock mode.
func NewQuoteProvider(useMock bool, mock *MockQuoteSource, live QuoteSource, logger *zap.Logger) *QuoteProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if live == nil {
		useMock = true
	}
	return &QuoteProvider{useMock: useMock, mock: mock, live: live, logger: logger}
}

func (p *QuoteProvider) UsesMock() bool { return p.useMock }

func (p *QuoteProvider) GetQuote(ctx context.Context, symbol string) (*models.QuoteResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, apperrors.NewValidation("symbol", "is required")
	}

	if p.useMock {
		p.logger.Debug("serving mock quote", zap.String("symbol", symbol))
		q, err := p.mock.GetQuote(ctx, symbol)
		if err != nil {
			return nil, err
		}
		return &models.QuoteResult{Quote: q, Source: p.mock.Name()}, nil
	}

	q, liveErr := p.live.GetQuote(ctx, symbol)
	if liveErr == nil {
		return &models.QuoteResult{Quote: q, Source: p.live.Name()}, nil
	}

	p.logger.Warn("live quote failed, using mock data",
		zap.String("symbol", symbol),
		zap.String("source", p.live.Name()),
		zap.Error(liveErr))
	q, err := p.mock.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return &models.QuoteResult{
		Quote:          q,
		Source:         p.mock.Name(),
		Fallback:       true,
		FallbackReason: liveErr.Error(),
	}, nil
}

// GetQuotes looks up each symbol in order, skipping blanks and duplicates.
func (p *QuoteProvider) GetQuotes(ctx context.Context, symbols []string) ([]*models.QuoteResult, error) {
	seen := make(map[string]struct{}, len(symbols))
	results := make([]*models.QuoteResult, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}

		r, err := p.GetQuote(ctx, s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Search never fails on a live error; it logs and returns no matches.
func (p *QuoteProvider) Search(ctx context.Context, query string) ([]models.SymbolMatch, error) {
	if p.useMock {
		return p.mock.Search(ctx, query)
	}
	matches, err := p.live.Search(ctx, query)
	if err != nil {
		p.logger.Warn("symbol search failed", zap.String("query", query), zap.Error(err))
		return []models.SymbolMatch{}, nil
	}
	return matches, nil
}
