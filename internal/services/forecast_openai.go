package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	apperrors "github.com/designertech992/stocks-forecast/internal/errors"
	"github.com/designertech992/stocks-forecast/internal/models"
)

const forecastTemperature float32 = 0.5

const forecastSystemPrompt = "You are a financial analysis AI specializing in stock market forecasting."

const forecastUserPrompt = `You are a financial analysis AI specializing in stock market forecasting.

Asset: {{.name}} ({{.symbol}})
Current Price: ${{.current_price}}
Timeframe for forecast: {{.timeframe}}

Historical price data: {{.historical_prices}}

Please provide:
1. A realistic forecast of future prices based on available data
2. A detailed explanation of the factors that influenced your forecast
3. A confidence level in your prediction (between 0-100%)
4. The key factors considered in your analysis

Format the response as a valid JSON object with the following properties:
- predictedPrices: array of { date: string, price: number }
- explanation: string
- confidence: number
- factorsConsidered: array of strings`

// Greedy on purpose: first "{" to last "}".
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ChatModelFactory builds the completion collaborator on first use.
type ChatModelFactory func(ctx context.Context) (model.BaseChatModel, error)

// NewOpenAIChatModelFactory returns a factory for an OpenAI-compatible chat model.
// A missing API key is reported when the factory runs, not before.
func NewOpenAIChatModelFactory(apiKey, baseURL, modelName string) ChatModelFactory {
	return func(ctx context.Context) (model.BaseChatModel, error) {
		if strings.TrimSpace(apiKey) == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY must be set when mock mode is off", apperrors.ErrConfiguration)
		}
		temperature := forecastTemperature
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      apiKey,
			BaseURL:     baseURL,
			Model:       modelName,
			Temperature: &temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: create chat model: %v", apperrors.ErrConfiguration, err)
		}
		return chatModel, nil
	}
}

// LiveForecaster asks a chat completion model for a forecast.
type LiveForecaster struct {
	factory  ChatModelFactory
	template prompt.ChatTemplate
	timeout  time.Duration
	logger   *zap.Logger

	mu   sync.Mutex
	chat model.BaseChatModel
}

func NewLiveForecaster(factory ChatModelFactory, timeout time.Duration, logger *zap.Logger) *LiveForecaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiveForecaster{
		factory: factory,
		template: prompt.FromMessages(schema.GoTemplate,
			schema.SystemMessage(forecastSystemPrompt),
			schema.UserMessage(forecastUserPrompt),
		),
		timeout: timeout,
		logger:  logger,
	}
}

func (f *LiveForecaster) chatModel(ctx context.Context) (model.BaseChatModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.chat != nil {
		return f.chat, nil
	}
	chat, err := f.factory(ctx)
	if err != nil {
		return nil, err
	}
	f.chat = chat
	return chat, nil
}

func (f *LiveForecaster) Generate(ctx context.Context, asset models.ForecastAsset, timeframe models.Timeframe) (*models.ForecastResult, error) {
	chat, err := f.chatModel(ctx)
	if err != nil {
		return nil, err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	history := asset.HistoricalPrices
	if history == nil {
		history = []models.PricePoint{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}

	messages, err := f.template.Format(ctx, map[string]any{
		"name":              asset.Name,
		"symbol":            asset.Symbol,
		"current_price":     asset.CurrentPrice.String(),
		"timeframe":         string(timeframe),
		"historical_prices": string(historyJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("format forecast prompt: %w", err)
	}

	resp, err := chat.Generate(ctx, messages)
	if err != nil {
		f.logger.Error("forecast completion failed", zap.String("symbol", asset.Symbol), zap.Error(err))
		return nil, fmt.Errorf("%w: completion request: %v", apperrors.ErrUpstream, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return nil, fmt.Errorf("%w: no response content from completion API", apperrors.ErrUpstream)
	}

	result, err := ParseForecastContent(resp.Content)
	if err != nil {
		f.logger.Error("forecast response could not be parsed", zap.String("symbol", asset.Symbol), zap.Error(err))
		return nil, err
	}
	return result, nil
}

type rawForecast struct {
	PredictedPrices   []models.PricePoint `json:"predictedPrices"`
	Explanation       string              `json:"explanation"`
	Confidence        *float64            `json:"confidence"`
	FactorsConsidered []string            `json:"factorsConsidered"`
}

// ParseForecastContent extracts the embedded JSON object from a completion and decodes it.
func ParseForecastContent(content string) (*models.ForecastResult, error) {
	match := jsonObjectPattern.FindString(content)
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON object in completion", apperrors.ErrParse)
	}

	var raw rawForecast
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrParse, err)
	}
	if len(raw.PredictedPrices) == 0 {
		return nil, fmt.Errorf("%w: predictedPrices is empty", apperrors.ErrParse)
	}
	for i, p := range raw.PredictedPrices {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: predictedPrices[%d]: %v", apperrors.ErrParse, i, err)
		}
	}
	if raw.Confidence == nil {
		return nil, fmt.Errorf("%w: confidence is missing", apperrors.ErrParse)
	}
	confidence := math.Round(*raw.Confidence)
	if confidence < 0 || confidence > 100 {
		return nil, fmt.Errorf("%w: confidence %v outside 0-100", apperrors.ErrParse, *raw.Confidence)
	}

	return &models.ForecastResult{
		PredictedPrices:   raw.PredictedPrices,
		Explanation:       raw.Explanation,
		Confidence:        int(confidence),
		FactorsConsidered: uniqueFactors(raw.FactorsConsidered),
	}, nil
}

// uniqueFactors drops blank and repeated factors, keeping first occurrences.
func uniqueFactors(factors []string) []string {
	seen := make(map[string]struct{}, len(factors))
	out := make([]string, 0, len(factors))
	for _, f := range factors {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
