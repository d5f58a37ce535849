package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ariebrainware/tripwire/metrics"
	"github.com/ariebrainware/tripwire/model"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// Provider names accepted by NewModel.
const (
	ProviderMock     = "mock"
	ProviderOpenAI   = "openai"
	ProviderGoogleAI = "googleai"
)

// NewModel builds a langchaingo model for provider.
func NewModel(ctx context.Context, provider, apiKey, modelName string) (llms.Model, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		opts := []openai.Option{openai.WithToken(apiKey)}
		if modelName != "" {
			opts = append(opts, openai.WithModel(modelName))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, err
		}
		return llm, nil
	case ProviderGoogleAI:
		opts := []googleai.Option{googleai.WithAPIKey(apiKey)}
		if modelName != "" {
			opts = append(opts, googleai.WithDefaultModel(modelName))
		}
		llm, err := googleai.New(ctx, opts...)
		if err != nil {
			return nil, err
		}
		return llm, nil
	}
	return nil, fmt.Errorf("unsupported generator provider %q", provider)
}

// LLMConfig configures an LLM generator.
type LLMConfig struct {
	Timeout          time.Duration
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// LLM asks a language model for deceptive URLs through a circuit breaker.
type LLM struct {
	model   llms.Model
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[string]
}

func NewLLM(m llms.Model, cfg LLMConfig) *LLM {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	threshold := cfg.FailureThreshold
	return &LLM{
		model:   m,
		timeout: cfg.Timeout,
		breaker: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name:        "deception-llm",
			MaxRequests: 1,
			Timeout:     cfg.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("generator circuit breaker state changed")
			},
		}),
	}
}

func (g *LLM) Generate(ctx context.Context, prompt string) ([]string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	raw, err := g.breaker.Execute(func() (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		return llms.GenerateFromSinglePrompt(callCtx, g.model, BuildPrompt(prompt), llms.WithJSONMode())
	})
	if err != nil {
		metrics.GeneratorRequests.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("%w: %w", model.ErrGenerationFailed, err)
	}

	urls, err := ParseURLs(raw)
	if err != nil {
		metrics.GeneratorRequests.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	metrics.GeneratorRequests.WithLabelValues(metrics.ResultSuccess).Inc()
	return urls, nil
}
