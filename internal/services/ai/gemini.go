package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiGenerator calls the Gemini API. The client is built on first use,
// so a bad key never blocks startup.
type GeminiGenerator struct {
	apiKey     string
	models     []string
	httpClient *http.Client
	logger     *logrus.Logger

	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGeminiGenerator creates a generator that tries models in order, moving
// on only when a model name is rejected as not found.
func NewGeminiGenerator(apiKey string, models []string, timeout time.Duration, logger *logrus.Logger) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey:     apiKey,
		models:     models,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (g *GeminiGenerator) Name() string {
	if len(g.models) == 0 {
		return "gemini"
	}
	return g.models[0]
}

func (g *GeminiGenerator) getClient() (*genai.Client, error) {
	g.once.Do(func() {
		if g.apiKey == "" {
			g.initErr = ErrNotConfigured
			return
		}
		if len(g.models) == 0 {
			g.initErr = errors.New("no gemini model names configured")
			return
		}
		g.client, g.initErr = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:     g.apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: g.httpClient,
		})
		if g.initErr != nil {
			g.logger.WithError(g.initErr).Error("Failed to create Gemini client")
		}
	})
	return g.client, g.initErr
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	client, err := g.getClient()
	if err != nil {
		return "", &ModelError{Kind: KindUnavailable, Err: err}
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(opts.Temperature),
		TopP:        genai.Ptr(opts.TopP),
	}
	if opts.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(opts.MaxTokens)
	}

	var lastErr error
	for _, model := range g.models {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
		if err != nil {
			if isModelNotFound(err) {
				g.logger.WithField("model", model).Warn("Gemini model not found, trying next")
				lastErr = err
				continue
			}
			return "", &ModelError{Kind: KindCallFailed, Err: fmt.Errorf("gemini %s: %w", model, err)}
		}
		return resp.Text(), nil
	}

	return "", &ModelError{Kind: KindUnavailable, Err: fmt.Errorf("no usable gemini model: %w", lastErr)}
}

func isModelNotFound(err error) bool {
	var apiErr genai.APIError
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
