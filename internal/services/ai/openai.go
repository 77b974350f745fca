package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hinglish-techbot-go/internal/config"
	"github.com/sirupsen/logrus"
)

// OpenAIGenerator talks to any OpenAI-compatible chat completions endpoint.
type OpenAIGenerator struct {
	baseURL     string
	apiKey      string
	model       string
	maxAttempts int
	backoff     time.Duration
	httpClient  *http.Client
	logger      *logrus.Logger
}

// errClient marks responses that must not be retried.
var errClient = errors.New("client error")

// NewOpenAIGenerator creates a generator for cfg.BaseURL.
func NewOpenAIGenerator(cfg *config.ModelConfig, logger *logrus.Logger) *OpenAIGenerator {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	logger.WithFields(logrus.Fields{
		"baseURL": cfg.BaseURL,
		"model":   cfg.Name,
	}).Info("Loading OpenAI-compatible endpoint")

	return &OpenAIGenerator{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Name,
		maxAttempts: attempts,
		backoff:     2 * time.Second,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (g *OpenAIGenerator) Name() string {
	return g.model
}

// Generate sends the prompt, retrying server-side failures with
// exponential backoff while the context allows.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		response, err := g.generateOnce(ctx, prompt, opts, attempt)
		if err == nil {
			return response, nil
		}

		lastErr = err
		if errors.Is(err, errClient) {
			break
		}

		g.logger.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
			"model":   g.model,
		}).Warn("Model request failed")

		if attempt < g.maxAttempts {
			// 2s, 4s, 8s...
			waitTime := g.backoff << uint(attempt-1)
			select {
			case <-ctx.Done():
				return "", &ModelError{Kind: KindCallFailed, Err: ctx.Err()}
			case <-time.After(waitTime):
			}
		}
	}

	return "", &ModelError{Kind: KindCallFailed, Err: fmt.Errorf("all %d attempts failed: %w", g.maxAttempts, lastErr)}
}

func (g *OpenAIGenerator) generateOnce(ctx context.Context, prompt string, opts GenerationOptions, attempt int) (string, error) {
	reqBody := map[string]interface{}{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  opts.MaxTokens,
		"temperature": opts.Temperature,
		"top_p":       opts.TopP,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := g.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	g.logger.WithFields(logrus.Fields{
		"model":   g.model,
		"url":     url,
		"attempt": attempt,
	}).Debug("Sending model request")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return "", fmt.Errorf("%w: status %d: %s", errClient, resp.StatusCode, string(body))
		}
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("model error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return result.Choices[0].Message.Content, nil
}
