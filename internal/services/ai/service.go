package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hinglish-techbot-go/internal/config"
	"github.com/sirupsen/logrus"
)

// Generator is a remote generative-language model.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
	Name() string
}

// GenerationOptions are the sampling parameters sent with every prompt.
type GenerationOptions struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// Kind classifies a model failure.
type Kind int

const (
	// KindUnavailable means no call was attempted: the model is not
	// configured, the client could not be built or the call budget is spent.
	KindUnavailable Kind = iota + 1
	// KindCallFailed means a call was attempted and did not produce text.
	KindCallFailed
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindCallFailed:
		return "call_failed"
	default:
		return "unknown"
	}
}

// ModelError is the only error type returned by Adapter.Generate.
type ModelError struct {
	Kind Kind
	Err  error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model %s: %v", e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

var (
	ErrNotConfigured   = errors.New("model not configured")
	ErrEmptyResponse   = errors.New("empty response from model")
	ErrBudgetExhausted = errors.New("model call budget exhausted")
)

// KindOf returns the kind of a model error, or 0 for other errors.
func KindOf(err error) Kind {
	var me *ModelError
	if errors.As(err, &me) {
		return me.Kind
	}
	return 0
}

// Adapter turns a message and tone into a prompt, runs it against the
// configured generator under a timeout and normalises every failure into a
// *ModelError.
type Adapter struct {
	generator Generator
	opts      GenerationOptions
	timeout   time.Duration
	logger    *logrus.Logger
}

// NewAdapter creates an adapter. A nil generator yields an adapter whose
// every call fails with KindUnavailable.
func NewAdapter(generator Generator, cfg *config.ModelConfig, logger *logrus.Logger) *Adapter {
	return &Adapter{
		generator: generator,
		opts: GenerationOptions{
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
			MaxTokens:   cfg.MaxTokens,
		},
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Configured reports whether a generator is wired in.
func (a *Adapter) Configured() bool {
	return a.generator != nil
}

// Name returns the generator name, or "none".
func (a *Adapter) Name() string {
	if a.generator == nil {
		return "none"
	}
	return a.generator.Name()
}

// Generate asks the model to answer message in the given tone.
func (a *Adapter) Generate(ctx context.Context, message, tone string) (text string, err error) {
	if a.generator == nil {
		return "", &ModelError{Kind: KindUnavailable, Err: ErrNotConfigured}
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ModelError{Kind: KindCallFailed, Err: fmt.Errorf("generator panic: %v", r)}
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	a.logger.WithFields(logrus.Fields{
		"model":   a.generator.Name(),
		"tone":    tone,
		"timeout": a.timeout,
	}).Debug("Sending prompt to model")

	out, err := a.generator.Generate(callCtx, BuildPrompt(message, tone), a.opts)
	if err != nil {
		var me *ModelError
		if errors.As(err, &me) {
			return "", me
		}
		return "", &ModelError{Kind: KindCallFailed, Err: err}
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", &ModelError{Kind: KindCallFailed, Err: ErrEmptyResponse}
	}
	return out, nil
}

// BuildPrompt builds the instruction block sent to the model.
func BuildPrompt(message, tone string) string {
	var b strings.Builder
	b.WriteString("You are an expert tech assistant who specializes in programming, web development, machine learning, and AI.\n")
	fmt.Fprintf(&b, "Your tone should be: %s\n", tone)
	b.WriteString("Important instructions:\n")
	b.WriteString("- Respond in Hindi-English mix (Hinglish) style\n")
	b.WriteString("- Provide detailed, informative, and helpful answers\n")
	b.WriteString("- Give practical examples and tips when relevant\n")
	b.WriteString("- Be conversational but professional\n")
	b.WriteString("- Add relevant emojis based on the personality (3-4 max)\n")
	b.WriteString("- Keep responses clear and well-structured\n")
	b.WriteString("- If appropriate, break down complex topics into simple parts\n\n")
	fmt.Fprintf(&b, "User message: %s\n\n", message)
	b.WriteString("Provide a comprehensive and helpful response:")
	return b.String()
}

// NewGenerator builds the generator named by cfg.Provider. It returns nil
// when the model is disabled or has no API key; that is not an error.
func NewGenerator(cfg *config.ModelConfig, logger *logrus.Logger) Generator {
	var g Generator
	switch cfg.Provider {
	case "gemini":
		if cfg.APIKey == "" {
			logger.Warn("No model API key configured, model strategy disabled")
			return nil
		}
		models := append([]string{cfg.Name}, cfg.FallbackModels...)
		g = NewGeminiGenerator(cfg.APIKey, models, cfg.Timeout, logger)
	case "openai":
		g = NewOpenAIGenerator(cfg, logger)
	default:
		logger.WithField("provider", cfg.Provider).Info("Model strategy disabled")
		return nil
	}

	if cfg.RequestsPerMinute > 0 {
		g = NewThrottle(g, cfg.RequestsPerMinute, cfg.Burst, logger)
	}

	logger.WithFields(logrus.Fields{
		"provider": cfg.Provider,
		"model":    g.Name(),
	}).Info("Model strategy configured")
	return g
}
