package ai

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Throttle caps the rate of outbound model calls for the whole process.
// Calls over budget fail fast with KindUnavailable instead of waiting.
type Throttle struct {
	next    Generator
	limiter *rate.Limiter
	logger  *logrus.Logger
}

// NewThrottle wraps next with a requestsPerMinute token bucket.
func NewThrottle(next Generator, requestsPerMinute, burst int, logger *logrus.Logger) *Throttle {
	if burst < 1 {
		burst = 1
	}
	// Rate per second = RPM / 60
	rps := float64(requestsPerMinute) / 60.0
	return &Throttle{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

func (t *Throttle) Name() string {
	return t.next.Name()
}

func (t *Throttle) Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	if !t.limiter.Allow() {
		t.logger.WithField("model", t.next.Name()).Warn("Model call budget exhausted")
		return "", &ModelError{Kind: KindUnavailable, Err: ErrBudgetExhausted}
	}
	return t.next.Generate(ctx, prompt, opts)
}
