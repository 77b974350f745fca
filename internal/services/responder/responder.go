package responder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hinglish-techbot-go/internal/config"
	"github.com/hinglish-techbot-go/internal/middleware"
	"github.com/hinglish-techbot-go/internal/models"
	"github.com/hinglish-techbot-go/internal/services/ai"
	"github.com/hinglish-techbot-go/internal/services/cache"
	"github.com/hinglish-techbot-go/internal/services/heuristic"
	"github.com/hinglish-techbot-go/internal/services/knowledge"
	"github.com/hinglish-techbot-go/internal/services/personality"
	"github.com/sirupsen/logrus"
)

// Model answers a message in a tone. *ai.Adapter implements it.
type Model interface {
	Generate(ctx context.Context, message, tone string) (string, error)
	Name() string
}

// Responder resolves a chat message into a reply by trying, in order, the
// model (behind the answer cache), the heuristic classifier, the knowledge
// base and a closing reply. It never fails.
type Responder struct {
	model              Model
	knowledge          *knowledge.Base
	cache              cache.Service
	metrics            *middleware.Metrics
	closing            string
	defaultPersonality models.Personality
	logger             *logrus.Logger
}

// NewResponder wires the strategies together. model and answers may be nil;
// kb defaults to the built-in knowledge base. A model that reports itself
// unconfigured is dropped, so the answer cache is never consulted for it.
func NewResponder(cfg *config.Config, model Model, kb *knowledge.Base, answers cache.Service, metrics *middleware.Metrics, logger *logrus.Logger) *Responder {
	if c, ok := model.(interface{ Configured() bool }); ok && !c.Configured() {
		model = nil
	}
	if kb == nil {
		kb = knowledge.Default()
	}
	if answers == nil {
		answers = cache.Disabled{}
	}
	return &Responder{
		model:              model,
		knowledge:          kb,
		cache:              answers,
		metrics:            metrics,
		closing:            cfg.Responder.Closing,
		defaultPersonality: models.ParsePersonality(cfg.Responder.DefaultPersonality),
		logger:             logger,
	}
}

// Resolve produces a personality-formatted reply for message. The returned
// text is never empty.
func (r *Responder) Resolve(ctx context.Context, message string, p models.Personality) (reply models.Reply) {
	start := time.Now()
	if p == "" {
		p = r.defaultPersonality
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.WithFields(logrus.Fields{
				"panic":       fmt.Sprint(rec),
				"personality": p,
			}).Error("Recovered from panic while resolving reply")
			reply = models.Reply{Text: personality.Format(Acknowledge(message), p), Source: models.SourceClosing}
		}
		reply.GeneratedAt = time.Now()
		r.metrics.RecordReply(string(reply.Source), time.Since(start))
	}()

	text, source := r.resolve(ctx, message, p)

	formatted := personality.Format(text, p)
	if formatted == "" {
		// Formatting can strip an emoji-only answer down to nothing.
		formatted, source = personality.Format(Acknowledge(message), p), models.SourceClosing
	}

	r.logger.WithFields(logrus.Fields{
		"source":      source,
		"personality": p,
	}).Debug("Reply resolved")

	return models.Reply{Text: formatted, Source: source}
}

func (r *Responder) resolve(ctx context.Context, message string, p models.Personality) (string, models.Source) {
	if strings.TrimSpace(message) == "" {
		return r.closingText(message), models.SourceClosing
	}

	if text, source, ok := r.fromModel(ctx, message, p); ok {
		return text, source
	}

	if answer, ok := heuristic.Respond(message); ok {
		r.logger.WithFields(logrus.Fields{
			"intent": answer.Intent,
			"topic":  answer.Topic,
		}).Debug("Heuristic matched")
		return answer.Text, models.SourceHeuristic
	}

	if match, ok := r.knowledge.Lookup(message); ok {
		r.logger.WithFields(logrus.Fields{
			"topic":    match.Topic,
			"subtopic": match.SubTopic,
		}).Debug("Knowledge base matched")
		return match.Text, models.SourceKnowledge
	}

	return r.closingText(message), models.SourceClosing
}

func (r *Responder) fromModel(ctx context.Context, message string, p models.Personality) (string, models.Source, bool) {
	if r.model == nil {
		return "", "", false
	}

	if cached, ok := r.cache.Get(ctx, message, string(p)); ok {
		r.metrics.RecordCacheHit()
		return cached, models.SourceCache, true
	}
	r.metrics.RecordCacheMiss()

	start := time.Now()
	text, err := r.model.Generate(ctx, message, p.Style().Tone)
	if err != nil {
		r.logModelFailure(err)
		if !errors.Is(err, ai.ErrNotConfigured) {
			r.metrics.RecordModelRequest(r.model.Name(), ai.KindOf(err).String(), time.Since(start))
		}
		return "", "", false
	}
	r.metrics.RecordModelRequest(r.model.Name(), "success", time.Since(start))

	if err := r.cache.Set(ctx, message, string(p), text); err != nil {
		r.logger.WithError(err).Warn("Failed to cache model answer")
	}
	return text, models.SourceModel, true
}

func (r *Responder) logModelFailure(err error) {
	entry := r.logger.WithFields(logrus.Fields{
		"model": r.model.Name(),
		"error": err.Error(),
	})

	switch ai.KindOf(err) {
	case ai.KindUnavailable:
		entry.Debug("Model unavailable, falling back")
	case ai.KindCallFailed:
		entry.Warn("Model call failed, falling back")
	default:
		entry.Error("Unexpected model error, falling back")
	}
}

func (r *Responder) closingText(message string) string {
	if r.closing == config.ClosingHeuristic {
		return heuristic.Closing(message)
	}
	return Acknowledge(message)
}
