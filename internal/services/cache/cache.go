package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/hinglish-techbot-go/internal/config"
	"github.com/hinglish-techbot-go/internal/models"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Service stores model answers keyed by question and personality.
type Service interface {
	Get(ctx context.Context, question, personality string) (string, bool)
	Set(ctx context.Context, question, personality, answer string) error
	Clear(ctx context.Context) error
}

// NewCache creates the cache backend named by cfg.Cache.Type. A disabled
// cache is a no-op Service, never nil.
func NewCache(cfg *config.Config, logger *logrus.Logger) (Service, error) {
	if !cfg.Cache.Enabled {
		return Disabled{}, nil
	}

	switch cfg.Cache.Type {
	case "memory":
		return NewMemoryCache(cfg.Cache.TTL, cfg.Cache.MaxSize, logger), nil
	case "redis":
		return NewRedisCache(cfg.Cache.Redis, cfg.Cache.TTL, logger)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Cache.Type)
	}
}

// Disabled never stores anything.
type Disabled struct{}

func (Disabled) Get(context.Context, string, string) (string, bool) { return "", false }
func (Disabled) Set(context.Context, string, string, string) error  { return nil }
func (Disabled) Clear(context.Context) error                        { return nil }

// MemoryCache keeps answers in process memory.
type MemoryCache struct {
	cache   *cache.Cache
	logger  *logrus.Logger
	maxSize int
}

// NewMemoryCache creates an in-memory cache whose entries expire after ttl.
func NewMemoryCache(ttl time.Duration, maxSize int, logger *logrus.Logger) *MemoryCache {
	return &MemoryCache{
		cache:   cache.New(ttl, ttl*2),
		logger:  logger,
		maxSize: maxSize,
	}
}

// Get retrieves a cached answer
func (c *MemoryCache) Get(ctx context.Context, question, personality string) (string, bool) {
	key := generateKey(question, personality)
	if val, found := c.cache.Get(key); found {
		entry := val.(*models.CacheEntry)
		c.logger.WithFields(logrus.Fields{
			"personality": personality,
			"age":         time.Since(entry.CreatedAt),
		}).Debug("Cache hit")
		return entry.Answer, true
	}

	return "", false
}

// Set stores an answer in cache
func (c *MemoryCache) Set(ctx context.Context, question, personality, answer string) error {
	if c.maxSize > 0 && c.cache.ItemCount() >= c.maxSize {
		c.logger.Warn("Cache size limit reached, clearing old entries")
		c.cache.DeleteExpired()
		if c.cache.ItemCount() >= c.maxSize {
			return nil
		}
	}

	key := generateKey(question, personality)
	entry := &models.CacheEntry{
		Question:    question,
		Personality: personality,
		Answer:      answer,
		CreatedAt:   time.Now(),
	}

	c.cache.SetDefault(key, entry)
	c.logger.WithField("personality", personality).Debug("Answer cached")

	return nil
}

// Clear removes all cached entries
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.cache.Flush()
	c.logger.Info("Cache cleared")
	return nil
}

// generateKey hashes the normalised question so that casing and
// surrounding whitespace do not split entries.
func generateKey(question, personality string) string {
	data := fmt.Sprintf("%s:%s", personality, strings.ToLower(strings.TrimSpace(question)))
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
