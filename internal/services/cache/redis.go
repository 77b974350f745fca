package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hinglish-techbot-go/internal/config"
	"github.com/hinglish-techbot-go/internal/models"
	"github.com/sirupsen/logrus"
)

// RedisCache shares answers between replicas through Redis.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *logrus.Logger
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg config.RedisConfig, ttl time.Duration, logger *logrus.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithField("addr", cfg.Addr).Info("Connected to Redis cache")

	return &RedisCache{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (r *RedisCache) key(question, personality string) string {
	return r.prefix + generateKey(question, personality)
}

// Get retrieves a cached answer. Redis errors count as a miss.
func (r *RedisCache) Get(ctx context.Context, question, personality string) (string, bool) {
	data, err := r.client.Get(ctx, r.key(question, personality)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		r.logger.WithError(err).Warn("Redis cache read failed")
		return "", false
	}

	var entry models.CacheEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		r.logger.WithError(err).Warn("Discarding corrupt cache entry")
		return "", false
	}

	return entry.Answer, true
}

// Set stores an answer with the configured TTL.
func (r *RedisCache) Set(ctx context.Context, question, personality, answer string) error {
	data, err := json.Marshal(&models.CacheEntry{
		Question:    question,
		Personality: personality,
		Answer:      answer,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(question, personality), data, r.ttl).Err()
}

// Clear deletes every key under the cache prefix.
func (r *RedisCache) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	r.logger.Info("Cache cleared")
	return nil
}

// Close releases the Redis connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
