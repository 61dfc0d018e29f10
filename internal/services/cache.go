package services

import (
	"encoding/json"
	"time"

	"bollybuzz-backend/internal/config"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
)

// Cache is an optional read-through TTL cache for the hot home-page
// rails. A nil *Cache is valid and means no caching; a redis failure is
// logged and falls back to the database, never to a request error.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewCache(cfg config.RedisConfig, logger *logrus.Logger) *Cache {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping().Err(); err != nil {
		logger.WithError(err).Warn("Redis unreachable, running without cache")
		return nil
	}

	logger.WithField("addr", cfg.Addr).Info("Redis cache connected")
	return &Cache{
		client: client,
		ttl:    cfg.TTL,
		logger: logger,
	}
}

// Get unmarshals the cached value into dest and reports a hit.
func (c *Cache) Get(key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).WithField("key", key).Warn("Cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Cache entry corrupt, ignoring")
		return false
	}
	return true
}

func (c *Cache) Set(key string, value interface{}) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Cache marshal failed")
		return
	}

	if err := c.client.Set(key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}
