package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

const redisKeyPrefix = "fcm-relay:access_token"

// RedisCache shares access tokens between relay instances.
// Keys expire together with the token they hold.
type RedisCache struct {
	redis *redis.Client
	now   func() time.Time
}

func NewRedisCache(redis *redis.Client) *RedisCache {
	return &RedisCache{
		redis: redis,
		now:   time.Now,
	}
}

type cachedToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	Expiry      time.Time `json:"expiry"`
}

func (c *RedisCache) Get(ctx context.Context, key string) (*oauth2.Token, error) {
	data, err := c.redis.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached token: %w", err)
	}

	var entry cachedToken
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached token: %w", err)
	}

	return &oauth2.Token{
		AccessToken: entry.AccessToken,
		TokenType:   entry.TokenType,
		Expiry:      entry.Expiry,
	}, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, tok *oauth2.Token) error {
	ttl := tok.Expiry.Sub(c.now())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(cachedToken{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		Expiry:      tok.Expiry,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err = c.redis.Set(ctx, redisKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}
	return nil
}

func redisKey(key string) string {
	return fmt.Sprintf("%s:%s", redisKeyPrefix, key)
}
