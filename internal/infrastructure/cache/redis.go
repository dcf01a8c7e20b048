package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"job-board/internal/config"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "auth:denylist:"

// TokenDenylist holds revoked token ids until their natural expiry.
// A logged-out token stays unusable even though the JWT itself is still
// cryptographically valid.
type TokenDenylist struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

// NewTokenDenylist connects to Redis. When Redis is unreachable the
// denylist degrades to a no-op: revocation is best effort, tokens then
// only die at their natural expiry.
func NewTokenDenylist(cfg config.RedisConfig, logger *log.Logger) *TokenDenylist {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: strings.TrimSpace(cfg.Password),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Denylist] Redis unavailable, revocation disabled: %v", err)
		}
		_ = client.Close()
		return &TokenDenylist{client: nil, logger: logger}
	}

	return &TokenDenylist{client: client, logger: logger}
}

func (d *TokenDenylist) isUnavailable() bool {
	return d == nil || d.client == nil
}

func (d *TokenDenylist) warnUnavailableOnce(err error) {
	if d == nil || d.logger == nil {
		return
	}
	if d.warnedUnavailable.CompareAndSwap(false, true) {
		d.logger.Printf("[Denylist] Redis unavailable, revocation disabled: %v", err)
	}
}

func (d *TokenDenylist) Ping(ctx context.Context) error {
	if d.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return d.client.Ping(ctx).Err()
}

// Revoke stores the token id with a TTL covering the token's remaining
// validity.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if d.isUnavailable() {
		return nil
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		d.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// IsRevoked reports whether the token id was denylisted. Lookup failures
// fail open so a Redis outage does not lock everyone out.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) bool {
	if d.isUnavailable() {
		return false
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return false
	}
	n, err := d.client.Exists(ctx, denylistKeyPrefix+tokenID).Result()
	if err != nil {
		d.warnUnavailableOnce(err)
		return false
	}
	return n > 0
}

func (d *TokenDenylist) Close() error {
	if d.isUnavailable() {
		return nil
	}
	return d.client.Close()
}
