package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more request from key fits the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// IPRateLimiter is a per-process sliding window limiter. Keys idle for a
// whole window are swept at most once per window.
type IPRateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	limit     int
	window    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewIPRateLimiter(limit int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (rl *IPRateLimiter) Allow(_ context.Context, ip string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)
	if now.Sub(rl.lastSweep) >= rl.window {
		rl.sweep(cutoff)
		rl.lastSweep = now
	}

	requests := prune(rl.requests[ip], cutoff)
	if len(requests) >= rl.limit {
		if len(requests) == 0 {
			delete(rl.requests, ip)
		} else {
			rl.requests[ip] = requests
		}
		return false, nil
	}
	rl.requests[ip] = append(requests, now)
	return true, nil
}

// sweep drops every key with no request after cutoff.
func (rl *IPRateLimiter) sweep(cutoff time.Time) {
	for ip, requests := range rl.requests {
		if len(requests) == 0 || !requests[len(requests)-1].After(cutoff) {
			delete(rl.requests, ip)
		}
	}
}

// prune drops requests that left the window; times are in ascending order.
func prune(requests []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for ; i < len(requests); i++ {
		if requests[i].After(cutoff) {
			break
		}
	}
	return requests[i:]
}

// RedisRateLimiter is a fixed window limiter shared by every API instance
// pointing at the same Redis.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, limit: int64(limit), window: window, prefix: "fairmarriage:ratelimit:"}
}

// NewRedisClient connects and pings, like the rest of the stores do at startup.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("[Redis] Connected to %s", addr)
	return client, nil
}

func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().UnixNano() / int64(rl.window)
	k := fmt.Sprintf("%s%s:%d", rl.prefix, key, bucket)

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= rl.limit, nil
}

// RateLimitMiddleware rejects clients over budget with 429. When the limiter
// itself fails the request is let through.
func RateLimitMiddleware(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
