package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/jjoa-app/diary-backend/internal/config"
	"github.com/jjoa-app/diary-backend/internal/handler"
)

// LoginLimiter throttles the public auth endpoints per client address
type LoginLimiter interface {
	// Allow reports whether the client may make another attempt in the
	// current window, and how many attempts it has used
	Allow(ctx context.Context, clientIP string) (bool, int64, error)

	// Close closes the Redis connection
	Close() error
}

type redisLoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

// NewLoginLimiter creates a Redis-backed fixed-window limiter
func NewLoginLimiter(cfg *config.Config, logger *slog.Logger) (LoginLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [LoginLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [LoginLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
	)

	return &redisLoginLimiter{
		client: client,
		limit:  cfg.LoginRateLimit,
		window: time.Duration(cfg.LoginRateWindow) * time.Second,
		logger: logger,
	}, nil
}

func loginKey(clientIP string) string {
	return fmt.Sprintf("rate:login:%s", clientIP)
}

func (r *redisLoginLimiter) Allow(ctx context.Context, clientIP string) (bool, int64, error) {
	// limit <= 0 means unlimited
	if r.limit <= 0 {
		return true, 0, nil
	}

	key := loginKey(clientIP)

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [LoginLimiter] Failed to count attempt", "error", err, "client_ip", clientIP)
		// On Redis errors the request is allowed; availability beats throttling here
		return true, 0, err
	}

	used := incr.Val()
	return used <= r.limit, used, nil
}

func (r *redisLoginLimiter) Close() error {
	return r.client.Close()
}

// Limit is the gin middleware wrapping a LoginLimiter
func Limit(limiter LoginLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, used, _ := limiter.Allow(c.Request.Context(), c.ClientIP())
		if !allowed {
			logger.Warn("⚠️ [LoginLimiter] Too many attempts", "client_ip", c.ClientIP(), "used", used)
			handler.Error(c, http.StatusTooManyRequests, "Too many attempts, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

// NoOpLoginLimiter always allows requests. Used when Redis is not available.
type NoOpLoginLimiter struct {
	logger *slog.Logger
}

// NewNoOpLoginLimiter creates a no-op limiter
func NewNoOpLoginLimiter(logger *slog.Logger) LoginLimiter {
	logger.Warn("⚠️ [LoginLimiter] Using no-op limiter - login throttling is disabled")
	return &NoOpLoginLimiter{logger: logger}
}

func (r *NoOpLoginLimiter) Allow(ctx context.Context, clientIP string) (bool, int64, error) {
	return true, 0, nil
}

func (r *NoOpLoginLimiter) Close() error {
	return nil
}
