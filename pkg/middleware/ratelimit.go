package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vendorops/vos-engine/pkg/config"
)

// RateLimiter enforces a per-client-IP request ceiling over a fixed window.
// Each IP gets its own token bucket sized to the window's full allowance;
// buckets refill continuously at allowance/window. Stale buckets are evicted
// after two idle windows so the map does not grow without bound.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	window  time.Duration
	message string
	logger  *zap.Logger

	mu      sync.Mutex
	clients map[string]*client
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per window.
func NewRateLimiter(maxRequests int, window time.Duration, message string, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		limit:   rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:   maxRequests,
		window:  window,
		message: message,
		logger:  logger,
		clients: make(map[string]*client),
	}
	go rl.evictLoop()
	return rl
}

// NewGlobalRateLimiter builds the limiter applied to every API route.
func NewGlobalRateLimiter(cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return NewRateLimiter(cfg.MaxRequests, cfg.Window(),
		"Too many requests from this IP, please try again later.", logger)
}

// NewAuthRateLimiter builds the tighter limiter applied to login attempts.
func NewAuthRateLimiter(cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return NewRateLimiter(cfg.MaxAuthRequests, cfg.Window(),
		"Too many login attempts from this IP, please try again later.", logger)
}

// Middleware wraps a handler with the limit. Rejections are 429 with a JSON
// body matching the error shape of the rest of the API.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.allow(ip) {
			rl.logger.Warn("Rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", r.URL.Path))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   rl.message,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-2 * rl.window)
		rl.mu.Lock()
		for ip, c := range rl.clients {
			if c.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP strips the port from RemoteAddr. Forwarded headers are ignored;
// this service sits behind a trusted proxy that rewrites RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
