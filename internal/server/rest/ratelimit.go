package rest

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig caps how fast a single authenticated user may hit the API.
type RateLimitConfig struct {
	Rate            rate.Limit
	Burst           int
	CleanupInterval time.Duration
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Rate:            rate.Limit(2), // 120 req/min per user
		Burst:           30,
		CleanupInterval: 5 * time.Minute,
	}
}

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// rateLimiter keeps one token bucket per user id, dropping buckets that have
// been idle for two cleanup intervals.
type rateLimiter struct {
	config RateLimitConfig

	mu       sync.Mutex
	limiters map[int64]*userLimiter

	stopCh chan struct{}
}

// newRateLimiter does not start any background work; Server.Run launches the
// cleanup loop so construction alone leaves no goroutine behind.
func newRateLimiter(config RateLimitConfig) *rateLimiter {
	return &rateLimiter{
		config:   config,
		limiters: make(map[int64]*userLimiter),
		stopCh:   make(chan struct{}),
	}
}

func (rl *rateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *rateLimiter) allow(userID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	ul, ok := rl.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.limiters[userID] = ul
	}
	ul.lastAccess = time.Now()

	return ul.limiter.Allow()
}

func (rl *rateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *rateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for userID, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > ttl {
			delete(rl.limiters, userID)
		}
	}
}

// rateLimitMiddleware must run after authMiddleware; it keys buckets by the
// authenticated user id.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			respondMessage(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if !s.limiter.allow(userID) {
			w.Header().Set("Retry-After", strconv.Itoa(1))
			respondMessage(w, http.StatusTooManyRequests, "too many requests")
			s.logger.Warn(r.Context(), "rate limit exceeded", "user_id", userID)
			return
		}

		next.ServeHTTP(w, r)
	})
}
