package main

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimiterStore keeps one token bucket per client IP.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
	requests int
}

func newRateLimiterStore(rps, burst int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[ip]
	if !ok {
		l = rate.NewLimiter(s.rps, s.burst)
		s.limiters[ip] = l
	}

	// Every 1000 requests, evict idle clients (full buckets).
	s.requests++
	if s.requests%1000 == 0 {
		for k, v := range s.limiters {
			if v.Tokens() >= float64(s.burst) {
				delete(s.limiters, k)
			}
		}
	}
	return l
}

// rateLimitMiddleware enforces per-IP rate limiting. rps <= 0 disables it.
func rateLimitMiddleware(rps, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = rps
	}
	store := newRateLimiterStore(rps, burst)

	return func(c *gin.Context) {
		if !store.getLimiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			apiError(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
