package middleware

import (
	"net/http"
	"sync"
	"time"

	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
)

type rateLimitEntry struct {
	tokens    float64
	lastCheck time.Time
}

// RateLimiter is a per client IP token bucket.
type RateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*rateLimitEntry
	maxTokens  float64
	refillRate float64 // tokens per second

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows bursts of maxRequests, refilled over perDuration.
func NewRateLimiter(maxRequests int, perDuration time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:    make(map[string]*rateLimitEntry),
		maxTokens:  float64(maxRequests),
		refillRate: float64(maxRequests) / perDuration.Seconds(),
		stop:       make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for ip, entry := range rl.clients {
				if now.Sub(entry.lastCheck) > 10*time.Minute {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.clients[clientIP]
	if !exists {
		rl.clients[clientIP] = &rateLimitEntry{
			tokens:    rl.maxTokens - 1,
			lastCheck: now,
		}
		return true
	}

	elapsed := now.Sub(entry.lastCheck).Seconds()
	entry.tokens += elapsed * rl.refillRate
	if entry.tokens > rl.maxTokens {
		entry.tokens = rl.maxTokens
	}
	entry.lastCheck = now

	if entry.tokens >= 1 {
		entry.tokens--
		return true
	}
	return false
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusTooManyRequests, utils.ErrCodeTooManyRequests, "Too many requests. Please try again later.", ""))
			return
		}
		c.Next()
	}
}
