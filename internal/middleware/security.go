package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"routerdash/internal/logger"
	"routerdash/internal/services"
)

// RateLimiter implements token bucket rate limiting per client IP.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
}

// NewRateLimiter creates a per-IP limiter with the given refill rate and
// burst size.
func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware enforces rate limiting per IP.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	log := logger.Component("middleware")

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.limiter(ip).Allow() {
			log.Warn().Str("ip", ip).Str("path", c.Request.URL.Path).Msg("rate limit exceeded")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": 60,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthMiddleware requires a valid Bearer token on protected routes.
func AuthMiddleware() gin.HandlerFunc {
	log := logger.Component("middleware")

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(token)
		if err != nil {
			log.Warn().Err(err).Str("ip", c.ClientIP()).Msg("failed authentication")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("client_name", claims.ClientName)
		c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers to all responses.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// CORSMiddleware allows the configured dashboard origins. An empty list
// allows any origin.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := strings.TrimRight(c.GetHeader("Origin"), "/")

		allowed := origin != "" && len(allowedOrigins) == 0
		for _, o := range allowedOrigins {
			trimmed := strings.TrimRight(strings.TrimSpace(o), "/")
			if trimmed == "*" || trimmed == origin {
				allowed = true
				break
			}
		}

		if allowed {
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// tokenLimiter guards the token endpoint with a stricter budget than the
// general API limiter (5 per minute, burst 10).
var tokenLimiter = NewRateLimiter(rate.Every(12*time.Second), 10)

// TokenRateLimitMiddleware enforces the stricter budget on token issuance.
func TokenRateLimitMiddleware() gin.HandlerFunc {
	return RateLimitMiddleware(tokenLimiter)
}
