package middleware

import (
	"fmt"
	"strconv"
	"time"

	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"
	"marketplace-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int
	Window time.Duration
}

// DefaultRateLimitRules returns the limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"wallet_read":     {Limit: 60, Window: time.Minute},
		"wallet_deposit":  {Limit: 20, Window: time.Minute},
		"wallet_withdraw": {Limit: 10, Window: time.Minute},
		"checkout":        {Limit: 30, Window: time.Minute},
		"orders":          {Limit: 60, Window: time.Minute},
		"webhook":         {Limit: 300, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Store failures let the request through.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)
		windowEnd := time.Now().Truncate(rule.Window).Add(rule.Window).Unix()

		allowed, remaining, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(windowEnd, 10))

		if !allowed {
			retryAfter := windowEnd - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated callers by owner and the rest by IP.
func extractIdentifier(c *gin.Context) string {
	if p, ok := PrincipalFrom(c); ok {
		return p.OwnerID.String()
	}
	return c.ClientIP()
}
