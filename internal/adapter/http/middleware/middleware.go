package middleware

import (
	"net/http"
	"strings"
	"time"

	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/pkg/apperror"
	"marketplace-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderAPIKey    = "X-API-Key"

	// Context keys
	CtxOwnerID = "owner_id"
	CtxRole    = "role"
)

// JWTAuth validates the bearer token and stores the caller's owner id and role.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(authHeader[7:])
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("token rejected")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxOwnerID, claims.OwnerID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin role. It must run after JWTAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		if !p.IsAdmin() {
			response.Error(c, apperror.ErrForbidden())
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the authenticated caller set by JWTAuth.
func PrincipalFrom(c *gin.Context) (ports.Principal, bool) {
	raw, ok := c.Get(CtxOwnerID)
	if !ok {
		return ports.Principal{}, false
	}
	ownerID, ok := raw.(uuid.UUID)
	if !ok {
		return ports.Principal{}, false
	}
	role, _ := c.Get(CtxRole)
	roleStr, _ := role.(string)
	return ports.Principal{OwnerID: ownerID, Role: roleStr}, true
}

// WebhookAPIKey checks the bank feed's API key against an Argon2id hash.
// An empty hash disables the check. The key is read from X-API-Key or an
// "Authorization: Apikey <key>" header. A rejected notification still gets
// the plain 200 ack but never reaches the handler.
func WebhookAPIKey(hashSvc ports.HashService, encodedHash string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if encodedHash == "" {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			if auth := c.GetHeader("Authorization"); len(auth) > 7 && strings.EqualFold(auth[:7], "Apikey ") {
				key = strings.TrimSpace(auth[7:])
			}
		}
		if key == "" {
			log.Warn().Str("client_ip", c.ClientIP()).Str("path", c.FullPath()).Msg("webhook api key missing, notification dropped")
			response.Ack(c)
			c.Abort()
			return
		}

		ok, err := hashSvc.Verify(key, encodedHash)
		if err != nil {
			log.Error().Err(err).Msg("webhook api key hash is malformed, notification dropped")
			response.Ack(c)
			c.Abort()
			return
		}
		if !ok {
			log.Warn().Str("client_ip", c.ClientIP()).Str("path", c.FullPath()).Msg("webhook api key mismatch, notification dropped")
			response.Ack(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// WhenParam runs mw only when the route parameter name equals value
// (case-insensitive); other requests continue untouched.
func WhenParam(name, value string, mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.EqualFold(c.Param(name), value) {
			c.Next()
			return
		}
		mw(c)
	}
}

// RequestID propagates X-Request-ID, generating one when absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(response.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": apperror.CodeInternal,
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body. Reads past maxBytes fail, which the
// JSON binders surface as a validation error.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
