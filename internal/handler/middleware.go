package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"sportsbook-settlement/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderUserID     = "X-User-ID"
	HeaderUserRole   = "X-User-Role"
	HeaderCronSecret = "X-Cron-Secret"

	ctxUserID = "userID"
	ctxRole   = "role"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)

		logger.Info().
			Str("request_id", requestID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// IdentityMiddleware reads the identity resolved by the auth gateway in
// front of the service. Nothing here authenticates.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := strings.TrimSpace(c.GetHeader(HeaderUserID)); userID != "" {
			c.Set(ctxUserID, userID)
			c.Set(ctxRole, model.ParseRole(c.GetHeader(HeaderUserRole)))
		}
		c.Next()
	}
}

func identity(c *gin.Context) (string, model.Role, bool) {
	userID := c.GetString(ctxUserID)
	if userID == "" {
		return "", "", false
	}
	role, _ := c.Get(ctxRole)
	r, _ := role.(model.Role)
	return userID, r, true
}

func RequireUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := identity(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "missing user identity",
				Code:  "UNAUTHORIZED",
			})
			return
		}
		c.Next()
	}
}

func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "missing user identity",
				Code:  "UNAUTHORIZED",
			})
			return
		}
		if role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Error: "admin role required",
				Code:  "FORBIDDEN",
			})
			return
		}
		c.Next()
	}
}

// CronSecretMiddleware accepts the shared secret in X-Cron-Secret or as a
// bearer token. An empty secret rejects every call.
func CronSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(HeaderCronSecret)
		if provided == "" {
			provided, _ = strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "invalid cron secret",
				Code:  "UNAUTHORIZED",
			})
			return
		}
		c.Next()
	}
}

// canAccessUser lets users read their own records and admins read anyone's
func canAccessUser(c *gin.Context, userID string) bool {
	caller, role, ok := identity(c)
	return ok && (role == model.RoleAdmin || caller == userID)
}
