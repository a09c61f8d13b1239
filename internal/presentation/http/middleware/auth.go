package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/investify-receipts/internal/application/service"
	"github.com/sangkips/investify-receipts/internal/presentation/http/dto/response"
	"github.com/sangkips/investify-receipts/pkg/apperror"
	"github.com/sangkips/investify-receipts/pkg/utils"
)

// Context keys set by AuthMiddleware
const (
	TerminalIDKey   = "terminal_id"
	TerminalNameKey = "terminal_name"
)

// AuthMiddleware authenticates POS terminals by bearer token
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(TerminalIDKey, claims.TerminalID)
		c.Set(TerminalNameKey, claims.Name)
		c.Request = c.Request.WithContext(service.WithTerminalID(c.Request.Context(), claims.TerminalID))

		c.Next()
	}
}

// GetTerminalID returns the authenticated terminal, or "" when unauthenticated
func GetTerminalID(c *gin.Context) string {
	return c.GetString(TerminalIDKey)
}
