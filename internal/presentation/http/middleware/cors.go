package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/investify-receipts/internal/config"
)

// CORSMiddleware allows the till's browser front-end to call the API
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		// POS front-ends run locally on the till
		AllowOrigins: orDefault(cfg.AllowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000"),
		AllowMethods: orDefault(cfg.AllowedMethods, "GET", "POST", "PUT", "OPTIONS"),
		AllowHeaders: withHeader(
			orDefault(cfg.AllowedHeaders, "Accept", "Authorization", "Content-Type", "X-Request-ID", "Origin"),
			IdempotencyKeyHeader,
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
			"X-Idempotency-Replayed",
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"Retry-After",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func orDefault(values []string, defaults ...string) []string {
	if len(values) == 0 {
		return defaults
	}
	return values
}

// withHeader appends header unless already listed
func withHeader(headers []string, header string) []string {
	for _, h := range headers {
		if h == header {
			return headers
		}
	}
	return append(headers, header)
}
