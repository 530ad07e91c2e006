package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// Endpoints polled by infrastructure; logging them is pure noise.
var quietPaths = []string{"/health", "/metrics"}

// StructuredLogging emits one slog record per request.
func StructuredLogging(logger *slog.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if lo.Contains(quietPaths, param.Path) {
			return ""
		}

		requestID := ""
		if param.Keys != nil {
			if id, exists := param.Keys[requestIDKey]; exists {
				requestID = id.(string)
			}
		}

		logger.Info("HTTP request",
			"request_id", requestID,
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"client_ip", param.ClientIP,
			"error", param.ErrorMessage,
		)

		return ""
	})
}
