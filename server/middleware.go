package server

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxRequestID = "request_id"

// getOrCreateRequestID returns the caller's X-Request-ID or a fresh UUID,
// and echoes it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(HeaderRequestID, requestID)
	return requestID
}

// requestContext stamps every request with an ID, then logs and times it.
func requestContext(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := getOrCreateRequestID(c)
		c.Set(ctxRequestID, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
		logger.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", elapsed,
		)
	}
}

// requestLogger returns logger annotated with the request ID and handler name.
func requestLogger(c *gin.Context, logger *slog.Logger, handler string) *slog.Logger {
	return logger.With("request_id", c.GetString(ctxRequestID), "handler", handler)
}
