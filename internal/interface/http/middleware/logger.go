package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const (
	// RequestIDHeader 请求ID响应头，客户端传入时沿用
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// AccessLog 请求日志中间件
// 1. 生成（或沿用客户端传入的）请求ID，写入响应头
// 2. 请求结束后记录方法、路径、状态码、耗时、客户端IP、TraceID和SpanID
// 3. 5xx记为Error，4xx记为Warn，其余记为Info
func AccessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		// Tracing中间件替换了c.Request，这里能取到请求Span
		if ctx := c.Request.Context(); tracing.ExtractTraceID(ctx) != "" {
			attrs = append(attrs, "trace_id", tracing.ExtractTraceID(ctx), "span_id", tracing.ExtractSpanID(ctx))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		level := slog.LevelInfo
		switch status := c.Writer.Status(); {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		logger.Log(c.Request.Context(), level, "http request", attrs...)
	}
}

// GetRequestID 从Context获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
