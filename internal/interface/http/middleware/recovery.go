package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// Recovery panic恢复中间件
// 记录panic和请求ID，返回统一格式的内部错误，不暴露panic内容
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		response.Error(c, apperrors.ErrInternal)
		c.Abort()
	})
}
