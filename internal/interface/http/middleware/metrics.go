package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// Metrics HTTP指标中间件
// path标签使用路由模板（/api/v1/books/:id），避免标签基数随ID增长
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncInProgress()
		defer metrics.DecInProgress()

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
