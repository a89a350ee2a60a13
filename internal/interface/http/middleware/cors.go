package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// CORS 跨域资源共享中间件
// 1. 未启用时直接跳过
// 2. Origin不在允许列表中时返回403
// 3. 预检请求（OPTIONS）直接返回204
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			// 非跨域请求
			c.Next()
			return
		}

		allowed := false
		for _, allowOrigin := range cfg.AllowOrigins {
			if allowOrigin == "*" || allowOrigin == origin {
				c.Header("Access-Control-Allow-Origin", allowOrigin)
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Expose-Headers", RequestIDHeader)
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", maxAge)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
