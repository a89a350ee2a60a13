package router

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookshelf/docs" // 注册swagger文档
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// NewRouter 创建Gin引擎并注册路由
// 中间件执行顺序：AccessLog → Recovery → CORS → Tracing → Metrics → Handler
func NewRouter(cfg *config.Config, workbenchHandler *handler.WorkbenchHandler, logger *slog.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)

	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("注册校验规则失败: %w", err)
	}

	r := gin.New()
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	registerRoutes(r, workbenchHandler)
	return r, nil
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, h *handler.WorkbenchHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API文档：/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/workbench", h.View)
		v1.PUT("/filter", h.SetFilter)

		// 图书集合
		books := v1.Group("/books")
		{
			books.GET("", h.ListBooks)
			books.GET("/:id", h.GetBook)
			books.DELETE("/:id", h.DeleteBook)
		}

		// 图书表单与版次草稿
		form := v1.Group("/form")
		{
			form.PUT("/fields/:field", h.SetFormField)
			form.POST("/load/:id", h.LoadForEdit)
			form.POST("/submit", h.Submit)
			form.POST("/reset", h.ResetForm)

			form.PUT("/edition/fields/:field", h.SetEditionField)
			form.POST("/editions", h.AppendEdition)
			form.DELETE("/editions/:index", h.RemoveEdition)
		}
	}
}
