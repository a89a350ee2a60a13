//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改后运行 `wire gen ./cmd/bookshelf` 重新生成wire_gen.go
//
// 依赖链：
// *gin.Engine → *handler.WorkbenchHandler → *inventory.Workbench
// → book.Service → book.Repository + book.IDGenerator

package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/xiebiao/bookshelf/internal/application/inventory"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// inventorySet 仓储、领域服务和工作台
var inventorySet = wire.NewSet(
	memory.NewBookRepository, // 内存图书仓储
	provideIDGenerator,       // 按配置选择ID策略
	book.NewService,          // 图书领域服务
	inventory.NewWorkbench,   // 书目工作台
)

// httpSet HTTP接口层
var httpSet = wire.NewSet(
	handler.NewWorkbenchHandler,
	router.NewRouter,
)

// InitializeServer 组装HTTP服务所需的Gin引擎
func InitializeServer(cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	wire.Build(inventorySet, httpSet)
	return nil, nil
}

// InitializeWorkbench 组装终端界面使用的工作台
func InitializeWorkbench(cfg *config.Config, logger *slog.Logger) *inventory.Workbench {
	wire.Build(inventorySet)
	return nil
}
