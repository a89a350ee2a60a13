package main

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
)

// provideIDGenerator 按配置选择图书ID生成策略
// Wire无法从Config中挑选实现，需要手写Provider
func provideIDGenerator(cfg *config.Config) book.IDGenerator {
	if cfg.Inventory.IDStrategy == config.IDStrategyUUID {
		return book.NewUUIDGenerator()
	}
	return book.NewSequenceGenerator()
}
