package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 仓储保持插入顺序,List结果不重新排序
// 3. 返回的图书都是副本,调用方修改不会影响仓储内的数据
type Repository interface {
	// Append 追加图书到集合末尾
	Append(ctx context.Context, book *Book) error

	// Replace 按ID整体替换图书,找不到时返回false且集合不变
	Replace(ctx context.Context, book *Book) (bool, error)

	// Remove 按ID删除图书,找不到时返回false
	Remove(ctx context.Context, id ID) (bool, error)

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id ID) (*Book, error)

	// List 返回满足过滤条件的图书(插入顺序)
	List(ctx context.Context, filter Filter) ([]*Book, error)

	// Count 图书总数
	Count(ctx context.Context) (int, error)
}
