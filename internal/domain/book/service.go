package book

import (
	"context"
)

// Service 图书集合管理(领域服务)
// 设计说明:
// 1. 新建/更新由提交模式决定,不再依赖可空的ID
// 2. 更新或删除不存在的图书不是错误,集合保持不变,通过返回值告知调用方
type Service interface {
	// AddOrUpdate 提交表单字段
	// - Create模式:分配新ID,追加到集合末尾
	// - Edit模式:按原ID整体替换;原图书不存在时集合不变,applied=false
	AddOrUpdate(ctx context.Context, mode Mode, fields Fields) (book *Book, applied bool, err error)

	// Delete 删除图书,不存在时removed=false
	Delete(ctx context.Context, id ID) (removed bool, err error)

	// List 按过滤条件查询,保持插入顺序
	List(ctx context.Context, filter Filter) ([]*Book, error)

	// Get 根据ID获取图书
	Get(ctx context.Context, id ID) (*Book, error)

	// Count 图书总数
	Count(ctx context.Context) (int, error)
}

// service 领域服务实现
type service struct {
	repo Repository
	ids  IDGenerator
}

// NewService 创建图书领域服务
func NewService(repo Repository, ids IDGenerator) Service {
	return &service{repo: repo, ids: ids}
}

// AddOrUpdate 新建或整体替换图书
func (s *service) AddOrUpdate(ctx context.Context, mode Mode, fields Fields) (*Book, bool, error) {
	original, editing := mode.Original()
	if !editing {
		b := NewBook(s.ids.NextID(), fields)
		if err := s.repo.Append(ctx, b); err != nil {
			return nil, false, err
		}
		return b.Clone(), true, nil
	}

	b := NewBook(original, fields)
	ok, err := s.repo.Replace(ctx, b)
	if err != nil || !ok {
		return nil, false, err
	}
	return b.Clone(), true, nil
}

// Delete 删除图书
func (s *service) Delete(ctx context.Context, id ID) (bool, error) {
	return s.repo.Remove(ctx, id)
}

// List 查询图书列表
func (s *service) List(ctx context.Context, filter Filter) ([]*Book, error) {
	return s.repo.List(ctx, filter)
}

// Get 根据ID获取图书
func (s *service) Get(ctx context.Context, id ID) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Count 图书总数
func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
