package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// bookRepository 图书仓储实现(内存)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 使用切片保存插入顺序,所有查询都是线性扫描
// 3. 写入和读出都做深拷贝,外部无法绕过仓储修改数据
// 4. 进程退出后数据即丢失
type bookRepository struct {
	mu    sync.RWMutex
	books []*book.Book
}

// NewBookRepository 创建图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{}
}

// Append 追加图书
func (r *bookRepository) Append(ctx context.Context, b *book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = append(r.books, b.Clone())
	return nil
}

// Replace 按ID整体替换
func (r *bookRepository) Replace(ctx context.Context, b *book.Book) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(b.ID)
	if i < 0 {
		return false, nil
	}
	r.books[i] = b.Clone()
	return true, nil
}

// Remove 按ID删除
func (r *bookRepository) Remove(ctx context.Context, id book.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.books = append(r.books[:i:i], r.books[i+1:]...)
	return true, nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id book.ID) (*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, book.ErrBookNotFound
	}
	return r.books[i].Clone(), nil
}

// List 按过滤条件查询
func (r *bookRepository) List(ctx context.Context, filter book.Filter) ([]*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := filter.Apply(r.books)
	out := make([]*book.Book, len(matched))
	for i, b := range matched {
		out[i] = b.Clone()
	}
	return out, nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.books), nil
}

// indexOf 调用方需持有锁
func (r *bookRepository) indexOf(id book.ID) int {
	for i, b := range r.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
