// Package inventory 书目工作台应用服务
//
// 工作台持有操作员界面的全部状态：图书集合（经由领域服务）、过滤条件、
// 图书表单草稿和版次草稿。HTTP接口和终端界面都只通过工作台的事件方法修改状态。
//
// 并发模型：每个事件在整个执行期间持有同一把互斥锁，事件严格串行，
// 一个事件返回的View就是该事件完成后的状态。
package inventory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/draft"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const tracerName = "inventory"

// Workbench 书目工作台
type Workbench struct {
	mu sync.Mutex

	books   book.Service
	filter  book.Filter
	form    *draft.Form
	edition draft.Edition

	logger *slog.Logger
}

// NewWorkbench 创建工作台：空过滤条件、新建模式的空表单、空版次草稿
func NewWorkbench(books book.Service, logger *slog.Logger) *Workbench {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workbench{
		books:  books,
		form:   draft.NewForm(),
		logger: logger.With("component", "workbench"),
	}
}

// run 串行执行一个事件并返回事件完成后的快照
func (w *Workbench) run(ctx context.Context, name string, fn func(ctx context.Context) error) (View, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ctx, span := tracing.StartSpan(ctx, tracerName, "Workbench."+name)
	err := fn(ctx)
	if err != nil {
		tracing.EndSpan(span, err)
		return View{}, err
	}

	v, err := w.snapshot(ctx)
	tracing.EndSpan(span, err)
	return v, err
}

// snapshot 调用方必须持有锁
func (w *Workbench) snapshot(ctx context.Context) (View, error) {
	books, err := w.books.List(ctx, w.filter)
	if err != nil {
		return View{}, err
	}
	total, err := w.books.Count(ctx)
	if err != nil {
		return View{}, err
	}

	return View{
		Mode:         w.form.Mode(),
		Form:         w.form.Fields(),
		EditionDraft: w.edition,
		Filter:       w.filter,
		Books:        books,
		Total:        total,
	}, nil
}

// View 当前快照
func (w *Workbench) View(ctx context.Context) (View, error) {
	return w.run(ctx, "View", func(context.Context) error { return nil })
}

// List 按临时过滤条件查询，不修改工作台的过滤状态
func (w *Workbench) List(ctx context.Context, filter book.Filter) ([]*book.Book, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.books.List(ctx, filter)
}

// Get 根据ID获取图书
func (w *Workbench) Get(ctx context.Context, id book.ID) (*book.Book, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.books.Get(ctx, id)
}

// SetFilter 同时设置分类和作者过滤条件
// 分类非法时过滤条件保持不变
func (w *Workbench) SetFilter(ctx context.Context, genre, author string) (View, error) {
	return w.run(ctx, "SetFilter", func(context.Context) error {
		g, err := book.ParseGenre(genre)
		if err != nil {
			return err
		}
		w.filter = book.Filter{Genre: g, Author: author}
		return nil
	})
}

// SetFilterGenre 设置分类过滤，空字符串表示不过滤
func (w *Workbench) SetFilterGenre(ctx context.Context, genre string) (View, error) {
	return w.run(ctx, "SetFilterGenre", func(context.Context) error {
		g, err := book.ParseGenre(genre)
		if err != nil {
			return err
		}
		w.filter.Genre = g
		return nil
	})
}

// SetFilterAuthor 设置作者过滤（不区分大小写的子串匹配）
func (w *Workbench) SetFilterAuthor(ctx context.Context, author string) (View, error) {
	return w.run(ctx, "SetFilterAuthor", func(context.Context) error {
		w.filter.Author = author
		return nil
	})
}

// SetFormField 修改表单的一个字段
func (w *Workbench) SetFormField(ctx context.Context, field draft.Field, value string) (View, error) {
	return w.run(ctx, "SetFormField", func(context.Context) error {
		return w.form.Set(field, value)
	})
}

// SetEditionField 修改版次草稿的一个字段
func (w *Workbench) SetEditionField(ctx context.Context, field draft.EditionField, value string) (View, error) {
	return w.run(ctx, "SetEditionField", func(context.Context) error {
		return w.edition.Set(field, value)
	})
}

// AppendEdition 把版次草稿追加到表单末尾并清空草稿
// 空草稿同样会被追加
func (w *Workbench) AppendEdition(ctx context.Context) (View, error) {
	return w.run(ctx, "AppendEdition", func(ctx context.Context) error {
		w.form.AppendEdition(&w.edition)
		metrics.RecordEditionChange("append", metrics.ResultApplied)
		w.logger.DebugContext(ctx, "edition appended", "editions", len(w.form.Editions()))
		return nil
	})
}

// RemoveEdition 删除表单中指定位置的版次，下标越界时什么也不做
func (w *Workbench) RemoveEdition(ctx context.Context, index int) (View, error) {
	return w.run(ctx, "RemoveEdition", func(ctx context.Context) error {
		removed := w.form.RemoveEdition(index)
		metrics.RecordEditionChange("remove", metrics.ResultOf(removed))
		if !removed {
			w.logger.InfoContext(ctx, "edition index out of range, ignored", "index", index)
		}
		return nil
	})
}

// Edit 把图书副本载入表单，进入编辑模式
// 图书不存在时返回ErrBookNotFound，表单保持不变
func (w *Workbench) Edit(ctx context.Context, id book.ID) (View, error) {
	return w.run(ctx, "Edit", func(ctx context.Context) error {
		b, err := w.books.Get(ctx, id)
		if err != nil {
			return err
		}
		w.form.LoadForEdit(b)
		w.logger.DebugContext(ctx, "book loaded for edit", "id", id)
		return nil
	})
}

// Submit 提交表单
// 1. 必填字段为空：返回ErrRequiredFields，所有状态保持不变
// 2. 新建模式：追加新图书；编辑模式：按原ID整体替换（原图书已被删除时静默忽略）
// 3. 成功后表单恢复为新建模式的空表单，版次草稿保持不变
func (w *Workbench) Submit(ctx context.Context) (View, error) {
	return w.run(ctx, "Submit", func(ctx context.Context) error {
		if missing := w.form.Missing(); len(missing) > 0 {
			metrics.RecordSubmitRejected()
			return requiredFieldsError(missing)
		}

		mode := w.form.Mode()
		saved, applied, err := w.books.AddOrUpdate(ctx, mode, w.form.Fields())
		if err != nil {
			return err
		}

		op := "add"
		if mode.IsEdit() {
			op = "update"
		}
		metrics.RecordBookMutation(op, metrics.ResultOf(applied))

		if applied {
			w.logger.DebugContext(ctx, "book saved", "op", op, "id", saved.ID)
		} else {
			w.logger.InfoContext(ctx, "book no longer exists, update ignored", "mode", mode.String())
		}

		w.form.Reset()
		w.refreshGauge(ctx)
		return nil
	})
}

// ResetForm 放弃当前表单，恢复为新建模式的空表单
func (w *Workbench) ResetForm(ctx context.Context) (View, error) {
	return w.run(ctx, "ResetForm", func(context.Context) error {
		w.form.Reset()
		return nil
	})
}

// Delete 删除图书，不存在时removed=false
// 正在编辑的图书被删除时表单不变，之后的提交会被静默忽略
func (w *Workbench) Delete(ctx context.Context, id book.ID) (View, bool, error) {
	var removed bool
	v, err := w.run(ctx, "Delete", func(ctx context.Context) error {
		var err error
		removed, err = w.books.Delete(ctx, id)
		if err != nil {
			return err
		}

		metrics.RecordBookMutation("delete", metrics.ResultOf(removed))
		if removed {
			w.logger.DebugContext(ctx, "book deleted", "id", id)
		} else {
			w.logger.InfoContext(ctx, "book not found, delete ignored", "id", id)
		}
		w.refreshGauge(ctx)
		return nil
	})
	return v, removed, err
}

// refreshGauge 更新图书总数指标
// 集合已经修改成功，统计失败只记录日志，不影响事件结果
func (w *Workbench) refreshGauge(ctx context.Context) {
	n, err := w.books.Count(ctx)
	if err != nil {
		w.logger.WarnContext(ctx, "refresh books gauge failed", "error", err)
		return
	}
	metrics.SetBooks(n)
}
