package inventory

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/draft"
)

// 界面文案
const (
	HeadingCreate = "Add Book"
	HeadingEdit   = "Edit Book"

	SubmitLabelCreate = "Add Book"
	SubmitLabelEdit   = "Update Book"

	EmptyMessage = "No books found."
)

// View 工作台快照
// 所有字段都是副本，调用方可以随意修改
type View struct {
	Mode         book.Mode
	Form         book.Fields
	EditionDraft draft.Edition
	Filter       book.Filter
	Books        []*book.Book // 过滤后的列表，保持插入顺序
	Total        int          // 集合总数（不受过滤影响）
}

// Heading 表单标题
func (v View) Heading() string {
	if v.Mode.IsEdit() {
		return HeadingEdit
	}
	return HeadingCreate
}

// SubmitLabel 提交按钮文案
func (v View) SubmitLabel() string {
	if v.Mode.IsEdit() {
		return SubmitLabelEdit
	}
	return SubmitLabelCreate
}

// IsEmpty 过滤后没有图书
func (v View) IsEmpty() bool {
	return len(v.Books) == 0
}
