package draft

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// Edition 版次草稿
// 追加到图书表单后立即清空
type Edition struct {
	Year string
	ISBN string
}

// SetYear 设置年份
func (e *Edition) SetYear(v string) {
	e.Year = v
}

// SetISBN 设置ISBN
func (e *Edition) SetISBN(v string) {
	e.ISBN = v
}

// Set 按字段选择器设置值,只修改该字段
func (e *Edition) Set(field EditionField, value string) error {
	switch field {
	case EditionFieldYear:
		e.SetYear(value)
	case EditionFieldISBN:
		e.SetISBN(value)
	default:
		return ErrUnknownField.WithDetail(field.String())
	}
	return nil
}

// Get 读取字段值
func (e Edition) Get(field EditionField) string {
	switch field {
	case EditionFieldYear:
		return e.Year
	case EditionFieldISBN:
		return e.ISBN
	default:
		return ""
	}
}

// Clear 清空草稿
func (e *Edition) Clear() {
	*e = Edition{}
}

// IsEmpty 两个字段都为空
func (e Edition) IsEmpty() bool {
	return e.Year == "" && e.ISBN == ""
}

// ToEdition 转换为领域版次
func (e Edition) ToEdition() book.Edition {
	return book.Edition{Year: e.Year, ISBN: e.ISBN}
}
