package draft

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// ErrUnknownField 未知的表单字段
var ErrUnknownField = apperrors.New(apperrors.ErrCodeUnknownField, "未知的表单字段")

// Field 图书表单字段选择器
type Field int

const (
	FieldTitle Field = iota + 1
	FieldAuthor
	FieldGenre
	FieldPrice
)

// Fields 按表单顺序返回所有图书字段
func Fields() []Field {
	return []Field{FieldTitle, FieldAuthor, FieldGenre, FieldPrice}
}

// String 字段的输入名(与HTTP路径、TUI标签一致)
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	case FieldGenre:
		return "genre"
	case FieldPrice:
		return "price"
	default:
		return "unknown"
	}
}

// ParseField 输入名 → 字段
func ParseField(name string) (Field, error) {
	for _, f := range Fields() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, ErrUnknownField.WithDetail(name)
}

// EditionField 版次草稿字段选择器
type EditionField int

const (
	EditionFieldYear EditionField = iota + 1
	EditionFieldISBN
)

// EditionFields 返回所有版次字段
func EditionFields() []EditionField {
	return []EditionField{EditionFieldYear, EditionFieldISBN}
}

// String 字段的输入名
func (f EditionField) String() string {
	switch f {
	case EditionFieldYear:
		return "year"
	case EditionFieldISBN:
		return "isbn"
	default:
		return "unknown"
	}
}

// ParseEditionField 输入名 → 字段，ISBN大小写都接受
func ParseEditionField(name string) (EditionField, error) {
	if name == "ISBN" {
		return EditionFieldISBN, nil
	}
	for _, f := range EditionFields() {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, ErrUnknownField.WithDetail(name)
}
