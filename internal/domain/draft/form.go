package draft

import (
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// Form 图书表单草稿
// 设计说明:
// 1. 字段与图书实体一致,另带显式的提交模式(Create / Edit(原ID))
// 2. 模式只由LoadForEdit和Reset改变,提交时据此决定新建还是替换
// 3. 零值即新建模式下的空表单
type Form struct {
	mode   book.Mode
	fields book.Fields
}

// NewForm 创建空表单(新建模式)
func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Mode 当前提交模式
func (f *Form) Mode() book.Mode {
	return f.mode
}

// Fields 返回字段副本
func (f *Form) Fields() book.Fields {
	return f.fields.Clone()
}

// Editions 返回版次列表副本
func (f *Form) Editions() []book.Edition {
	return f.Fields().Editions
}

// SetTitle 设置书名
func (f *Form) SetTitle(v string) {
	f.fields.Title = v
}

// SetAuthor 设置作者
func (f *Form) SetAuthor(v string) {
	f.fields.Author = v
}

// SetGenre 设置分类,空值表示未选择
func (f *Form) SetGenre(v string) error {
	g, err := book.ParseGenre(v)
	if err != nil {
		return err
	}
	f.fields.Genre = g
	return nil
}

// SetPrice 设置价格(保留输入字符串)
func (f *Form) SetPrice(v string) {
	f.fields.Price = v
}

// Set 按字段选择器设置值,其他字段保持不变
func (f *Form) Set(field Field, value string) error {
	switch field {
	case FieldTitle:
		f.SetTitle(value)
	case FieldAuthor:
		f.SetAuthor(value)
	case FieldGenre:
		return f.SetGenre(value)
	case FieldPrice:
		f.SetPrice(value)
	default:
		return ErrUnknownField.WithDetail(field.String())
	}
	return nil
}

// Get 读取字段值
func (f *Form) Get(field Field) string {
	switch field {
	case FieldTitle:
		return f.fields.Title
	case FieldAuthor:
		return f.fields.Author
	case FieldGenre:
		return f.fields.Genre.String()
	case FieldPrice:
		return f.fields.Price
	default:
		return ""
	}
}

// LoadForEdit 用图书副本整体替换草稿,进入编辑模式
func (f *Form) LoadForEdit(b *book.Book) {
	f.mode = book.Edit(b.ID)
	f.fields = b.Fields.Clone()
}

// Reset 恢复为新建模式下的空表单
func (f *Form) Reset() {
	f.mode = book.Create()
	f.fields = book.Fields{Editions: []book.Edition{}}
}

// AppendEdition 追加版次草稿的副本,然后清空版次草稿
func (f *Form) AppendEdition(e *Edition) {
	f.fields.Editions = append(f.fields.Editions, e.ToEdition())
	e.Clear()
}

// RemoveEdition 删除指定位置的版次,其余版次保持相对顺序
// 下标越界时列表不变,返回false
func (f *Form) RemoveEdition(index int) bool {
	if index < 0 || index >= len(f.fields.Editions) {
		return false
	}
	out := make([]book.Edition, 0, len(f.fields.Editions)-1)
	out = append(out, f.fields.Editions[:index]...)
	out = append(out, f.fields.Editions[index+1:]...)
	f.fields.Editions = out
	return true
}

// Missing 返回为空的必填字段(按表单顺序)
// 必填:书名、作者、分类、价格
func (f *Form) Missing() []Field {
	var missing []Field
	for _, field := range Fields() {
		if f.Get(field) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
