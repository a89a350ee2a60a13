package book

// Genre 图书分类(固定枚举)
// 空值在表单中表示"尚未选择",在过滤条件中表示"全部分类"
type Genre string

const (
	GenreUnset      Genre = ""
	GenreFiction    Genre = "Fiction"
	GenreNonFiction Genre = "Non-Fiction"
	GenreSciFi      Genre = "Sci-Fi"
	GenreFantasy    Genre = "Fantasy"
)

// Genres 按下拉框顺序返回所有可选分类(不含空值)
func Genres() []Genre {
	return []Genre{GenreFiction, GenreNonFiction, GenreSciFi, GenreFantasy}
}

// ParseGenre 将输入值转换为分类,空字符串合法(表示未选择)
func ParseGenre(s string) (Genre, error) {
	if s == "" {
		return GenreUnset, nil
	}
	g := Genre(s)
	if !g.Valid() {
		return GenreUnset, ErrInvalidGenre.WithDetail(s)
	}
	return g, nil
}

// Valid 是否为枚举中的分类(空值返回false)
func (g Genre) Valid() bool {
	for _, known := range Genres() {
		if g == known {
			return true
		}
	}
	return false
}

// String 实现Stringer接口
func (g Genre) String() string {
	return string(g)
}

// ID 图书唯一标识
// 创建时由IDGenerator分配,之后不再变更
type ID string

// String 实现Stringer接口
func (id ID) String() string {
	return string(id)
}

// Edition 图书版次
// 没有独立标识,只通过在所属图书版次列表中的位置区分
type Edition struct {
	Year string // 出版年份(输入值,保留原始字符串)
	ISBN string
}

// Fields 图书的可编辑字段
// 表单草稿和图书实体共享这一组字段,更新时整体替换
type Fields struct {
	Title    string
	Author   string
	Genre    Genre
	Price    string // 价格(输入值,保留原始字符串)
	Editions []Edition
}

// Clone 深拷贝,版次列表不与原值共享底层数组
func (f Fields) Clone() Fields {
	out := f
	out.Editions = cloneEditions(f.Editions)
	return out
}

// Book 图书实体(聚合根)
// Edition是Book聚合内的子实体,不能脱离所属图书单独存在
type Book struct {
	ID ID
	Fields
}

// NewBook 创建新图书(工厂方法)
// 字段会被深拷贝,调用方之后对fields的修改不会影响图书
func NewBook(id ID, fields Fields) *Book {
	return &Book{
		ID:     id,
		Fields: fields.Clone(),
	}
}

// Replace 用新字段整体替换(非合并),ID保持不变
func (b *Book) Replace(fields Fields) {
	b.Fields = fields.Clone()
}

// Clone 深拷贝图书
func (b *Book) Clone() *Book {
	return NewBook(b.ID, b.Fields)
}

func cloneEditions(in []Edition) []Edition {
	out := make([]Edition, len(in))
	copy(out, in)
	return out
}
