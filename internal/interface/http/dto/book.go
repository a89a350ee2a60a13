package dto

import (
	"github.com/xiebiao/bookshelf/internal/application/inventory"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/draft"
)

// FilterRequest 设置过滤条件
// validator tag说明:
// - genre: 自定义分类校验(在RegisterValidators中注册),空值表示全部分类
type FilterRequest struct {
	Genre  string `json:"genre" binding:"omitempty,genre" example:"Fiction"`
	Author string `json:"author" binding:"max=200" example:"Tolkien"`
}

// ListBooksRequest 临时查询(不修改工作台的过滤条件)
type ListBooksRequest struct {
	Genre  string `form:"genre" binding:"omitempty,genre" example:"Sci-Fi"`
	Author string `form:"author" binding:"max=200" example:"Herbert"`
}

// Filter 转换为领域过滤条件(genre已由validator校验)
func (r ListBooksRequest) Filter() book.Filter {
	return book.Filter{Genre: book.Genre(r.Genre), Author: r.Author}
}

// FieldValueRequest 修改表单或版次草稿的单个字段
// value允许为空字符串(清空字段)
type FieldValueRequest struct {
	Value string `json:"value" binding:"max=500" example:"The Hobbit"`
}

// EditionResponse 版次
type EditionResponse struct {
	Year  string `json:"year" example:"1937"`
	ISBN  string `json:"isbn" example:"9780261102217"`
	Label string `json:"label" example:"1937 - 9780261102217"` // "年份 - ISBN",方便前端显示
}

// BookResponse 图书
type BookResponse struct {
	ID         string            `json:"id" example:"1"`
	Title      string            `json:"title" example:"The Hobbit"`
	Author     string            `json:"author" example:"J.R.R. Tolkien"`
	Genre      string            `json:"genre" example:"Fantasy"`
	Price      string            `json:"price" example:"12.50"`
	PriceLabel string            `json:"price_label" example:"$12.50"`
	Editions   []EditionResponse `json:"editions"`
}

// FormResponse 表单草稿
type FormResponse struct {
	Title    string            `json:"title" example:"The Hobbit"`
	Author   string            `json:"author" example:"J.R.R. Tolkien"`
	Genre    string            `json:"genre" example:"Fantasy"`
	Price    string            `json:"price" example:"12.50"`
	Editions []EditionResponse `json:"editions"`
}

// FilterResponse 过滤条件
type FilterResponse struct {
	Genre  string `json:"genre" example:""`
	Author string `json:"author" example:"Tolkien"`
}

// WorkbenchResponse 工作台快照
// Mode为create或edit，EditingID为编辑模式下的原图书ID
type WorkbenchResponse struct {
	Mode         string          `json:"mode" example:"edit"`
	EditingID    string          `json:"editing_id,omitempty" example:"1"`
	Heading      string          `json:"heading" example:"Edit Book"`
	SubmitLabel  string          `json:"submit_label" example:"Update Book"`
	Form         FormResponse    `json:"form"`
	EditionDraft EditionResponse `json:"edition_draft"`
	Filter       FilterResponse  `json:"filter"`
	Books        []BookResponse  `json:"books"`
	Total        int             `json:"total" example:"3"`
	EmptyMessage string          `json:"empty_message,omitempty" example:"No books found."`
}

// DeleteBookResponse 删除结果
type DeleteBookResponse struct {
	Removed bool              `json:"removed" example:"true"`
	View    WorkbenchResponse `json:"workbench"`
}

// FormatPrice 价格显示("$"前缀,保留输入原样)
func FormatPrice(price string) string {
	return "$" + price
}

// FormatEdition 版次显示:"年份 - ISBN"
func FormatEdition(year, isbn string) string {
	return year + " - " + isbn
}

// NewEditionResponse 版次 → 响应
func NewEditionResponse(e book.Edition) EditionResponse {
	return EditionResponse{Year: e.Year, ISBN: e.ISBN, Label: FormatEdition(e.Year, e.ISBN)}
}

func newEditionList(editions []book.Edition) []EditionResponse {
	out := make([]EditionResponse, len(editions))
	for i, e := range editions {
		out[i] = NewEditionResponse(e)
	}
	return out
}

// NewBookResponse 图书 → 响应
func NewBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		ID:         b.ID.String(),
		Title:      b.Title,
		Author:     b.Author,
		Genre:      b.Genre.String(),
		Price:      b.Price,
		PriceLabel: FormatPrice(b.Price),
		Editions:   newEditionList(b.Editions),
	}
}

// NewBookList 图书列表 → 响应(空列表返回[]而不是null)
func NewBookList(books []*book.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = NewBookResponse(b)
	}
	return out
}

// NewWorkbenchResponse 工作台快照 → 响应
func NewWorkbenchResponse(v inventory.View) WorkbenchResponse {
	resp := WorkbenchResponse{
		Mode:        v.Mode.Kind().String(),
		Heading:     v.Heading(),
		SubmitLabel: v.SubmitLabel(),
		Form: FormResponse{
			Title:    v.Form.Title,
			Author:   v.Form.Author,
			Genre:    v.Form.Genre.String(),
			Price:    v.Form.Price,
			Editions: newEditionList(v.Form.Editions),
		},
		EditionDraft: newDraftResponse(v.EditionDraft),
		Filter: FilterResponse{
			Genre:  v.Filter.Genre.String(),
			Author: v.Filter.Author,
		},
		Books: NewBookList(v.Books),
		Total: v.Total,
	}
	if id, ok := v.Mode.Original(); ok {
		resp.EditingID = id.String()
	}
	if v.IsEmpty() {
		resp.EmptyMessage = inventory.EmptyMessage
	}
	return resp
}

func newDraftResponse(e draft.Edition) EditionResponse {
	return NewEditionResponse(e.ToEdition())
}
