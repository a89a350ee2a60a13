// Package tui 书目工作台终端界面
//
// 界面只是工作台的另一种展示：每次按键转换成一个工作台事件，
// 再用事件返回的快照刷新输入框和图书表格。
//
// 模型只能在bubbletea事件循环中使用，不要在多个goroutine中访问。
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiebiao/bookshelf/internal/application/inventory"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/draft"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// focus 当前获得焦点的控件，tab按此顺序切换
type focus int

const (
	focusFilterAuthor focus = iota
	focusFilterGenre
	focusTitle
	focusAuthor
	focusGenre
	focusPrice
	focusYear
	focusISBN
	focusEditions
	focusBooks

	focusCount
)

// isText 是否为文本输入框
func (f focus) isText() bool {
	switch f {
	case focusFilterAuthor, focusTitle, focusAuthor, focusPrice, focusYear, focusISBN:
		return true
	}
	return false
}

// isNumeric 只接受数字输入的输入框
func (f focus) isNumeric() bool {
	return f == focusPrice || f == focusYear
}

// Model 终端界面模型
type Model struct {
	ctx       context.Context
	workbench *inventory.Workbench

	// 下标为focus，非文本控件对应的元素不使用
	inputs [focusCount]textinput.Model
	books  table.Model

	focus         focus
	editionCursor int

	view      inventory.View
	status    string
	statusErr bool
	quitting  bool
}

// inputWidth 输入框显示宽度
const inputWidth = 30

// New 创建终端界面模型，初始焦点在书名输入框
func New(ctx context.Context, workbench *inventory.Workbench) (Model, error) {
	v, err := workbench.View(ctx)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		ctx:       ctx,
		workbench: workbench,
		books: table.New(
			table.WithColumns([]table.Column{
				{Title: "Title", Width: 24},
				{Title: "Author", Width: 20},
				{Title: "Genre", Width: 12},
				{Title: "Price", Width: 10},
				{Title: "Editions", Width: 30},
			}),
			table.WithHeight(8),
		),
		focus: focusTitle,
	}

	placeholders := map[focus]string{
		focusFilterAuthor: "filter by author",
		focusTitle:        "title",
		focusAuthor:       "author",
		focusPrice:        "0.00",
		focusYear:         "year",
		focusISBN:         "ISBN",
	}
	for f := focus(0); f < focusCount; f++ {
		if !f.isText() {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[f]
		in.CharLimit = 200
		in.Width = inputWidth
		m.inputs[f] = in
	}
	m.inputs[focusTitle].Focus()

	m.apply(v, nil)
	return m, nil
}

// Init 实现tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update 实现tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.moveFocus(1)
		return m, nil

	case "shift+tab":
		m.moveFocus(-1)
		return m, nil

	case "ctrl+e":
		m.apply(m.workbench.AppendEdition(m.ctx))
		return m, nil

	case "ctrl+s":
		v, err := m.workbench.Submit(m.ctx)
		m.apply(v, err)
		if err == nil {
			m.setStatus("Book saved.")
		}
		return m, nil

	case "ctrl+r":
		m.apply(m.workbench.ResetForm(m.ctx))
		return m, nil
	}

	switch m.focus {
	case focusFilterGenre, focusGenre:
		return m.updateGenre(key)
	case focusEditions:
		return m.updateEditions(key)
	case focusBooks:
		return m.updateBooks(key)
	default:
		return m.updateInput(key)
	}
}

// updateGenre ←/→ 循环切换分类
func (m Model) updateGenre(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var delta int
	switch key.String() {
	case "left":
		delta = -1
	case "right":
		delta = 1
	default:
		return m, nil
	}

	if m.focus == focusFilterGenre {
		next := cycleGenre(m.view.Filter.Genre, delta)
		m.apply(m.workbench.SetFilterGenre(m.ctx, next.String()))
	} else {
		next := cycleGenre(m.view.Form.Genre, delta)
		m.apply(m.workbench.SetFormField(m.ctx, draft.FieldGenre, next.String()))
	}
	return m, nil
}

// updateEditions ↑/↓ 选择表单中的版次，x删除
func (m Model) updateEditions(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.editionCursor > 0 {
			m.editionCursor--
		}
	case "down", "j":
		if m.editionCursor < len(m.view.Form.Editions)-1 {
			m.editionCursor++
		}
	case "x":
		m.apply(m.workbench.RemoveEdition(m.ctx, m.editionCursor))
	}
	return m, nil
}

// updateBooks e编辑、d删除选中的图书，其余按键交给表格处理
func (m Model) updateBooks(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "e":
		if b := m.selectedBook(); b != nil {
			m.apply(m.workbench.Edit(m.ctx, b.ID))
			if !m.statusErr {
				m.setStatus("Editing " + b.Title + ".")
			}
		}
		return m, nil

	case "d":
		if b := m.selectedBook(); b != nil {
			v, removed, err := m.workbench.Delete(m.ctx, b.ID)
			m.apply(v, err)
			if err == nil && removed {
				m.setStatus("Book deleted.")
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.books, cmd = m.books.Update(key)
	return m, cmd
}

// updateInput 文本输入，值变化时触发对应的工作台事件
func (m Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus.isNumeric() && key.Type == tea.KeyRunes && !numeric(key.Runes) {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)

	if after := m.inputs[m.focus].Value(); after != before {
		m.apply(m.setText(m.focus, after))
	}
	return m, cmd
}

func (m *Model) setText(f focus, value string) (inventory.View, error) {
	switch f {
	case focusFilterAuthor:
		return m.workbench.SetFilterAuthor(m.ctx, value)
	case focusTitle:
		return m.workbench.SetFormField(m.ctx, draft.FieldTitle, value)
	case focusAuthor:
		return m.workbench.SetFormField(m.ctx, draft.FieldAuthor, value)
	case focusPrice:
		return m.workbench.SetFormField(m.ctx, draft.FieldPrice, value)
	case focusYear:
		return m.workbench.SetEditionField(m.ctx, draft.EditionFieldYear, value)
	case focusISBN:
		return m.workbench.SetEditionField(m.ctx, draft.EditionFieldISBN, value)
	}
	return m.view, nil
}

// apply 用事件结果刷新界面；出错时保留上一次快照并显示错误
func (m *Model) apply(v inventory.View, err error) {
	if err != nil {
		m.status = apperrors.GetAppError(err).Message
		m.statusErr = true
		return
	}
	m.status = ""
	m.statusErr = false
	m.view = v
	m.sync()
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

// sync 把快照同步到输入框、版次列表和图书表格
func (m *Model) sync() {
	values := map[focus]string{
		focusFilterAuthor: m.view.Filter.Author,
		focusTitle:        m.view.Form.Title,
		focusAuthor:       m.view.Form.Author,
		focusPrice:        m.view.Form.Price,
		focusYear:         m.view.EditionDraft.Year,
		focusISBN:         m.view.EditionDraft.ISBN,
	}
	for f, v := range values {
		if m.inputs[f].Value() != v {
			m.inputs[f].SetValue(v)
		}
	}

	if n := len(m.view.Form.Editions); m.editionCursor >= n {
		m.editionCursor = max(n-1, 0)
	}

	rows := make([]table.Row, len(m.view.Books))
	for i, b := range m.view.Books {
		rows[i] = table.Row{b.Title, b.Author, b.Genre.String(), formatPrice(b.Price), formatEditions(b.Editions)}
	}
	m.books.SetRows(rows)
	// 表格为空时光标为-1，有数据后需要拉回有效范围
	if n := len(rows); n > 0 {
		if c := m.books.Cursor(); c < 0 || c >= n {
			m.books.SetCursor(min(max(c, 0), n-1))
		}
	}
}

func (m *Model) moveFocus(delta int) {
	if m.focus.isText() {
		m.inputs[m.focus].Blur()
	}
	m.books.Blur()

	m.focus = focus((int(m.focus) + delta + int(focusCount)) % int(focusCount))

	switch {
	case m.focus.isText():
		m.inputs[m.focus].Focus()
	case m.focus == focusBooks:
		m.books.Focus()
	}
}

func (m Model) selectedBook() *book.Book {
	i := m.books.Cursor()
	if i < 0 || i >= len(m.view.Books) {
		return nil
	}
	return m.view.Books[i]
}

// cycleGenre 在"未选择"和所有分类之间循环
func cycleGenre(current book.Genre, delta int) book.Genre {
	options := append([]book.Genre{book.GenreUnset}, book.Genres()...)
	idx := 0
	for i, g := range options {
		if g == current {
			idx = i
			break
		}
	}
	return options[(idx+delta+len(options))%len(options)]
}

func numeric(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' && r != '-' {
			return false
		}
	}
	return true
}

func formatPrice(price string) string {
	return "$" + price
}

func formatEdition(e book.Edition) string {
	return e.Year + " - " + e.ISBN
}

func formatEditions(editions []book.Edition) string {
	parts := make([]string, len(editions))
	for i, e := range editions {
		parts[i] = formatEdition(e)
	}
	return strings.Join(parts, ", ")
}
