package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/application/inventory"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

func newTestModel(t *testing.T) (Model, *inventory.Workbench) {
	t.Helper()

	svc := book.NewService(memory.NewBookRepository(), book.NewSequenceGenerator())
	wb := inventory.NewWorkbench(svc, logger.Discard())
	m, err := New(context.Background(), wb)
	require.NoError(t, err)
	return m, wb
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyEd    = tea.KeyMsg{Type: tea.KeyCtrlE}
	keyReset = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// focusOn 用tab把焦点移到指定控件
func focusOn(t *testing.T, m Model, f focus) Model {
	t.Helper()
	for i := 0; m.focus != f && i < int(focusCount); i++ {
		m = press(t, m, keyTab)
	}
	require.Equal(t, f, m.focus)
	return m
}

// fillBook 填写并提交表单
func fillBook(t *testing.T, m Model, title, author string, genreSteps int, price string) Model {
	t.Helper()

	m = focusOn(t, m, focusTitle)
	m = typeText(t, m, title)
	m = focusOn(t, m, focusAuthor)
	m = typeText(t, m, author)
	m = focusOn(t, m, focusGenre)
	for i := 0; i < genreSteps; i++ {
		m = press(t, m, keyRight)
	}
	m = focusOn(t, m, focusPrice)
	m = typeText(t, m, price)
	return press(t, m, keySave)
}

func TestNew(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, focusTitle, m.focus)
	assert.Contains(t, m.View(), inventory.HeadingCreate)
	assert.Contains(t, m.View(), inventory.EmptyMessage)
}

func TestModel_AddAndEdit(t *testing.T) {
	m, wb := newTestModel(t)

	// Fiction是第一个分类
	m = fillBook(t, m, "A", "X", 1, "10")
	require.False(t, m.statusErr, m.status)
	require.Len(t, m.view.Books, 1)
	assert.Equal(t, book.GenreFiction, m.view.Books[0].Genre)
	assert.Empty(t, m.inputs[focusTitle].Value(), "提交后输入框应被清空")
	assert.Contains(t, m.View(), "$10")

	// 在表格中按e进入编辑
	m = focusOn(t, m, focusBooks)
	m = press(t, m, runeKey('e'))
	assert.True(t, m.view.Mode.IsEdit())
	assert.Equal(t, "A", m.inputs[focusTitle].Value())
	assert.Contains(t, m.View(), inventory.HeadingEdit)
	assert.Contains(t, m.View(), inventory.SubmitLabelEdit)

	// 追加版次
	m = focusOn(t, m, focusYear)
	m = typeText(t, m, "2000")
	m = focusOn(t, m, focusISBN)
	m = typeText(t, m, "111")
	m = press(t, m, keyEd)
	require.Len(t, m.view.Form.Editions, 1)
	assert.Empty(t, m.inputs[focusYear].Value())
	assert.Contains(t, m.View(), "2000 - 111")

	// 修改价格并提交
	m = focusOn(t, m, focusPrice)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "12")
	m = press(t, m, keySave)
	require.False(t, m.statusErr, m.status)

	books, err := wb.List(context.Background(), book.Filter{})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, book.ID("1"), books[0].ID)
	assert.Equal(t, "12", books[0].Price)
	assert.Equal(t, []book.Edition{{Year: "2000", ISBN: "111"}}, books[0].Editions)
	assert.False(t, m.view.Mode.IsEdit())
}

func TestModel_SubmitMissingFields(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(t, m, "Only title")
	m = press(t, m, keySave)

	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "author")
	assert.Equal(t, "Only title", m.inputs[focusTitle].Value(), "拒绝提交时表单保持不变")
	assert.Zero(t, m.view.Total)
}

func TestModel_NumericInput(t *testing.T) {
	m, _ := newTestModel(t)
	m = focusOn(t, m, focusPrice)

	m = typeText(t, m, "1a2.5b")
	assert.Equal(t, "12.5", m.inputs[focusPrice].Value())
	assert.Equal(t, "12.5", m.view.Form.Price)
}

func TestModel_GenreCycle(t *testing.T) {
	m, _ := newTestModel(t)
	m = focusOn(t, m, focusGenre)

	m = press(t, m, keyLeft)
	assert.Equal(t, book.GenreFantasy, m.view.Form.Genre, "从未选择向左循环到最后一个分类")

	m = press(t, m, keyRight)
	assert.Equal(t, book.GenreUnset, m.view.Form.Genre)

	assert.Equal(t, book.GenreNonFiction, cycleGenre(book.GenreFiction, 1))
	assert.Equal(t, book.GenreUnset, cycleGenre(book.GenreFiction, -1))
}

func TestModel_Filter(t *testing.T) {
	m, _ := newTestModel(t)
	m = fillBook(t, m, "Dune", "Herbert", 3, "10")   // Sci-Fi
	m = fillBook(t, m, "Hobbit", "Tolkien", 4, "12") // Fantasy
	require.Len(t, m.view.Books, 2)

	m = focusOn(t, m, focusFilterAuthor)
	m = typeText(t, m, "tol")
	require.Len(t, m.view.Books, 1)
	assert.Equal(t, "Hobbit", m.view.Books[0].Title)

	m = focusOn(t, m, focusFilterGenre)
	m = press(t, m, keyRight) // Fiction
	assert.True(t, m.view.IsEmpty())
	assert.Contains(t, m.View(), inventory.EmptyMessage)
	assert.Contains(t, m.View(), "Books (0 of 2)")
}

func TestModel_DeleteBook(t *testing.T) {
	m, _ := newTestModel(t)
	m = fillBook(t, m, "A", "X", 1, "10")
	m = fillBook(t, m, "B", "Y", 1, "20")

	m = focusOn(t, m, focusBooks)
	m = press(t, m, keyDown, runeKey('d'))

	require.Len(t, m.view.Books, 1)
	assert.Equal(t, "A", m.view.Books[0].Title)
	assert.Equal(t, "Book deleted.", m.status)
}

func TestModel_RemoveEdition(t *testing.T) {
	m, _ := newTestModel(t)

	for _, year := range []string{"2001", "2002", "2003"} {
		m = focusOn(t, m, focusYear)
		m = typeText(t, m, year)
		m = press(t, m, keyEd)
	}
	require.Len(t, m.view.Form.Editions, 3)

	m = focusOn(t, m, focusEditions)
	m = press(t, m, keyDown, runeKey('x'))
	require.Len(t, m.view.Form.Editions, 2)
	assert.Equal(t, "2001", m.view.Form.Editions[0].Year)
	assert.Equal(t, "2003", m.view.Form.Editions[1].Year)

	// 删除最后一个后光标回到有效范围
	m = press(t, m, keyDown, runeKey('x'))
	require.Len(t, m.view.Form.Editions, 1)
	assert.Equal(t, 0, m.editionCursor)
}

func TestModel_ResetAndQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "draft")
	m = press(t, m, keyReset)
	assert.Empty(t, m.inputs[focusTitle].Value())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, "Bye.\n", next.View())
}

func TestModel_FirstRowSelected(t *testing.T) {
	t.Run("第一本图书加入后直接删除", func(t *testing.T) {
		m, wb := newTestModel(t)
		m = fillBook(t, m, "Only", "X", 1, "10")
		require.Len(t, m.view.Books, 1)
		assert.Equal(t, 0, m.books.Cursor())

		m = focusOn(t, m, focusBooks)
		m = press(t, m, runeKey('d'))

		assert.Empty(t, m.view.Books)
		assert.Equal(t, "Book deleted.", m.status)
		books, err := wb.List(context.Background(), book.Filter{})
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("第一本图书加入后直接编辑", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = fillBook(t, m, "Only", "X", 1, "10")

		m = focusOn(t, m, focusBooks)
		m = press(t, m, runeKey('e'))

		assert.True(t, m.view.Mode.IsEdit())
		assert.Equal(t, "Only", m.inputs[focusTitle].Value())
	})

	t.Run("过滤为空后恢复", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = fillBook(t, m, "Dune", "Herbert", 3, "10")

		m = focusOn(t, m, focusFilterAuthor)
		m = typeText(t, m, "zzz")
		require.Empty(t, m.view.Books)
		m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
		require.Len(t, m.view.Books, 1)

		m = focusOn(t, m, focusBooks)
		m = press(t, m, runeKey('d'))
		assert.Empty(t, m.view.Books)
	})
}

func TestModel_Placeholders(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "filter by author")
	assert.Contains(t, out, "author")
	assert.Contains(t, out, "year")
}
