package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xiebiao/bookshelf/internal/application/inventory"
	"github.com/xiebiao/bookshelf/internal/domain/book"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("245"))

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("212")).
				Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))
)

// View 实现tea.Model
func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render(m.renderFilter()))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(m.renderForm()))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(m.renderBooks()))
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(okStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

const helpText = "tab/shift+tab focus • ←/→ genre • ctrl+e add edition • ctrl+s submit • ctrl+r reset • e/d edit/delete book • x remove edition • esc quit"

func (m Model) label(f focus, text string) string {
	if m.focus == f {
		return focusedLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m Model) field(f focus, text string) string {
	return m.label(f, text) + m.inputs[f].View()
}

func (m Model) genreField(f focus, text string, g book.Genre, unset string) string {
	value := g.String()
	if value == "" {
		value = unset
	}
	if m.focus == f {
		value = "‹ " + value + " ›"
	}
	return m.label(f, text) + value
}

func (m Model) renderFilter() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Filter"),
		m.field(focusFilterAuthor, "Author"),
		m.genreField(focusFilterGenre, "Genre", m.view.Filter.Genre, "All Genres"),
	)
}

func (m Model) renderForm() string {
	lines := []string{
		headingStyle.Render(m.view.Heading()),
		m.field(focusTitle, "Title"),
		m.field(focusAuthor, "Author"),
		m.genreField(focusGenre, "Genre", m.view.Form.Genre, "Select genre"),
		m.label(focusPrice, "Price") + "$" + m.inputs[focusPrice].View(),
		m.label(focusEditions, "Editions"),
	}

	if len(m.view.Form.Editions) == 0 {
		lines = append(lines, dimStyle.Render("  (none)"))
	}
	for i, e := range m.view.Form.Editions {
		line := "  " + formatEdition(e)
		if m.focus == focusEditions && i == m.editionCursor {
			line = selectedStyle.Render("> " + formatEdition(e))
		}
		lines = append(lines, line)
	}

	lines = append(lines,
		m.field(focusYear, "Year"),
		m.field(focusISBN, "ISBN"),
		buttonStyle.Render(m.view.SubmitLabel())+dimStyle.Render("  ctrl+s"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderBooks() string {
	title := headingStyle.Render(fmt.Sprintf("Books (%d of %d)", len(m.view.Books), m.view.Total))
	if m.view.IsEmpty() {
		return lipgloss.JoinVertical(lipgloss.Left, title, dimStyle.Render(inventory.EmptyMessage))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.books.View())
}
