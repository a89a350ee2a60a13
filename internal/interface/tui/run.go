package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiebiao/bookshelf/internal/application/inventory"
)

// Run 在当前终端运行界面，直到用户退出或ctx被取消
func Run(ctx context.Context, workbench *inventory.Workbench) error {
	m, err := New(ctx, workbench)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
