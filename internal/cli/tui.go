package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lovedays/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.API), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
