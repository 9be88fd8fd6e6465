package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/itemdetail/internal/detail"
)

// Run opens the interactive detail panel for item number.
func Run(p *detail.Presenter, load Loader, number int) error {
	m, err := New(p, load, number)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
