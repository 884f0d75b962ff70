package tui

import (
	"github.com/akyairhashvil/brasileirao/internal/config"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = inputWidthFor(msg.Width)
		m.rowOffset = m.clampOffset(m.rowOffset)
		return m, nil
	case viewMsg:
		m.view = msg.view
		m.rowOffset = 0
		return m, nil
	case loadingMsg:
		m.loading = bool(msg)
		return m, nil
	case exportedMsg:
		return m.handleExported(msg), nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear transient messages on keypress
	m.Message = ""
	m.err = nil

	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != prev {
		m.searcher.Input(m.ctx, value)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.inSearchButton(msg.X, msg.Y) {
			return m, m.searchCmd()
		}
	case msg.Button == tea.MouseButtonWheelUp:
		m.rowOffset = m.clampOffset(m.rowOffset - 1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.rowOffset = m.clampOffset(m.rowOffset + 1)
	}
	return m, nil
}

func handleQuit(m Model, key string) (Model, tea.Cmd, bool) {
	m.searcher.Close()
	return m, tea.Quit, true
}

func handleSearch(m Model, key string) (Model, tea.Cmd, bool) {
	return m, m.searchCmd(), true
}

func handleScroll(m Model, key string) (Model, tea.Cmd, bool) {
	step := 1
	if key == "pgup" || key == "pgdown" {
		step = m.visibleRows()
	}
	if key == "up" || key == "pgup" {
		step = -step
	}
	m.rowOffset = m.clampOffset(m.rowOffset + step)
	return m, nil, true
}

func handleTheme(m Model, key string) (Model, tea.Cmd, bool) {
	m.themeName, m.theme = ThemeByName(nextTheme(m.themeName))
	m.spinner.Style = m.theme.Focused
	m.Message = "Theme: " + m.theme.Name
	return m, nil, true
}

func inputWidthFor(width int) int {
	w := width - 20
	if w > config.InputWidth {
		return config.InputWidth
	}
	if w < 10 {
		return 10
	}
	return w
}
