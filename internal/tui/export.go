package tui

import (
	"fmt"
	"path/filepath"

	"github.com/akyairhashvil/brasileirao/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type exportedMsg struct {
	path string
	err  error
}

func handleExport(m Model, key string) (Model, tea.Cmd, bool) {
	format := render.FormatPDF
	if key == "ctrl+e" {
		format = render.FormatHTML
	}
	if m.view.IsEmpty() {
		m.Message = "Nothing to export yet."
		return m, nil, true
	}
	path := filepath.Join(m.exportDir, exportFileName(m, format))
	view, title, logger := m.view, m.title, m.logger
	return m, func() tea.Msg {
		err := render.WriteFile(path, format, title, view)
		if err != nil {
			logger.Error("export failed", zap.String("path", path), zap.Error(err))
		} else {
			logger.Info("export written", zap.String("path", path), zap.String("format", string(format)))
		}
		return exportedMsg{path: path, err: err}
	}, true
}

func exportFileName(m Model, format render.Format) string {
	return fmt.Sprintf("teams_%s%s", m.now().Format("20060102-150405"), format.Extension())
}

func (m Model) handleExported(msg exportedMsg) Model {
	if msg.err != nil {
		m.err = msg.err
		m.Message = ""
		return m
	}
	abs, err := filepath.Abs(msg.path)
	if err != nil {
		abs = msg.path
	}
	m.Message = "Exported: " + abs
	return m
}
