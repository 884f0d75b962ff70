package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/brasileirao/internal/config"
	"github.com/akyairhashvil/brasileirao/internal/render"
	"github.com/akyairhashvil/brasileirao/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const buttonLabel = "Search"

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderSearchRow())
	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.spinner.View() + " " + m.theme.Dim.Render(config.LoadingMessage))
		b.WriteString("\n")
	}
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTitle() string {
	return m.theme.Header.Render(m.title + " · team search")
}

func (m Model) renderInput() string {
	return m.theme.Input.Render(m.input.View())
}

func (m Model) renderButton() string {
	return m.theme.Button.Render(buttonLabel)
}

func (m Model) renderSearchRow() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderInput(), " ", m.renderButton())
}

// searchButtonBounds returns the inclusive cell rectangle of the search button.
func (m Model) searchButtonBounds() (x0, y0, x1, y1 int) {
	button := m.renderButton()
	x0 = lipgloss.Width(m.renderInput()) + 1
	y0 = lipgloss.Height(m.renderTitle())
	return x0, y0, x0 + lipgloss.Width(button) - 1, y0 + lipgloss.Height(button) - 1
}

func (m Model) inSearchButton(x, y int) bool {
	x0, y0, x1, y1 := m.searchButtonBounds()
	return x >= x0 && x <= x1 && y >= y0 && y <= y1
}

func (m Model) renderResults() string {
	if m.view.Message != nil {
		style := m.theme.NoResults
		if m.view.Message.Kind == render.KindError {
			style = m.theme.Error
		}
		return style.Render(m.view.Message.Text)
	}
	if len(m.view.Cards) == 0 {
		return ""
	}
	rows := m.cardRows()
	start := m.clampOffset(m.rowOffset)
	end := start + m.visibleRows()
	if end > len(rows) {
		end = len(rows)
	}
	out := strings.Join(rows[start:end], "\n")
	if start > 0 || end < len(rows) {
		out += "\n" + m.theme.Dim.Render(fmt.Sprintf("rows %d-%d of %d · %d teams", start+1, end, len(rows), len(m.view.Cards)))
	}
	return out
}

func (m Model) renderFooter() string {
	var status string
	switch {
	case m.err != nil:
		status = m.theme.Error.UnsetPadding().Render(fmt.Sprintf("Error: %v", m.err))
	case m.Message != "":
		status = m.theme.Focused.Render(m.Message)
	}
	help := m.theme.Dim.Render(truncateLabel(m.keys.Help(), m.width))
	if status == "" {
		return help
	}
	return status + "\n" + help
}

// gridLayout returns the card width and the number of columns for the current width.
func (m Model) gridLayout() (cardWidth, cols int) {
	width := m.width
	if width <= 0 {
		width = config.DefaultWidth
	}
	cardWidth = config.CardWidth
	if width < cardWidth {
		cardWidth = width
		if cardWidth < config.MinCardWidth {
			cardWidth = config.MinCardWidth
		}
	}
	cols = (width + config.CardGap) / (cardWidth + config.CardGap)
	if cols < 1 {
		cols = 1
	}
	return cardWidth, cols
}

func (m Model) cardRows() []string {
	cardWidth, cols := m.gridLayout()
	gap := strings.Repeat(" ", config.CardGap)
	var rows []string
	for i := 0; i < len(m.view.Cards); i += cols {
		end := i + cols
		if end > len(m.view.Cards) {
			end = len(m.view.Cards)
		}
		parts := make([]string, 0, 2*(end-i))
		for j := i; j < end; j++ {
			if j > i {
				parts = append(parts, gap)
			}
			parts = append(parts, m.renderCard(m.view.Cards[j], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return rows
}

func (m Model) renderCard(card render.Card, width int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	lines := []string{
		m.theme.CardTitle.Render(truncateLabel(card.Title, inner)),
		m.theme.Text.Render(ansi.Wrap(card.Body, inner, "")),
		m.theme.Label.Render(card.FoundedLabel) + " " + m.theme.Text.Render(card.Founded),
	}
	if len(card.Examples) > 0 {
		shown := card.Examples
		if len(shown) > config.MaxExamplesDisplayed {
			shown = shown[:config.MaxExamplesDisplayed]
		}
		for _, example := range shown {
			lines = append(lines, m.theme.ListItem.Render(truncateLabel("• "+example, inner)))
		}
		if extra := len(card.Examples) - len(shown); extra > 0 {
			lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("  +%d more", extra)))
		}
	}
	if card.Link != nil {
		lines = append(lines, hyperlink(card.Link.URL, m.theme.Link.Render(card.Link.Text+" ↗")))
	}
	return m.theme.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// hyperlink wraps text in an OSC 8 hyperlink; the terminal opens it externally.
func hyperlink(url, text string) string {
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

func (m Model) visibleRows() int {
	if m.height <= 0 {
		return 1 << 16
	}
	cardHeight := 7
	if rows := m.cardRows(); len(rows) > 0 {
		cardHeight = lipgloss.Height(rows[0])
	}
	used := lipgloss.Height(m.renderTitle()) + lipgloss.Height(m.renderSearchRow()) + 3
	if m.loading {
		used++
	}
	n := (m.height - used) / cardHeight
	if n < 1 {
		return 1
	}
	return n
}

func (m Model) clampOffset(offset int) int {
	total := 0
	if len(m.view.Cards) > 0 {
		_, cols := m.gridLayout()
		total = (len(m.view.Cards) + cols - 1) / cols
	}
	last := total - m.visibleRows()
	if last < 0 {
		last = 0
	}
	return util.Clamp(offset, 0, last)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
