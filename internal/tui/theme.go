package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Border    lipgloss.Color
	Header    lipgloss.Style
	Input     lipgloss.Style
	Button    lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Text      lipgloss.Style
	Label     lipgloss.Style
	ListItem  lipgloss.Style
	Link      lipgloss.Style
	NoResults lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Button:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ListItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		NoResults: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true).Padding(1, 2),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Padding(1, 2),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:      "Dracula",
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Button:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		ListItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Underline(true),
		NoResults: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Italic(true).Padding(1, 2),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Padding(1, 2),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// ThemeOrder is the cycling order used by ctrl+t.
var ThemeOrder = []string{"default", "dracula"}

// ThemeByName returns the named theme, falling back to default.
func ThemeByName(name string) (string, Theme) {
	if t, ok := Themes[name]; ok {
		return name, t
	}
	return "default", Themes["default"]
}

func nextTheme(name string) string {
	for i, n := range ThemeOrder {
		if n == name {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
