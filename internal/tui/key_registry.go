package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Priority    int
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) Help() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " | ")
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "esc", Handler: handleQuit, Description: "Quit", Priority: 100})
	r.Register(KeyBinding{Key: "enter", Handler: handleSearch, Description: "Search", Priority: 90})
	r.Register(KeyBinding{Key: "up", Handler: handleScroll, Description: "Scroll", Priority: 50})
	r.Register(KeyBinding{Key: "down", Handler: handleScroll, Priority: 50})
	r.Register(KeyBinding{Key: "pgup", Handler: handleScroll, Priority: 50})
	r.Register(KeyBinding{Key: "pgdown", Handler: handleScroll, Priority: 50})
	r.Register(KeyBinding{Key: "ctrl+r", Handler: handleExport, Description: "PDF", Priority: 40})
	r.Register(KeyBinding{Key: "ctrl+e", Handler: handleExport, Description: "HTML", Priority: 40})
	r.Register(KeyBinding{Key: "ctrl+t", Handler: handleTheme, Description: "Theme", Priority: 30})
	return r
}
