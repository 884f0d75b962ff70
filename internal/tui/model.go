package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/brasileirao/internal/config"
	"github.com/akyairhashvil/brasileirao/internal/render"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Searcher is the controller surface the UI drives.
type Searcher interface {
	Start(ctx context.Context)
	Search(ctx context.Context, query string)
	Input(ctx context.Context, query string)
	Close()
}

// Options configures a Model.
type Options struct {
	Theme     string
	ExportDir string
	Title     string
	Logger    *zap.Logger
}

// Model is the root bubbletea model: a search field, a button and the card grid.
type Model struct {
	ctx       context.Context
	searcher  Searcher
	keys      *HandlerRegistry
	input     textinput.Model
	spinner   spinner.Model
	loading   bool
	view      render.View
	rowOffset int
	themeName string
	theme     Theme
	exportDir string
	title     string
	logger    *zap.Logger
	now       func() time.Time
	Message   string
	err       error
	width     int
	height    int
}

func NewModel(ctx context.Context, searcher Searcher, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name or description..."
	ti.CharLimit = config.MaxQueryLength
	ti.Width = config.InputWidth
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	name, theme := ThemeByName(opts.Theme)
	sp.Style = theme.Focused

	if opts.Title == "" {
		opts.Title = "Brasileirão 2025"
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return Model{
		ctx:       ctx,
		searcher:  searcher,
		keys:      defaultRegistry(),
		input:     ti,
		spinner:   sp,
		themeName: name,
		theme:     theme,
		exportDir: opts.ExportDir,
		title:     opts.Title,
		logger:    opts.Logger,
		now:       time.Now,
		width:     config.DefaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.startCmd())
}

func (m Model) startCmd() tea.Cmd {
	ctx, searcher := m.ctx, m.searcher
	return func() tea.Msg {
		searcher.Start(ctx)
		return nil
	}
}

func (m Model) searchCmd() tea.Cmd {
	ctx, searcher, query := m.ctx, m.searcher, m.input.Value()
	return func() tea.Msg {
		searcher.Search(ctx, query)
		return nil
	}
}

// View state accessors, used by the program wiring and tests.
func (m Model) Loading() bool { return m.loading }
func (m Model) Current() render.View { return m.view }
func (m Model) Query() string { return m.input.Value() }
func (m Model) ThemeName() string { return m.themeName }
