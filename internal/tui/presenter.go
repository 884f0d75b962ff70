package tui

import (
	"sync"

	"github.com/akyairhashvil/brasileirao/internal/models"
	"github.com/akyairhashvil/brasileirao/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type viewMsg struct{ view render.View }

type loadingMsg bool

// ProgramPresenter forwards presentation calls into a running Bubble Tea
// program. Calls made before Bind are dropped.
type ProgramPresenter struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewProgramPresenter() *ProgramPresenter {
	return &ProgramPresenter{}
}

// Bind attaches the presenter to a program's Send function.
func (p *ProgramPresenter) Bind(send func(tea.Msg)) {
	p.mu.Lock()
	p.send = send
	p.mu.Unlock()
}

// Present builds every card before handing the finished view to the program.
func (p *ProgramPresenter) Present(teams []models.Team) {
	p.dispatch(viewMsg{view: render.Compose(teams)})
}

func (p *ProgramPresenter) PresentMessage(text string, kind render.MessageKind) {
	p.dispatch(viewMsg{view: render.MessageView(text, kind)})
}

func (p *ProgramPresenter) SetLoading(visible bool) {
	p.dispatch(loadingMsg(visible))
}

func (p *ProgramPresenter) dispatch(msg tea.Msg) {
	p.mu.RLock()
	send := p.send
	p.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}
