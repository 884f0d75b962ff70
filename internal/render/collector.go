package render

import (
	"sync"

	"github.com/akyairhashvil/brasileirao/internal/models"
)

// Collector is a presenter that keeps the most recent view. It backs the
// non-interactive modes, which write a single final view.
type Collector struct {
	mu      sync.Mutex
	view    View
	loading bool
	renders int
}

// Present composes teams into the current view.
func (c *Collector) Present(teams []models.Team) {
	c.set(Compose(teams))
}

// PresentMessage replaces the current view with a message.
func (c *Collector) PresentMessage(text string, kind MessageKind) {
	c.set(MessageView(text, kind))
}

// SetLoading records the loading indicator state.
func (c *Collector) SetLoading(visible bool) {
	c.mu.Lock()
	c.loading = visible
	c.mu.Unlock()
}

// View returns the most recent view.
func (c *Collector) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Loading reports whether the loading indicator is visible.
func (c *Collector) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Renders counts how many views were presented.
func (c *Collector) Renders() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renders
}

func (c *Collector) set(v View) {
	c.mu.Lock()
	c.view = v
	c.renders++
	c.mu.Unlock()
}
