package search

import (
	"context"

	"github.com/akyairhashvil/brasileirao/internal/models"
	"github.com/akyairhashvil/brasileirao/internal/render"
)

// Presenter is the display port the controller draws through.
// Present with an empty slice must show the no-results message.
type Presenter interface {
	Present(teams []models.Team)
	PresentMessage(text string, kind render.MessageKind)
	SetLoading(visible bool)
}

// DatasetLoader is the part of dataset.Loader the controller needs.
type DatasetLoader interface {
	Cached() ([]models.Team, bool)
	Load(ctx context.Context) ([]models.Team, error)
}
