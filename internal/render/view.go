package render

import (
	"fmt"

	"github.com/akyairhashvil/brasileirao/internal/config"
	"github.com/akyairhashvil/brasileirao/internal/models"
)

// MessageKind is the style class of a message shown in place of cards.
type MessageKind string

const (
	KindNoResults MessageKind = "no-results"
	KindError     MessageKind = "error-message"
)

// Message replaces the card grid.
type Message struct {
	Text string
	Kind MessageKind
}

// View is the complete content of the results container: either cards or one message.
type View struct {
	Cards   []Card
	Message *Message
}

// Compose renders teams into a View. An empty input yields the no-results message.
func Compose(teams []models.Team) View {
	if len(teams) == 0 {
		return MessageView(config.NoResultsMessage, KindNoResults)
	}
	return View{Cards: BuildCards(teams)}
}

// MessageView returns a View holding only a message.
func MessageView(text string, kind MessageKind) View {
	return View{Message: &Message{Text: text, Kind: kind}}
}

// LoadErrorView is the user-facing view for a dataset that failed to load.
func LoadErrorView(resource string) View {
	return MessageView(fmt.Sprintf(config.LoadErrorFormat, resource), KindError)
}

// IsEmpty reports whether the view has neither cards nor a message.
func (v View) IsEmpty() bool {
	return len(v.Cards) == 0 && v.Message == nil
}
