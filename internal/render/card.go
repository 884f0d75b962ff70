// Package render turns team records into presentation-neutral cards and
// writes them out as plain text, HTML or PDF.
package render

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/brasileirao/internal/config"
	"github.com/akyairhashvil/brasileirao/internal/models"
)

// Card is the display form of a single team with every fallback applied.
type Card struct {
	Title        string
	Body         string
	FoundedLabel string
	Founded      string
	Examples     []string
	Link         *Link
}

// Link is an outbound link that opens in a new context without an opener reference.
type Link struct {
	URL       string
	Text      string
	AriaLabel string
	Target    string
	Rel       string
}

// BuildCard applies the per-field fallbacks to team.
func BuildCard(team models.Team) Card {
	card := Card{
		Title:        fallback(team.Name, config.FallbackName),
		Body:         fallback(team.Description, config.FallbackDescription),
		FoundedLabel: config.FoundedLabel,
		Founded:      fallback(team.FoundedYear, config.FallbackFounded),
	}
	if team.HasExamples() {
		card.Examples = append([]string(nil), team.Examples...)
	}
	if link := strings.TrimSpace(team.OfficialLink); link != "" {
		card.Link = &Link{
			URL:       link,
			Text:      config.LinkText,
			AriaLabel: fmt.Sprintf("Visit the official site of %s", card.Title),
			Target:    config.LinkTarget,
			Rel:       config.LinkRel,
		}
	}
	return card
}

// BuildCards builds one card per team, preserving order.
func BuildCards(teams []models.Team) []Card {
	cards := make([]Card, 0, len(teams))
	for _, team := range teams {
		cards = append(cards, BuildCard(team))
	}
	return cards
}

// FoundedLine is the founded-year line as drawn on a card.
func (c Card) FoundedLine() string {
	return c.FoundedLabel + " " + c.Founded
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
