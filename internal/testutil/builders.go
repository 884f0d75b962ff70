package testutil

import (
	"github.com/akyairhashvil/brasileirao/internal/models"
)

// TeamBuilder provides fluent API for creating test teams.
type TeamBuilder struct {
	team models.Team
}

func NewTeam() *TeamBuilder {
	return &TeamBuilder{
		team: models.Team{
			Name: "Test Team",
		},
	}
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

func (b *TeamBuilder) WithDescription(d string) *TeamBuilder {
	b.team.Description = d
	return b
}

func (b *TeamBuilder) WithFoundedYear(year string) *TeamBuilder {
	b.team.FoundedYear = year
	return b
}

func (b *TeamBuilder) WithExamples(examples ...string) *TeamBuilder {
	b.team.Examples = append([]string(nil), examples...)
	return b
}

func (b *TeamBuilder) WithLink(link string) *TeamBuilder {
	b.team.OfficialLink = link
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

// Brasileirao returns a small dataset with accented names, in a fixed order.
func Brasileirao() []models.Team {
	return []models.Team{
		NewTeam().WithName("Palmeiras").WithDescription("Verdão").WithFoundedYear("1914").Build(),
		NewTeam().WithName("São Paulo").WithDescription("Tricolor paulista").WithFoundedYear("1930").
			WithExamples("Morumbi").WithLink("https://www.saopaulofc.net").Build(),
		NewTeam().WithName("Corinthians").WithDescription("").Build(),
		NewTeam().WithName("Grêmio").WithDescription("Imortal tricolor").WithFoundedYear("1903").Build(),
		NewTeam().WithName("Santos").WithDescription("Peixe, casa do Rei Pelé").WithFoundedYear("1912").Build(),
	}
}
