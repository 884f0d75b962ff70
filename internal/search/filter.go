package search

import (
	"github.com/akyairhashvil/brasileirao/internal/models"
	"github.com/akyairhashvil/brasileirao/internal/util"
)

// Filter returns the teams whose name or description contains the query,
// ignoring case, surrounding whitespace and accents. An empty query returns
// teams unchanged. Relative order is preserved.
func Filter(teams []models.Team, rawQuery string) []models.Team {
	query := util.NormalizeSearchText(rawQuery)
	if query == "" {
		return teams
	}
	matches := make([]models.Team, 0, len(teams))
	for _, team := range teams {
		if util.ContainsFold(team.Name, query) || util.ContainsFold(team.Description, query) {
			matches = append(matches, team)
		}
	}
	return matches
}
