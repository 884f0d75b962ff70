package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/akyairhashvil/brasileirao/internal/models"
	"gopkg.in/yaml.v3"
)

// Decode parses a payload into an ordered sequence of teams.
func Decode(p Payload) ([]models.Team, error) {
	var (
		teams []models.Team
		err   error
	)
	switch p.Format {
	case FormatYAML:
		teams, err = decodeYAML(p.Body)
	default:
		teams, err = decodeJSON(p.Body)
	}
	if err != nil {
		return nil, parseErr(p.Resource, err)
	}
	return teams, nil
}

func decodeJSON(body []byte) ([]models.Team, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidFormat)
	}
	if trimmed[0] != '[' && !bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrInvalidFormat
	}
	var teams []models.Team
	if err := json.Unmarshal(trimmed, &teams); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return teams, nil
}

func decodeYAML(body []byte) ([]models.Team, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if root.Kind == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidFormat)
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.SequenceNode {
		return nil, ErrInvalidFormat
	}
	var teams []models.Team
	if err := doc.Decode(&teams); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return teams, nil
}
