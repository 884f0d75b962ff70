package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Text is a string field that tolerates any scalar on the wire.
// Strings pass through, numbers keep their literal form, and null, false,
// numeric zero or structured values decode to the empty string.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*t = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[', 'n', 'f':
		*t = ""
	case 't':
		*t = "true"
	default:
		*t = Text(numericText(string(b)))
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*t = ""
		return nil
	}
	switch node.Tag {
	case "!!null":
		*t = ""
	case "!!bool":
		var v bool
		if err := node.Decode(&v); err != nil {
			return err
		}
		if v {
			*t = "true"
		} else {
			*t = ""
		}
	case "!!int", "!!float":
		*t = Text(numericText(node.Value))
	default:
		*t = Text(node.Value)
	}
	return nil
}

func numericText(raw string) string {
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == 0 {
		return ""
	}
	return raw
}

// TextList is a sequence of Text. Anything other than a sequence decodes to nil.
type TextList []Text

// UnmarshalJSON implements json.Unmarshaler.
func (l *TextList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '[' {
		*l = nil
		return nil
	}
	var items []Text
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *TextList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		*l = nil
		return nil
	}
	var items []Text
	if err := node.Decode(&items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Strings returns the non-empty entries.
func (l TextList) Strings() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, item := range l {
		if item != "" {
			out = append(out, string(item))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Team) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		*t = Team{}
		return nil
	}
	var w teamWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*t = w.team()
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Team) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		*t = Team{}
		return nil
	}
	var w teamWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	*t = w.team()
	return nil
}
