package models

// Team is a single football team record as supplied by the dataset.
// Every field is optional; presentation applies the fallbacks.
type Team struct {
	Name         string
	Description  string
	FoundedYear  string
	Examples     []string
	OfficialLink string
}

// HasExamples reports whether the team carries a non-empty examples list.
func (t Team) HasExamples() bool {
	return len(t.Examples) > 0
}

// HasLink reports whether the team has an official link.
func (t Team) HasLink() bool {
	return t.OfficialLink != ""
}

// teamWire accepts both the dataset's original keys and their English aliases.
type teamWire struct {
	Name         Text     `json:"name" yaml:"name"`
	Nome         Text     `json:"nome" yaml:"nome"`
	Description  Text     `json:"description" yaml:"description"`
	Descricao    Text     `json:"descricao" yaml:"descricao"`
	FoundedYear  Text     `json:"foundedYear" yaml:"foundedYear"`
	Ano          Text     `json:"ano" yaml:"ano"`
	Examples     TextList `json:"examples" yaml:"examples"`
	Exemplos     TextList `json:"exemplos" yaml:"exemplos"`
	OfficialLink Text     `json:"officialLink" yaml:"officialLink"`
	Link         Text     `json:"link" yaml:"link"`
}

func (w teamWire) team() Team {
	examples := w.Examples
	if len(examples) == 0 {
		examples = w.Exemplos
	}
	return Team{
		Name:         firstText(w.Name, w.Nome),
		Description:  firstText(w.Description, w.Descricao),
		FoundedYear:  firstText(w.FoundedYear, w.Ano),
		Examples:     examples.Strings(),
		OfficialLink: firstText(w.OfficialLink, w.Link),
	}
}

func firstText(values ...Text) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}
