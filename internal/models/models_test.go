package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestTeamUnmarshalJSONOriginalKeys(t *testing.T) {
	raw := `{"nome":"São Paulo","descricao":"Tricolor paulista","ano":1930,
		"exemplos":["Morumbi","Rogério Ceni"],"link":"https://www.saopaulofc.net"}`
	var got Team
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := Team{
		Name:         "São Paulo",
		Description:  "Tricolor paulista",
		FoundedYear:  "1930",
		Examples:     []string{"Morumbi", "Rogério Ceni"},
		OfficialLink: "https://www.saopaulofc.net",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("team mismatch (-want +got):\n%s", diff)
	}
}

func TestTeamUnmarshalJSONEnglishAliasesWin(t *testing.T) {
	raw := `{"name":"Palmeiras","nome":"Sociedade Esportiva Palmeiras","description":"Verdão","foundedYear":"1914"}`
	var got Team
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Name != "Palmeiras" {
		t.Fatalf("Name = %q, want Palmeiras", got.Name)
	}
	if got.Description != "Verdão" || got.FoundedYear != "1914" {
		t.Fatalf("unexpected team %+v", got)
	}
}

func TestTeamUnmarshalJSONLenientFields(t *testing.T) {
	raw := `[{"nome":null,"descricao":{"x":1},"ano":0,"exemplos":"not a list","link":false},
		{"nome":7,"exemplos":["", "Vila Belmiro"]}, null, "junk"]`
	var got []Team
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := []Team{
		{},
		{Name: "7", Examples: []string{"Vila Belmiro"}},
		{},
		{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("teams mismatch (-want +got):\n%s", diff)
	}
}

func TestDatasetRejectsNonSequence(t *testing.T) {
	var got []Team
	if err := json.Unmarshal([]byte(`{"nome":"Santos"}`), &got); err == nil {
		t.Fatalf("expected error decoding an object into a dataset")
	}
}

func TestTeamUnmarshalYAML(t *testing.T) {
	raw := `
- nome: Grêmio
  descricao: Imortal tricolor
  ano: 1903
  exemplos:
    - Arena do Grêmio
  link: https://gremio.net
- name: Corinthians
  ano: ~
  exemplos: nope
`
	var got []Team
	if err := yaml.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := []Team{
		{
			Name:         "Grêmio",
			Description:  "Imortal tricolor",
			FoundedYear:  "1903",
			Examples:     []string{"Arena do Grêmio"},
			OfficialLink: "https://gremio.net",
		},
		{Name: "Corinthians"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("teams mismatch (-want +got):\n%s", diff)
	}
}

func TestTeamHelpers(t *testing.T) {
	team := Team{Name: "Bahia"}
	if team.HasExamples() || team.HasLink() {
		t.Fatalf("expected no examples and no link")
	}
	team.Examples = []string{"Fonte Nova"}
	team.OfficialLink = "https://esporteclubebahia.com.br"
	if !team.HasExamples() || !team.HasLink() {
		t.Fatalf("expected examples and link")
	}
}
