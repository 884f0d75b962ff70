package search

import (
	"testing"

	"github.com/akyairhashvil/brasileirao/internal/models"
	"github.com/akyairhashvil/brasileirao/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func names(teams []models.Team) []string {
	out := make([]string, 0, len(teams))
	for _, team := range teams {
		out = append(out, team.Name)
	}
	return out
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	teams := testutil.Brasileirao()
	for _, q := range []string{"", "   ", "\t\n"} {
		got := Filter(teams, q)
		if diff := cmp.Diff(teams, got); diff != "" {
			t.Fatalf("Filter(%q) changed dataset (-want +got):\n%s", q, diff)
		}
	}
}

func TestFilterAccentAndCaseInsensitive(t *testing.T) {
	teams := testutil.Brasileirao()
	cases := []struct {
		query string
		want  []string
	}{
		{query: "sao paulo", want: []string{"São Paulo"}},
		{query: "SÃO PAULO", want: []string{"São Paulo"}},
		{query: "verdao", want: []string{"Palmeiras"}},
		{query: "  gremio ", want: []string{"Grêmio"}},
		{query: "tricolor", want: []string{"São Paulo", "Grêmio"}},
		{query: "pele", want: []string{"Santos"}},
		{query: "flamengo", want: []string{}},
	}
	for _, tc := range cases {
		got := names(Filter(teams, tc.query))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Filter(%q) mismatch (-want +got):\n%s", tc.query, diff)
		}
	}
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	teams := testutil.Brasileirao()
	for _, q := range []string{"a", "o", "tri", "s", "zzz", "ç"} {
		got := Filter(teams, q)
		j := 0
		for _, team := range got {
			for j < len(teams) && teams[j].Name != team.Name {
				j++
			}
			if j == len(teams) {
				t.Fatalf("Filter(%q) is not an ordered subsequence: %v", q, names(got))
			}
			j++
		}
	}
}

func TestFilterMissingFieldsNeverMatchOrFail(t *testing.T) {
	teams := []models.Team{{}, {Description: "Clube do Remo"}, {Name: "Paysandu"}}
	got := names(Filter(teams, "remo"))
	if diff := cmp.Diff([]string{""}, got); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	teams := testutil.Brasileirao()
	before := testutil.Brasileirao()
	_ = Filter(teams, "santos")
	if diff := cmp.Diff(before, teams); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}
