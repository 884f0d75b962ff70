package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akyairhashvil/brasileirao/internal/config"
	"github.com/akyairhashvil/brasileirao/internal/models"
)

func TestComposeEmptyShowsNoResults(t *testing.T) {
	for _, teams := range [][]models.Team{nil, {}} {
		v := Compose(teams)
		if len(v.Cards) != 0 {
			t.Fatalf("expected zero cards, got %d", len(v.Cards))
		}
		if v.Message == nil || v.Message.Kind != KindNoResults {
			t.Fatalf("expected no-results message, got %+v", v.Message)
		}
		if v.Message.Text != config.NoResultsMessage {
			t.Fatalf("Message.Text = %q", v.Message.Text)
		}
	}
}

func TestComposeCards(t *testing.T) {
	v := Compose([]models.Team{{Name: "Palmeiras", FoundedYear: "1914"}})
	if v.Message != nil {
		t.Fatalf("expected no message, got %+v", v.Message)
	}
	if len(v.Cards) != 1 || v.Cards[0].Title != "Palmeiras" || v.Cards[0].Founded != "1914" {
		t.Fatalf("unexpected cards %+v", v.Cards)
	}
}

func TestLoadErrorViewNamesResource(t *testing.T) {
	v := LoadErrorView("dados.json")
	if v.Message == nil || v.Message.Kind != KindError {
		t.Fatalf("expected error message, got %+v", v.Message)
	}
	if !strings.Contains(v.Message.Text, "dados.json") {
		t.Fatalf("message should name the resource: %q", v.Message.Text)
	}
}

func TestWriteTextCorinthiansFallbacks(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, Compose([]models.Team{{Name: "Corinthians"}})); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	want := "Corinthians\nno description available\nFounded in: not informed\n"
	if buf.String() != want {
		t.Fatalf("WriteText = %q, want %q", buf.String(), want)
	}
}

func TestWriteTextMessage(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, Compose(nil)); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "[no-results] ") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteHTMLHardensLinks(t *testing.T) {
	var buf bytes.Buffer
	teams := []models.Team{
		{Name: "Grêmio", Examples: []string{"Arena"}, OfficialLink: "https://gremio.net"},
		{Name: "Evil", OfficialLink: "javascript:alert(1)"},
		{Name: "Bahia"},
	}
	if err := WriteHTML(&buf, "Times", Compose(teams)); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`target="_blank"`,
		`rel="noopener noreferrer"`,
		`aria-label="Visit the official site of Grêmio"`,
		`<li class="cartao__item">Arena</li>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("HTML missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "javascript:") {
		t.Fatalf("unsafe URL was not sanitized:\n%s", out)
	}
	if got := strings.Count(out, "<ul"); got != 1 {
		t.Fatalf("expected exactly one list, got %d", got)
	}
	if got := strings.Count(out, "<article"); got != 3 {
		t.Fatalf("expected 3 cards, got %d", got)
	}
}

func TestWriteHTMLNoResults(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, "Times", Compose(nil)); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	out := buf.String()
	if strings.Count(out, `class="no-results"`) != 1 || strings.Contains(out, "<article") {
		t.Fatalf("expected a single no-results message:\n%s", out)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	teams := []models.Team{{Name: "São Paulo", Examples: []string{"Morumbi"}, OfficialLink: "https://www.saopaulofc.net"}}
	if err := WritePDF(&buf, "Brasileirão 2025", Compose(teams)); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestCollectorKeepsLatestView(t *testing.T) {
	var c Collector
	c.SetLoading(true)
	if !c.Loading() {
		t.Fatalf("expected loading")
	}
	c.Present([]models.Team{{Name: "Vitória"}})
	c.PresentMessage("boom", KindError)
	if c.Renders() != 2 {
		t.Fatalf("Renders = %d, want 2", c.Renders())
	}
	if v := c.View(); v.Message == nil || v.Message.Kind != KindError {
		t.Fatalf("expected error view, got %+v", v)
	}
}
