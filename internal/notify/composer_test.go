package notify

import (
	"strings"
	"testing"

	"bot-ofertas/internal/models"
)

func sampleProduct() *models.Product {
	return &models.Product{
		ID:           7,
		AmazonURL:    "https://www.amazon.es/dp/B0ABCDE123",
		Title:        "Fone Bluetooth XYZ",
		CategoryID:   2,
		CategoryName: "Eletrônicos",
	}
}

func sampleDiscount() *models.Discount {
	return &models.Discount{
		ID:                 11,
		ProductID:          7,
		DiscountPercentage: 20,
		OriginalPrice:      "100,00€",
		DiscountedPrice:    "80,00€",
		Currency:           "€",
	}
}

func TestBuildPlainDraft(t *testing.T) {
	draft := BuildPlainDraft(sampleProduct(), sampleDiscount())

	for _, want := range []string{"Fone Bluetooth XYZ", "Eletrônicos", "-20%", "100,00€", "80,00€"} {
		if !strings.Contains(draft, want) {
			t.Errorf("rascunho não contém %q:\n%s", want, draft)
		}
	}
	if strings.Contains(draft, "amazon.es") {
		t.Error("rascunho não deve conter a URL do produto")
	}
	if strings.Contains(draft, "<b>") {
		t.Error("rascunho em texto puro não deve conter HTML")
	}
}

func TestBuildPlainDraftWithoutCategory(t *testing.T) {
	p := sampleProduct()
	p.CategoryName = ""

	draft := BuildPlainDraft(p, sampleDiscount())
	if !strings.Contains(draft, "Sem categoria") {
		t.Errorf("rascunho sem categoria deveria usar o placeholder:\n%s", draft)
	}
}

func TestRenderChannelHTMLEscapesScrapedContent(t *testing.T) {
	p := sampleProduct()
	p.Title = `Cabo <HDMI> & "4K"`

	html := RenderChannelHTML(p, sampleDiscount())

	if !strings.Contains(html, "Cabo &lt;HDMI&gt; &amp;") {
		t.Errorf("título não foi escapado:\n%s", html)
	}
	if strings.Contains(html, "<HDMI>") {
		t.Error("HTML do título vazou sem escape")
	}
	if !strings.Contains(html, `<a href="https://www.amazon.es/dp/B0ABCDE123">Ver produto</a>`) {
		t.Errorf("link do produto ausente:\n%s", html)
	}
}

func TestRenderGroupHTML(t *testing.T) {
	html := RenderGroupHTML(sampleProduct(), sampleDiscount())

	for _, want := range []string{"OFERTA ESPECIAL", "-20%", "<s>100,00€</s>", "<b>80,00€</b>"} {
		if !strings.Contains(html, want) {
			t.Errorf("mensagem de grupo não contém %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "amazon.es") {
		t.Error("mensagem de grupo não deve conter a URL no corpo")
	}
}

func TestStripAILinks(t *testing.T) {
	text := "🔥 Oferta incrível!\n\n🔗 Link do produto: https://www.amazon.es/dp/B0ABCDE123\n\n💰 Só hoje"

	got := stripAILinks(text)

	if strings.Contains(got, "amazon.es") {
		t.Errorf("link textual não foi removido:\n%s", got)
	}
	if !strings.Contains(got, "Oferta incrível") || !strings.Contains(got, "Só hoje") {
		t.Errorf("conteúdo legítimo foi perdido:\n%s", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("linhas em branco não foram compactadas:\n%q", got)
	}
}

func TestEscapeHTML(t *testing.T) {
	if got := escapeHTML(`a & b < c > d`); got != "a &amp; b &lt; c &gt; d" {
		t.Errorf("escapeHTML = %q", got)
	}
}
