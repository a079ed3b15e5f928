package notify

import (
	"fmt"
	"regexp"
	"strings"

	"bot-ofertas/internal/models"
)

var (
	aiLinkRe     = regexp.MustCompile(`🔗\s*[Ll]ink(?:\s+do)?(?:\s+produto)?\s*:\s*\S+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// Draft é o resultado do compositor de notificações, consumido de forma
// uniforme pelo envio: texto final, foto opcional e o texto da IA a ser
// persistido para republicação fiel.
type Draft struct {
	Text     string // texto final em HTML mostrado aos revisores
	Improved string // texto gerado pela IA, vazio quando não houve melhoria
	PhotoURL string
}

// escapeHTML escapa caracteres especiais do HTML. Todo conteúdo vindo de
// scraping passa por aqui antes de ser interpolado em mensagens, para não
// quebrar a formatação.
func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// BuildPlainDraft monta o rascunho em texto puro enviado ao modelo de
// linguagem. Sem link: a URL entra apenas pelo botão de compra.
func BuildPlainDraft(p *models.Product, d *models.Discount) string {
	category := p.CategoryName
	if category == "" {
		category = "Sem categoria"
	}

	var sb strings.Builder
	sb.WriteString("🔥 NOVO DESCONTO DETECTADO 🔥\n\n")
	sb.WriteString(fmt.Sprintf("📦 %s\n\n", p.Title))
	sb.WriteString(fmt.Sprintf("📂 Categoria: %s\n", category))
	sb.WriteString(fmt.Sprintf("💰 Desconto: -%d%%\n", d.DiscountPercentage))
	sb.WriteString(fmt.Sprintf("💲 Preço original: %s\n", d.OriginalPrice))
	sb.WriteString(fmt.Sprintf("💲 Preço com desconto: %s", d.DiscountedPrice))
	return sb.String()
}

// RenderChannelHTML é a renderização padrão da notificação no canal de
// aprovação, usada quando a IA não alterou o rascunho
func RenderChannelHTML(p *models.Product, d *models.Discount) string {
	category := p.CategoryName
	if category == "" {
		category = "Sem categoria"
	}

	var sb strings.Builder
	sb.WriteString("🔥 <b>NOVO DESCONTO DETECTADO</b> 🔥\n\n")
	sb.WriteString(fmt.Sprintf("📦 <b>%s</b>\n\n", escapeHTML(p.Title)))
	sb.WriteString(fmt.Sprintf("📂 Categoria: <b>%s</b>\n", escapeHTML(category)))
	sb.WriteString(fmt.Sprintf("💰 Desconto: <b>-%d%%</b>\n", d.DiscountPercentage))
	sb.WriteString(fmt.Sprintf("💲 Preço original: <s>%s</s>\n", escapeHTML(d.OriginalPrice)))
	sb.WriteString(fmt.Sprintf("💲 Preço com desconto: <b>%s</b>\n\n", escapeHTML(d.DiscountedPrice)))
	sb.WriteString(fmt.Sprintf("🔗 <a href=\"%s\">Ver produto</a>", p.AmazonURL))
	return sb.String()
}

// RenderGroupHTML é a renderização padrão da oferta publicada no grupo
// da categoria
func RenderGroupHTML(p *models.Product, d *models.Discount) string {
	var sb strings.Builder
	sb.WriteString("🔥 <b>OFERTA ESPECIAL</b> 🔥\n\n")
	sb.WriteString(fmt.Sprintf("📦 <b>%s</b>\n\n", escapeHTML(p.Title)))
	sb.WriteString(fmt.Sprintf("💰 Desconto: <b>-%d%%</b>\n", d.DiscountPercentage))
	sb.WriteString(fmt.Sprintf("💲 Preço original: <s>%s</s>\n", escapeHTML(d.OriginalPrice)))
	sb.WriteString(fmt.Sprintf("💲 Preço com desconto: <b>%s</b>\n\n", escapeHTML(d.DiscountedPrice)))
	sb.WriteString("⚡️ <i>Oferta por tempo limitado</i>")
	return sb.String()
}

// stripAILinks remove links textuais que o modelo às vezes inventa no corpo
// da mensagem (a URL real entra só pelo botão de compra)
func stripAILinks(text string) string {
	text = aiLinkRe.ReplaceAllString(text, "")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
