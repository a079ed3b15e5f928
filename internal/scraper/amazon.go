package scraper

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/corpix/uarand"
)

// fallbackTitle é usado quando a página não expõe um título utilizável
const fallbackTitle = "Produto Amazon"

var (
	amazonURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^https?://(?:www\.)?amazon\.[a-z]{2,3}(?:\.[a-z]{2})?/`),
		regexp.MustCompile(`(?i)^https?://(?:www\.)?amzn\.to/`),
		regexp.MustCompile(`(?i)^https?://(?:www\.)?a\.co/`),
	}

	percentageRe = regexp.MustCompile(`-(\d+)%`)
	// Preço no formato local, ex: "139,90€" ou "1.299,00 €"
	priceRe = regexp.MustCompile(`(\d+(?:[.,]\d+)*)\s*€`)
	asinRe  = regexp.MustCompile(`/dp/([A-Z0-9]{10})`)
)

// AmazonScraper extrai título, imagem e marcadores de desconto de páginas
// de produto da Amazon
type AmazonScraper struct {
	client         *http.Client
	acceptLanguage string
}

// NewAmazonScraper cria uma nova instância do scraper da Amazon
func NewAmazonScraper(acceptLanguage string) *AmazonScraper {
	return &AmazonScraper{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		acceptLanguage: acceptLanguage,
	}
}

// CanHandle verifica se o scraper pode lidar com a URL fornecida
func (a *AmazonScraper) CanHandle(url string) bool {
	for _, pattern := range amazonURLPatterns {
		if pattern.MatchString(url) {
			return true
		}
	}
	return false
}

// Scrape busca a página do produto e extrai título, imagem e desconto.
// Cada requisição apresenta um User-Agent de navegador aleatório.
func (a *AmazonScraper) Scrape(url string) (*Result, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", uarand.GetRandom())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", a.acceptLanguage)
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na requisição HTTP: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao parsear página: %v", err)
	}

	return a.extract(doc, url), nil
}

// extract deriva o Result a partir do documento já parseado
func (a *AmazonScraper) extract(doc *goquery.Document, url string) *Result {
	result := &Result{
		Title:    extractTitle(doc, url),
		ImageURL: extractImage(doc),
		Currency: "€",
	}

	percentage, ok := extractPercentage(doc)
	if !ok {
		// Sem marcador de desconto: retorna mesmo assim título e imagem
		return result
	}

	discountedPrice, okDiscounted := extractPrice(doc, "span.priceToPay")
	originalPrice, okOriginal := extractPrice(doc, "span.basisPrice")

	// Só é um desconto de verdade quando os dois preços foram extraídos
	if okDiscounted && okOriginal {
		result.HasDiscount = true
		result.DiscountPercentage = percentage
		result.DiscountedPrice = discountedPrice
		result.OriginalPrice = originalPrice
	} else {
		log.Printf("Desconto ignorado para %s: preço original=%q, preço com desconto=%q", url, originalPrice, discountedPrice)
	}

	return result
}

// extractTitle busca o título no meta title, depois no elemento da página
// e por último recorre ao ASIN presente na própria URL
func extractTitle(doc *goquery.Document, url string) string {
	if content, exists := doc.Find(`meta[name="title"]`).Attr("content"); exists {
		if title := cleanTitle(content); title != "" {
			return title
		}
	}

	if title := cleanTitle(doc.Find("span#productTitle").First().Text()); title != "" {
		return title
	}

	return TitleFromURL(url)
}

// cleanTitle remove o sufixo " - Amazon.xx" e espaços sobrando
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	if idx := regexp.MustCompile(`\s*-\s*Amazon\.[a-z]{2,3}.*$`).FindStringIndex(title); idx != nil {
		title = title[:idx[0]]
	}
	return strings.TrimSpace(title)
}

// TitleFromURL deriva um título de fallback a partir do ASIN na URL,
// para nunca deixar um produto sem identificação
func TitleFromURL(url string) string {
	if match := asinRe.FindStringSubmatch(url); match != nil {
		return fmt.Sprintf("%s (%s)", fallbackTitle, match[1])
	}
	return fallbackTitle
}

// extractImage busca a imagem principal do produto
func extractImage(doc *goquery.Document) string {
	img := doc.Find("img#landingImage").First()
	if src, exists := img.Attr("src"); exists && src != "" {
		return src
	}
	// Fallback: imagem em alta resolução
	if hires, exists := img.Attr("data-old-hires"); exists && hires != "" {
		return hires
	}
	return ""
}

// extractPercentage busca o marcador de porcentagem de desconto
func extractPercentage(doc *goquery.Document) (int, bool) {
	percentage := 0
	found := false

	doc.Find("span.savingsPercentage").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if match := percentageRe.FindStringSubmatch(text); match != nil {
			if value, err := strconv.Atoi(match[1]); err == nil && value > 0 {
				percentage = value
				found = true
				return false
			}
		}
		return true
	})

	return percentage, found
}

// extractPrice extrai um preço formatado (valor + símbolo de moeda) do
// primeiro elemento que casa com o seletor. O valor é mantido como string
// formatada: a comparação de mudança é por igualdade exata, não numérica.
func extractPrice(doc *goquery.Document, selector string) (string, bool) {
	price := ""

	doc.Find(selector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if match := priceRe.FindStringSubmatch(text); match != nil {
			price = match[1] + "€"
			return false
		}
		return true
	})

	return price, price != ""
}
