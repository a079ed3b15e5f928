package scraper

// Result é o resultado do scraping de uma página de produto.
// HasDiscount só é true quando a porcentagem E os dois preços foram
// extraídos: um marcador de desconto sem os preços não é evidência
// suficiente de oferta real.
type Result struct {
	Title              string
	ImageURL           string
	HasDiscount        bool
	DiscountPercentage int
	OriginalPrice      string
	DiscountedPrice    string
	Currency           string
}

// Scraper define a interface para scrapers de diferentes lojas
type Scraper interface {
	Scrape(url string) (*Result, error)
	CanHandle(url string) bool
}

// Registry mantém um registro de todos os scrapers disponíveis
type Registry struct {
	scrapers []Scraper
}

// NewRegistry cria um novo registro de scrapers
func NewRegistry(acceptLanguage string) *Registry {
	return &Registry{
		scrapers: []Scraper{
			NewAmazonScraper(acceptLanguage),
		},
	}
}

// FindScraper encontra o scraper apropriado para uma URL
func (r *Registry) FindScraper(url string) Scraper {
	for _, scraper := range r.scrapers {
		if scraper.CanHandle(url) {
			return scraper
		}
	}
	return nil
}
