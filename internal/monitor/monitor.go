package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"bot-ofertas/internal/models"
	"bot-ofertas/internal/scraper"
)

// errorBackoff é a pausa aplicada após um erro inesperado no ciclo
const errorBackoff = 60 * time.Second

// Store são as operações de persistência consumidas pelo monitor
type Store interface {
	GetCronjobConfig() (*models.CronjobConfig, error)
	UpdateCronjobLastRun() error
	GetAllProducts() ([]models.Product, error)
	UpdateProductDetails(id int64, title, imageURL string) error
	GetLatestDiscountForProduct(productID int64) (*models.Discount, error)
	AddProductDiscount(productID int64, percentage int, originalPrice, discountedPrice, currency string) (int64, error)
}

// ScraperFinder localiza o scraper apropriado para uma URL
type ScraperFinder interface {
	FindScraper(url string) scraper.Scraper
}

// Notifier recebe os descontos novos detectados pelo monitor
type Notifier interface {
	SendDiscountNotification(ctx context.Context, p *models.Product, d *models.Discount) error
}

// Monitor executa o ciclo periódico de verificação de descontos em
// background. Os produtos são verificados um por vez, com pausa entre
// eles, para respeitar os limites de requisição da Amazon. O cancelamento
// é cooperativo: o contexto é honrado em todas as pausas e no início de
// cada passo, sem interromper uma busca já em andamento.
type Monitor struct {
	db       Store
	scrapers ScraperFinder
	notifier Notifier

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New cria uma nova instância do monitor
func New(db Store, scrapers ScraperFinder, notifier Notifier) *Monitor {
	return &Monitor{
		db:       db,
		scrapers: scrapers,
		notifier: notifier,
	}
}

// Start inicia o loop de monitoramento em background. Um segundo Start
// com o loop já em execução é um no-op registrado em log.
func (m *Monitor) Start() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		log.Println("Monitoramento já em execução, Start ignorado")
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	m.cancel = cancel
	m.done = done

	go func() {
		defer close(done)
		m.run(ctx)

		m.mu.Lock()
		if m.done == done {
			m.cancel = nil
			m.done = nil
		}
		m.mu.Unlock()
	}()

	log.Println("Monitoramento iniciado")
	return true
}

// Stop encerra o loop e aguarda o ciclo corrente chegar a um ponto de
// parada (o sinal é honrado inclusive no meio de uma pausa)
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	done := m.done
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}

	log.Println("Encerrando monitoramento...")
	cancel()
	<-done
	log.Println("Monitoramento encerrado")
}

// Running informa se o loop está em execução
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

// run executa ciclos até o contexto ser cancelado ou a configuração
// persistida ser desativada. Nenhuma falha de produto ou ciclo derruba o
// processo: o erro é registrado e o loop segue após a pausa de backoff.
func (m *Monitor) run(ctx context.Context) {
	log.Println("Iniciando loop de monitoramento de preços")

	for {
		stop := m.cycle(ctx)
		if stop || ctx.Err() != nil {
			break
		}
	}

	log.Println("Loop de monitoramento de preços finalizado")
}

// cycle executa um ciclo completo de verificação. Retorna true quando o
// loop deve parar.
func (m *Monitor) cycle(ctx context.Context) (stop bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Erro inesperado no ciclo de monitoramento: %v", r)
			if !sleepCtx(ctx, errorBackoff) {
				stop = true
			}
		}
	}()

	config, err := m.db.GetCronjobConfig()
	if err != nil {
		log.Printf("Erro ao buscar configuração do cronjob: %v", err)
		return !sleepCtx(ctx, errorBackoff)
	}
	if config == nil || !config.IsActive {
		log.Println("Cronjob desativado, saindo do loop")
		return true
	}

	products, err := m.db.GetAllProducts()
	if err != nil {
		log.Printf("Erro ao buscar produtos: %v", err)
		return !sleepCtx(ctx, errorBackoff)
	}

	if len(products) == 0 {
		log.Println("Nenhum produto para monitorar")
	} else {
		log.Printf("Iniciando verificação de %d produtos", len(products))

		for i := range products {
			if ctx.Err() != nil {
				return true
			}

			m.checkProduct(ctx, &products[i])

			// Pausa entre produtos, honrando o cancelamento
			if !sleepCtx(ctx, time.Duration(config.ProductDelay)*time.Minute) {
				return true
			}
		}
	}

	if err := m.db.UpdateCronjobLastRun(); err != nil {
		log.Printf("Erro ao atualizar última execução do cronjob: %v", err)
	}

	log.Printf("Verificação concluída, pausa de %d minutos", config.CheckInterval)
	return !sleepCtx(ctx, time.Duration(config.CheckInterval)*time.Minute)
}

// checkProduct verifica um único produto: scraping, atualização de
// título/imagem e detecção de desconto novo. Qualquer erro é registrado
// e o produto fica para o próximo ciclo, sem retry imediato.
func (m *Monitor) checkProduct(ctx context.Context, product *models.Product) {
	s := m.scrapers.FindScraper(product.AmazonURL)
	if s == nil {
		log.Printf("Nenhum scraper encontrado para URL: %s", product.AmazonURL)
		return
	}

	log.Printf("Verificando produto %d: %s", product.ID, product.Title)

	result, err := s.Scrape(product.AmazonURL)
	if err != nil {
		log.Printf("Erro no scraping do produto %d (%s): %v", product.ID, product.AmazonURL, err)
		return
	}

	m.updateProductDetails(product, result)

	if !result.HasDiscount {
		return
	}

	previous, err := m.db.GetLatestDiscountForProduct(product.ID)
	if err != nil {
		log.Printf("Erro ao buscar último desconto do produto %d: %v", product.ID, err)
		return
	}

	if !DiscountChanged(previous, result.DiscountPercentage, result.OriginalPrice, result.DiscountedPrice) {
		return
	}

	discountID, err := m.db.AddProductDiscount(product.ID, result.DiscountPercentage, result.OriginalPrice, result.DiscountedPrice, result.Currency)
	if err != nil {
		log.Printf("Erro ao registrar desconto do produto %d: %v", product.ID, err)
		return
	}

	log.Printf("Novo desconto encontrado para o produto %d: -%d%%", product.ID, result.DiscountPercentage)

	discount := &models.Discount{
		ID:                 discountID,
		ProductID:          product.ID,
		DiscountPercentage: result.DiscountPercentage,
		OriginalPrice:      result.OriginalPrice,
		DiscountedPrice:    result.DiscountedPrice,
		Currency:           result.Currency,
	}

	if err := m.notifier.SendDiscountNotification(ctx, product, discount); err != nil {
		log.Printf("Erro ao notificar desconto do produto %d: %v", product.ID, err)
	}
}

// updateProductDetails persiste título e imagem quando o scraping
// encontrou valores diferentes dos armazenados
func (m *Monitor) updateProductDetails(product *models.Product, result *scraper.Result) {
	title := ""
	if result.Title != "" && result.Title != product.Title {
		title = result.Title
	}
	imageURL := ""
	if result.ImageURL != "" && result.ImageURL != product.ImageURL {
		imageURL = result.ImageURL
	}
	if title == "" && imageURL == "" {
		return
	}

	if err := m.db.UpdateProductDetails(product.ID, title, imageURL); err != nil {
		log.Printf("Erro ao atualizar detalhes do produto %d: %v", product.ID, err)
		return
	}

	if title != "" {
		product.Title = title
	}
	if imageURL != "" {
		product.ImageURL = imageURL
	}
}

// DiscountChanged decide se a observação recém-extraída é informação nova.
// A comparação é estrita, por igualdade exata de cada campo: uma diferença
// de formatação de um centavo conta como mudança real. Sensibilidade em
// excesso é o tradeoff aceito para nunca suprimir movimento de preço.
func DiscountChanged(previous *models.Discount, percentage int, originalPrice, discountedPrice string) bool {
	if previous == nil {
		return true
	}
	return previous.DiscountPercentage != percentage ||
		previous.OriginalPrice != originalPrice ||
		previous.DiscountedPrice != discountedPrice
}

// sleepCtx dorme pela duração indicada, retornando false se o contexto
// for cancelado antes
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
