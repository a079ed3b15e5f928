package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bot-ofertas/internal/models"
	"bot-ofertas/internal/scraper"
)

type addedDiscount struct {
	productID       int64
	percentage      int
	originalPrice   string
	discountedPrice string
	currency        string
}

type detailUpdate struct {
	id       int64
	title    string
	imageURL string
}

type fakeStore struct {
	mu sync.Mutex

	config   *models.CronjobConfig
	products []models.Product
	latest   map[int64]*models.Discount

	configErr   error // injeta falha em GetCronjobConfig
	productsErr error // injeta falha em GetAllProducts
	panicsLeft  int   // GetAllProducts entra em pânico enquanto > 0

	added         []addedDiscount
	detailUpdates []detailUpdate
	lastRunCalls  int
	productCalls  int
}

func (f *fakeStore) GetCronjobConfig() (*models.CronjobConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.configErr != nil {
		return nil, f.configErr
	}
	return f.config, nil
}

func (f *fakeStore) UpdateCronjobLastRun() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRunCalls++
	return nil
}

func (f *fakeStore) GetAllProducts() ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productCalls++
	if f.panicsLeft > 0 {
		f.panicsLeft--
		panic("falha inesperada na listagem de produtos")
	}
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return f.products, nil
}

func (f *fakeStore) productCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.productCalls
}

func (f *fakeStore) UpdateProductDetails(id int64, title, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailUpdates = append(f.detailUpdates, detailUpdate{id: id, title: title, imageURL: imageURL})
	return nil
}

func (f *fakeStore) GetLatestDiscountForProduct(productID int64) (*models.Discount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest[productID], nil
}

func (f *fakeStore) AddProductDiscount(productID int64, percentage int, originalPrice, discountedPrice, currency string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, addedDiscount{productID, percentage, originalPrice, discountedPrice, currency})
	return int64(len(f.added)), nil
}

type fakeScraper struct {
	result *scraper.Result
}

func (f *fakeScraper) Scrape(url string) (*scraper.Result, error) { return f.result, nil }
func (f *fakeScraper) CanHandle(url string) bool                  { return true }

type fakeFinder struct {
	scraper scraper.Scraper
}

func (f *fakeFinder) FindScraper(url string) scraper.Scraper { return f.scraper }

type fakeNotifier struct {
	mu    sync.Mutex
	calls []*models.Discount
}

func (f *fakeNotifier) SendDiscountNotification(ctx context.Context, p *models.Product, d *models.Discount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, d)
	return nil
}

func TestDiscountChanged(t *testing.T) {
	previous := &models.Discount{
		DiscountPercentage: 20,
		OriginalPrice:      "100,00€",
		DiscountedPrice:    "80,00€",
	}

	tests := []struct {
		name            string
		previous        *models.Discount
		percentage      int
		originalPrice   string
		discountedPrice string
		want            bool
	}{
		{"sem observação anterior", nil, 20, "100,00€", "80,00€", true},
		{"tudo igual", previous, 20, "100,00€", "80,00€", false},
		{"porcentagem diferente", previous, 25, "100,00€", "80,00€", true},
		{"preço original diferente", previous, 20, "110,00€", "80,00€", true},
		{"preço com desconto diferente", previous, 20, "100,00€", "75,00€", true},
		{"diferença só de formatação", previous, 20, "100,00€", "80,0€", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountChanged(tt.previous, tt.percentage, tt.originalPrice, tt.discountedPrice)
			if got != tt.want {
				t.Errorf("DiscountChanged = %v, esperado %v", got, tt.want)
			}
		})
	}
}

func TestCheckProductNewDiscount(t *testing.T) {
	store := &fakeStore{latest: map[int64]*models.Discount{}}
	notifier := &fakeNotifier{}
	result := &scraper.Result{
		Title:              "Produto X",
		HasDiscount:        true,
		DiscountPercentage: 20,
		OriginalPrice:      "100,00€",
		DiscountedPrice:    "80,00€",
		Currency:           "€",
	}
	m := New(store, &fakeFinder{scraper: &fakeScraper{result: result}}, notifier)

	product := &models.Product{ID: 7, AmazonURL: "https://www.amazon.es/dp/B0ABCDE123", Title: "Produto X"}
	m.checkProduct(context.Background(), product)

	if len(store.added) != 1 {
		t.Fatalf("descontos registrados = %d, esperado 1", len(store.added))
	}
	got := store.added[0]
	if got.productID != 7 || got.percentage != 20 || got.originalPrice != "100,00€" || got.discountedPrice != "80,00€" {
		t.Errorf("desconto registrado = %+v", got)
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("notificações = %d, esperado 1", len(notifier.calls))
	}
	d := notifier.calls[0]
	if d.DiscountPercentage != 20 || d.OriginalPrice != "100,00€" || d.DiscountedPrice != "80,00€" {
		t.Errorf("desconto notificado = %+v", d)
	}
	if len(store.detailUpdates) != 0 {
		t.Errorf("detalhes atualizados sem mudança: %+v", store.detailUpdates)
	}
}

func TestCheckProductUnchangedDiscount(t *testing.T) {
	store := &fakeStore{latest: map[int64]*models.Discount{
		7: {DiscountPercentage: 20, OriginalPrice: "100,00€", DiscountedPrice: "80,00€"},
	}}
	notifier := &fakeNotifier{}
	result := &scraper.Result{
		Title:              "Produto X",
		HasDiscount:        true,
		DiscountPercentage: 20,
		OriginalPrice:      "100,00€",
		DiscountedPrice:    "80,00€",
		Currency:           "€",
	}
	m := New(store, &fakeFinder{scraper: &fakeScraper{result: result}}, notifier)

	product := &models.Product{ID: 7, AmazonURL: "https://www.amazon.es/dp/B0ABCDE123", Title: "Produto X"}
	m.checkProduct(context.Background(), product)

	if len(store.added) != 0 {
		t.Errorf("descontos registrados = %d, esperado 0", len(store.added))
	}
	if len(notifier.calls) != 0 {
		t.Errorf("notificações = %d, esperado 0", len(notifier.calls))
	}
}

func TestCheckProductTitleDrift(t *testing.T) {
	store := &fakeStore{latest: map[int64]*models.Discount{}}
	result := &scraper.Result{Title: "Título Novo", ImageURL: "https://img/nova.jpg"}
	m := New(store, &fakeFinder{scraper: &fakeScraper{result: result}}, &fakeNotifier{})

	product := &models.Product{ID: 3, AmazonURL: "https://www.amazon.es/dp/B0ABCDE123", Title: "Título Antigo"}
	m.checkProduct(context.Background(), product)

	if len(store.detailUpdates) != 1 {
		t.Fatalf("atualizações de detalhes = %d, esperado 1", len(store.detailUpdates))
	}
	got := store.detailUpdates[0]
	if got.id != 3 || got.title != "Título Novo" || got.imageURL != "https://img/nova.jpg" {
		t.Errorf("atualização = %+v", got)
	}
	if product.Title != "Título Novo" {
		t.Errorf("título em memória = %q, esperado atualizado", product.Title)
	}
}

func TestStartStop(t *testing.T) {
	store := &fakeStore{
		config: &models.CronjobConfig{CheckInterval: 60, ProductDelay: 1, IsActive: true},
		latest: map[int64]*models.Discount{},
	}
	m := New(store, &fakeFinder{}, &fakeNotifier{})

	if !m.Start() {
		t.Fatal("primeiro Start = false, esperado true")
	}
	if m.Start() {
		t.Error("segundo Start = true, esperado no-op")
	}
	if !m.Running() {
		t.Error("Running = false com loop ativo")
	}

	m.Stop()

	if m.Running() {
		t.Error("Running = true após Stop")
	}

	// Stop sem loop ativo é um no-op
	m.Stop()
}

func TestRunExitsWhenConfigInactive(t *testing.T) {
	store := &fakeStore{
		config: &models.CronjobConfig{CheckInterval: 60, ProductDelay: 1, IsActive: false},
		latest: map[int64]*models.Discount{},
	}
	m := New(store, &fakeFinder{}, &fakeNotifier{})

	m.Start()

	deadline := time.Now().Add(2 * time.Second)
	for m.Running() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if m.Running() {
		t.Error("loop não encerrou com configuração inativa")
	}
}

func TestCycleRecoversFromPanic(t *testing.T) {
	store := &fakeStore{
		config:     &models.CronjobConfig{CheckInterval: 60, ProductDelay: 1, IsActive: true},
		latest:     map[int64]*models.Discount{},
		panicsLeft: 1,
	}
	m := New(store, &fakeFinder{}, &fakeNotifier{})

	// Contexto já cancelado: a pausa de backoff retorna na hora e o
	// ciclo sinaliza parada em vez de deixar o pânico escapar
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if stop := m.cycle(ctx); !stop {
		t.Error("cycle = false após pânico com contexto cancelado, esperado parada")
	}
	if store.productCallCount() != 1 {
		t.Errorf("chamadas a GetAllProducts = %d, esperado 1", store.productCallCount())
	}
}

func TestCycleBacksOffOnStoreErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	configStore := &fakeStore{configErr: errors.New("api fora do ar")}
	m := New(configStore, &fakeFinder{}, &fakeNotifier{})
	if stop := m.cycle(ctx); !stop {
		t.Error("cycle = false com erro de configuração e contexto cancelado")
	}

	productStore := &fakeStore{
		config:      &models.CronjobConfig{CheckInterval: 60, ProductDelay: 1, IsActive: true},
		productsErr: errors.New("api fora do ar"),
	}
	m = New(productStore, &fakeFinder{}, &fakeNotifier{})
	if stop := m.cycle(ctx); !stop {
		t.Error("cycle = false com erro na listagem e contexto cancelado")
	}
	if productStore.lastRunCalls != 0 {
		t.Error("última execução registrada em ciclo que falhou")
	}
}

func TestLoopSurvivesPanicAndStopsDuringBackoff(t *testing.T) {
	store := &fakeStore{
		config:     &models.CronjobConfig{CheckInterval: 60, ProductDelay: 1, IsActive: true},
		latest:     map[int64]*models.Discount{},
		panicsLeft: 1,
	}
	m := New(store, &fakeFinder{}, &fakeNotifier{})

	m.Start()

	// Aguarda o ciclo chegar ao pânico
	deadline := time.Now().Add(2 * time.Second)
	for store.productCallCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if store.productCallCount() == 0 {
		t.Fatal("o ciclo nunca chegou à listagem de produtos")
	}

	// O pânico foi recuperado: o loop segue vivo, na pausa de backoff
	if !m.Running() {
		t.Fatal("loop morreu após pânico, esperado recuperação e backoff")
	}

	// Stop deve interromper a pausa de backoff sem esperar os 60 segundos
	stopped := make(chan struct{})
	go func() {
		m.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop não interrompeu a pausa de backoff")
	}
}

func TestSleepCtxCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if sleepCtx(ctx, time.Minute) {
		t.Error("sleepCtx = true com contexto cancelado")
	}
	if !sleepCtx(context.Background(), 0) {
		t.Error("sleepCtx = false com duração zero e contexto ativo")
	}
}
