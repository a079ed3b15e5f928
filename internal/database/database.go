package database

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"bot-ofertas/internal/api"
	"bot-ofertas/internal/models"
)

// DB expõe as operações de persistência do bot sobre a API remota.
// O serviço remoto é a única fonte de verdade: nada é cacheado
// localmente entre ciclos de monitoramento.
type DB struct {
	client *api.Client
}

// New cria uma nova instância do acesso a dados
func New(client *api.Client) *DB {
	return &DB{client: client}
}

// notFound indica que o erro da API representa um resultado vazio,
// tratado como ausência normal e não como falha
func notFound(env *api.Envelope) bool {
	return strings.Contains(strings.ToLower(env.Error), "not found")
}

func apiError(operation string, env *api.Envelope) error {
	msg := env.Error
	if msg == "" {
		msg = "erro desconhecido"
	}
	return fmt.Errorf("%s: %s", operation, msg)
}

// --- Produtos ---

type productPayload struct {
	ID           int64  `json:"id"`
	AmazonURL    string `json:"amazon_url"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	AddedBy      int64  `json:"added_by"`
	CreatedAt    string `json:"created_at"`
}

func (p *productPayload) toModel() models.Product {
	return models.Product{
		ID:           p.ID,
		AmazonURL:    p.AmazonURL,
		Title:        p.Title,
		ImageURL:     p.ImageURL,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		AddedBy:      p.AddedBy,
		CreatedAt:    p.CreatedAt,
	}
}

// AddProduct adiciona um novo produto e retorna o ID gerado
func (db *DB) AddProduct(amazonURL, title, imageURL string, categoryID, addedBy int64) (int64, error) {
	body := map[string]interface{}{
		"amazon_url": amazonURL,
		"title":      title,
		"image_url":  imageURL,
		"added_by":   addedBy,
	}
	if categoryID > 0 {
		body["category_id"] = categoryID
	}

	env, err := db.client.Request(http.MethodPost, "/api/bot/products", body, nil)
	if err != nil {
		return 0, err
	}
	if !env.Success {
		return 0, apiError("erro ao adicionar produto", env)
	}
	return env.ProductID, nil
}

// GetAllProducts retorna todos os produtos monitorados, com o nome da categoria
func (db *DB) GetAllProducts() ([]models.Product, error) {
	env, err := db.client.Request(http.MethodGet, "/api/bot/products", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		if notFound(env) {
			return nil, nil
		}
		return nil, apiError("erro ao listar produtos", env)
	}

	var payload []productPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar produtos: %v", err)
	}

	products := make([]models.Product, 0, len(payload))
	for i := range payload {
		products = append(products, payload[i].toModel())
	}
	return products, nil
}

// GetProductByID retorna um produto pelo ID, ou nil se não existir
func (db *DB) GetProductByID(id int64) (*models.Product, error) {
	env, err := db.client.Request(http.MethodGet, fmt.Sprintf("/api/bot/products/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar produto", env)
		}
		return nil, nil
	}

	var payload productPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar produto: %v", err)
	}
	product := payload.toModel()
	return &product, nil
}

// UpdateProductDetails atualiza título e/ou imagem de um produto.
// Campos vazios não são alterados.
func (db *DB) UpdateProductDetails(id int64, title, imageURL string) error {
	body := map[string]interface{}{}
	if title != "" {
		body["title"] = title
	}
	if imageURL != "" {
		body["image_url"] = imageURL
	}
	if len(body) == 0 {
		return nil
	}

	env, err := db.client.Request(http.MethodPut, fmt.Sprintf("/api/bot/products/%d", id), body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao atualizar produto", env)
	}
	return nil
}

// UpdateProductCategory move um produto para outra categoria
func (db *DB) UpdateProductCategory(id, categoryID int64) error {
	body := map[string]interface{}{"category_id": categoryID}

	env, err := db.client.Request(http.MethodPut, fmt.Sprintf("/api/bot/products/%d/category", id), body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao atualizar categoria do produto", env)
	}
	return nil
}

// DeleteProduct remove um produto. A remoção cascateia para o histórico
// de descontos e mensagens de aprovação no serviço remoto.
func (db *DB) DeleteProduct(id int64) error {
	env, err := db.client.Request(http.MethodDelete, fmt.Sprintf("/api/bot/products/%d", id), nil, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao remover produto", env)
	}
	return nil
}

// --- Categorias ---

type categoryPayload struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	TelegramLink string `json:"telegram_link"`
	CreatedBy    int64  `json:"created_by"`
	CreatedAt    string `json:"created_at"`
}

func (c *categoryPayload) toModel() models.Category {
	return models.Category{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		TelegramLink: c.TelegramLink,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
	}
}

// AddCategory cria uma nova categoria. Retorna false se já existir uma
// categoria com o mesmo nome.
func (db *DB) AddCategory(name, description string, createdBy int64) (bool, error) {
	body := map[string]interface{}{
		"name":        name,
		"description": description,
		"created_by":  createdBy,
	}

	env, err := db.client.Request(http.MethodPost, "/api/bot/categories", body, nil)
	if err != nil {
		return false, err
	}
	if env.Success {
		return true, nil
	}
	if strings.Contains(strings.ToLower(env.Error), "already exists") {
		return false, nil
	}
	return false, apiError("erro ao adicionar categoria", env)
}

// GetAllCategories retorna todas as categorias
func (db *DB) GetAllCategories() ([]models.Category, error) {
	env, err := db.client.Request(http.MethodGet, "/api/bot/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		if notFound(env) {
			return nil, nil
		}
		return nil, apiError("erro ao listar categorias", env)
	}

	var payload []categoryPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar categorias: %v", err)
	}

	categories := make([]models.Category, 0, len(payload))
	for i := range payload {
		categories = append(categories, payload[i].toModel())
	}
	return categories, nil
}

// GetCategoryByID retorna uma categoria pelo ID, ou nil se não existir
func (db *DB) GetCategoryByID(id int64) (*models.Category, error) {
	env, err := db.client.Request(http.MethodGet, fmt.Sprintf("/api/bot/categories/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar categoria", env)
		}
		return nil, nil
	}

	var payload categoryPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar categoria: %v", err)
	}
	category := payload.toModel()
	return &category, nil
}

// DeleteCategory remove uma categoria e seus produtos associados
func (db *DB) DeleteCategory(id int64) error {
	env, err := db.client.Request(http.MethodDelete, fmt.Sprintf("/api/bot/categories/%d", id), nil, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao remover categoria", env)
	}
	return nil
}

// UpdateCategoryTelegramLink define o grupo de destino das ofertas da categoria
func (db *DB) UpdateCategoryTelegramLink(id int64, telegramLink string) error {
	body := map[string]interface{}{"telegram_link": telegramLink}

	env, err := db.client.Request(http.MethodPut, fmt.Sprintf("/api/bot/categories/%d/telegram-link", id), body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao atualizar link do grupo", env)
	}
	return nil
}

// --- Descontos ---

type discountPayload struct {
	ID                 int64  `json:"id"`
	ProductID          int64  `json:"product_id"`
	DiscountPercentage int    `json:"discount_percentage"`
	OriginalPrice      string `json:"original_price"`
	DiscountedPrice    string `json:"discounted_price"`
	Currency           string `json:"currency"`
	DetectedAt         string `json:"detected_at"`
}

// AddProductDiscount registra uma nova observação de desconto e retorna o ID
func (db *DB) AddProductDiscount(productID int64, percentage int, originalPrice, discountedPrice, currency string) (int64, error) {
	body := map[string]interface{}{
		"discount_percentage": percentage,
		"original_price":      originalPrice,
		"discounted_price":    discountedPrice,
		"currency":            currency,
	}

	env, err := db.client.Request(http.MethodPost, fmt.Sprintf("/api/bot/products/%d/discounts", productID), body, nil)
	if err != nil {
		return 0, err
	}
	if !env.Success {
		return 0, apiError("erro ao registrar desconto", env)
	}
	return env.DiscountID, nil
}

// GetLatestDiscountForProduct retorna a observação de desconto mais recente
// de um produto, ou nil se nunca houve desconto registrado
func (db *DB) GetLatestDiscountForProduct(productID int64) (*models.Discount, error) {
	env, err := db.client.Request(http.MethodGet, fmt.Sprintf("/api/bot/products/%d/discounts/latest", productID), nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar último desconto", env)
		}
		return nil, nil
	}

	var payload discountPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar desconto: %v", err)
	}

	return &models.Discount{
		ID:                 payload.ID,
		ProductID:          payload.ProductID,
		DiscountPercentage: payload.DiscountPercentage,
		OriginalPrice:      payload.OriginalPrice,
		DiscountedPrice:    payload.DiscountedPrice,
		Currency:           payload.Currency,
		DetectedAt:         payload.DetectedAt,
	}, nil
}

// --- Configuração do cronjob ---

// GetCronjobConfig retorna a configuração do monitoramento, ou nil se ainda
// não foi configurado
func (db *DB) GetCronjobConfig() (*models.CronjobConfig, error) {
	env, err := db.client.Request(http.MethodGet, "/api/config/cronjob", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar configuração do cronjob", env)
		}
		return nil, nil
	}

	var payload struct {
		CheckInterval int    `json:"check_interval_minutes"`
		ProductDelay  int    `json:"product_delay_minutes"`
		IsActive      bool   `json:"is_active"`
		LastRun       string `json:"last_run"`
		CreatedBy     int64  `json:"created_by"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração do cronjob: %v", err)
	}

	return &models.CronjobConfig{
		CheckInterval: payload.CheckInterval,
		ProductDelay:  payload.ProductDelay,
		IsActive:      payload.IsActive,
		LastRun:       payload.LastRun,
		CreatedBy:     payload.CreatedBy,
	}, nil
}

// UpdateCronjobConfig atualiza ou cria a configuração do monitoramento.
// Os mínimos de intervalo e pausa são validados antes de persistir.
func (db *DB) UpdateCronjobConfig(checkInterval, productDelay int, isActive bool, createdBy int64) error {
	if err := models.ValidateCronjobConfig(checkInterval, productDelay); err != nil {
		return err
	}

	body := map[string]interface{}{
		"check_interval_minutes": checkInterval,
		"product_delay_minutes":  productDelay,
		"is_active":              isActive,
		"created_by":             createdBy,
	}

	env, err := db.client.Request(http.MethodPut, "/api/config/cronjob", body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao salvar configuração do cronjob", env)
	}
	return nil
}

// UpdateCronjobLastRun registra o fim de um ciclo completo de monitoramento
func (db *DB) UpdateCronjobLastRun() error {
	env, err := db.client.Request(http.MethodPut, "/api/config/cronjob/last-run", nil, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao atualizar última execução do cronjob", env)
	}
	return nil
}

// --- Canal de aprovação ---

// GetChannelConfig retorna a configuração do canal de aprovação, ou nil
func (db *DB) GetChannelConfig() (*models.ChannelConfig, error) {
	env, err := db.client.Request(http.MethodGet, "/api/config/channel", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar configuração do canal", env)
		}
		return nil, nil
	}

	var payload struct {
		ChannelLink string `json:"channel_link"`
		ChannelID   string `json:"channel_id"`
		IsActive    bool   `json:"is_active"`
		CreatedBy   int64  `json:"created_by"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração do canal: %v", err)
	}

	return &models.ChannelConfig{
		ChannelLink: payload.ChannelLink,
		ChannelID:   payload.ChannelID,
		IsActive:    payload.IsActive,
		CreatedBy:   payload.CreatedBy,
	}, nil
}

// UpdateChannelConfig define o canal de aprovação
func (db *DB) UpdateChannelConfig(channelLink string, createdBy int64) error {
	body := map[string]interface{}{
		"channel_link": channelLink,
		"is_active":    true,
		"created_by":   createdBy,
	}

	env, err := db.client.Request(http.MethodPut, "/api/config/channel", body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao salvar configuração do canal", env)
	}
	return nil
}

// --- Mensagens de aprovação ---

// AddApprovalMessage registra a mensagem postada no canal de aprovação.
// improvedMessage deve ser vazio quando a IA não alterou o texto.
func (db *DB) AddApprovalMessage(productID, discountID, channelMessageID int64, improvedMessage string) (int64, error) {
	body := map[string]interface{}{
		"product_id":         productID,
		"discount_id":        discountID,
		"channel_message_id": channelMessageID,
	}
	if improvedMessage != "" {
		body["improved_message"] = improvedMessage
	}

	env, err := db.client.Request(http.MethodPost, "/api/config/approval-messages", body, nil)
	if err != nil {
		return 0, err
	}
	if !env.Success {
		return 0, apiError("erro ao registrar mensagem de aprovação", env)
	}
	return env.ApprovalID, nil
}

// ApproveMessage marca uma mensagem como aprovada. Retorna false se a
// mensagem não existir.
func (db *DB) ApproveMessage(approvalID, approvedBy int64) (bool, error) {
	body := map[string]interface{}{"approved_by": approvedBy}

	env, err := db.client.Request(http.MethodPut, fmt.Sprintf("/api/config/approval-messages/%d/approve", approvalID), body, nil)
	if err != nil {
		return false, err
	}
	if env.Success {
		return true, nil
	}
	if notFound(env) {
		return false, nil
	}
	return false, apiError("erro ao aprovar mensagem", env)
}

// GetApprovalByMessageID busca a mensagem de aprovação pelo ID da mensagem
// no canal, ou nil se não existir
func (db *DB) GetApprovalByMessageID(channelMessageID int64) (*models.ApprovalMessage, error) {
	env, err := db.client.Request(http.MethodGet, fmt.Sprintf("/api/config/approval-messages/by-channel/%d", channelMessageID), nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar mensagem de aprovação", env)
		}
		return nil, nil
	}

	var payload struct {
		ID              int64  `json:"id"`
		ProductID       int64  `json:"product_id"`
		DiscountID      int64  `json:"discount_id"`
		IsApproved      bool   `json:"is_approved"`
		ImprovedMessage string `json:"improved_message"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar mensagem de aprovação: %v", err)
	}

	return &models.ApprovalMessage{
		ID:               payload.ID,
		ProductID:        payload.ProductID,
		DiscountID:       payload.DiscountID,
		ChannelMessageID: channelMessageID,
		IsApproved:       payload.IsApproved,
		ImprovedMessage:  payload.ImprovedMessage,
	}, nil
}

// --- Aprovação automática ---

// GetAutoApprovalConfig retorna a configuração de aprovação automática, ou nil
func (db *DB) GetAutoApprovalConfig() (*models.AutoApprovalConfig, error) {
	env, err := db.client.Request(http.MethodGet, "/api/config/auto-approval", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar configuração de aprovação automática", env)
		}
		return nil, nil
	}

	var payload struct {
		IsEnabled bool   `json:"is_enabled"`
		CreatedBy int64  `json:"created_by"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar aprovação automática: %v", err)
	}

	return &models.AutoApprovalConfig{
		IsEnabled: payload.IsEnabled,
		CreatedBy: payload.CreatedBy,
		CreatedAt: payload.CreatedAt,
		UpdatedAt: payload.UpdatedAt,
	}, nil
}

// UpdateAutoApprovalConfig habilita ou desabilita a aprovação automática
func (db *DB) UpdateAutoApprovalConfig(isEnabled bool, createdBy int64) error {
	body := map[string]interface{}{
		"is_enabled": isEnabled,
		"created_by": createdBy,
	}

	env, err := db.client.Request(http.MethodPut, "/api/config/auto-approval", body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao salvar aprovação automática", env)
	}
	return nil
}

// --- Tag de afiliado ---

// GetAffiliateConfig retorna a configuração do tag de afiliado, ou nil
func (db *DB) GetAffiliateConfig() (*models.AffiliateConfig, error) {
	env, err := db.client.Request(http.MethodGet, "/api/config/affiliate", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar configuração de afiliado", env)
		}
		return nil, nil
	}

	var payload struct {
		Tag       string `json:"affiliate_tag"`
		IsActive  bool   `json:"is_active"`
		CreatedBy int64  `json:"created_by"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração de afiliado: %v", err)
	}

	return &models.AffiliateConfig{
		Tag:       payload.Tag,
		IsActive:  payload.IsActive,
		CreatedBy: payload.CreatedBy,
	}, nil
}

// UpdateAffiliateConfig define o tag de afiliado
func (db *DB) UpdateAffiliateConfig(tag string, createdBy int64) error {
	body := map[string]interface{}{
		"affiliate_tag": tag,
		"created_by":    createdBy,
	}

	env, err := db.client.Request(http.MethodPut, "/api/config/affiliate", body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao salvar tag de afiliado", env)
	}
	return nil
}

// --- Botão de compra ---

// GetPurchaseButtonConfig retorna o texto configurado do botão de compra, ou nil
func (db *DB) GetPurchaseButtonConfig() (*models.PurchaseButtonConfig, error) {
	env, err := db.client.Request(http.MethodGet, "/api/config/purchase-button", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar configuração do botão de compra", env)
		}
		return nil, nil
	}

	var payload struct {
		Text     string `json:"button_text"`
		IsActive bool   `json:"is_active"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar botão de compra: %v", err)
	}

	return &models.PurchaseButtonConfig{
		Text:     payload.Text,
		IsActive: payload.IsActive,
	}, nil
}

// UpdatePurchaseButtonConfig define o texto do botão de compra
func (db *DB) UpdatePurchaseButtonConfig(buttonText string, createdBy int64) error {
	body := map[string]interface{}{
		"button_text": buttonText,
		"created_by":  createdBy,
	}

	env, err := db.client.Request(http.MethodPut, "/api/config/purchase-button", body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao salvar botão de compra", env)
	}
	return nil
}

// --- Prompt de IA ---

// GetPromptConfig retorna o prompt de sistema da melhoria de mensagens, ou nil
func (db *DB) GetPromptConfig() (*models.PromptConfig, error) {
	env, err := db.client.Request(http.MethodGet, "/api/config/prompt", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		if !env.Success && !notFound(env) {
			return nil, apiError("erro ao buscar prompt de IA", env)
		}
		return nil, nil
	}

	var payload struct {
		Text      string `json:"prompt_text"`
		IsActive  bool   `json:"is_active"`
		CreatedBy int64  `json:"created_by"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar prompt de IA: %v", err)
	}

	return &models.PromptConfig{
		Text:      payload.Text,
		IsActive:  payload.IsActive,
		CreatedBy: payload.CreatedBy,
	}, nil
}

// UpdatePromptConfig define o prompt de sistema da melhoria de mensagens
func (db *DB) UpdatePromptConfig(promptText string, createdBy int64) error {
	body := map[string]interface{}{
		"prompt_text": promptText,
		"created_by":  createdBy,
	}

	env, err := db.client.Request(http.MethodPut, "/api/config/prompt", body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao salvar prompt de IA", env)
	}
	return nil
}

// --- Administradores ---

// AddAdminUser adiciona um administrador
func (db *DB) AddAdminUser(userID int64, username, firstName string, addedBy int64) error {
	body := map[string]interface{}{
		"user_id":    userID,
		"username":   username,
		"first_name": firstName,
		"added_by":   addedBy,
	}

	env, err := db.client.Request(http.MethodPost, "/api/bot/admins", body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao adicionar admin", env)
	}
	return nil
}

// RemoveAdminUser remove um administrador
func (db *DB) RemoveAdminUser(userID int64) error {
	env, err := db.client.Request(http.MethodDelete, fmt.Sprintf("/api/bot/admins/%d", userID), nil, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao remover admin", env)
	}
	return nil
}

// GetAllAdminUsers lista os administradores cadastrados
func (db *DB) GetAllAdminUsers() ([]models.AdminUser, error) {
	env, err := db.client.Request(http.MethodGet, "/api/bot/admins", nil, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		if notFound(env) {
			return nil, nil
		}
		return nil, apiError("erro ao listar admins", env)
	}

	var payload []struct {
		UserID    int64  `json:"user_id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		AddedBy   int64  `json:"added_by"`
		CreatedAt string `json:"created_at"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("erro ao decodificar admins: %v", err)
	}

	admins := make([]models.AdminUser, 0, len(payload))
	for _, a := range payload {
		admins = append(admins, models.AdminUser{
			UserID:    a.UserID,
			Username:  a.Username,
			FirstName: a.FirstName,
			AddedBy:   a.AddedBy,
			CreatedAt: a.CreatedAt,
		})
	}
	return admins, nil
}

// IsAdminUser verifica se o usuário está na lista remota de administradores
func (db *DB) IsAdminUser(userID int64) (bool, error) {
	env, err := db.client.Request(http.MethodGet, fmt.Sprintf("/api/bot/admins/%d", userID), nil, nil)
	if err != nil {
		return false, err
	}
	if env.Success && len(env.Data) > 0 {
		return true, nil
	}
	if !env.Success && !notFound(env) {
		return false, apiError("erro ao verificar admin", env)
	}
	return false, nil
}

// LogInteraction registra uma interação administrativa (melhor esforço)
func (db *DB) LogInteraction(userID int64, command, message string) error {
	body := map[string]interface{}{
		"command": command,
		"message": message,
	}

	env, err := db.client.Request(http.MethodPost, fmt.Sprintf("/api/bot/users/%d/interactions", userID), body, nil)
	if err != nil {
		return err
	}
	if !env.Success {
		return apiError("erro ao registrar interação", env)
	}
	return nil
}
