package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// productCode identifica o produto junto ao serviço de licenciamento
const productCode = "DGAFF"

// Client encapsula as chamadas HTTP ao serviço remoto de persistência.
// Toda requisição carrega os headers de licença e um timeout limitado,
// para que uma dependência lenta não trave o loop de monitoramento.
type Client struct {
	baseURL    string
	licenseKey string
	email      string
	httpClient *http.Client
}

// Envelope é o formato padrão das respostas da API
type Envelope struct {
	Success     bool            `json:"success"`
	Error       string          `json:"error"`
	Data        json.RawMessage `json:"data"`
	ProductID   int64           `json:"product_id"`
	DiscountID  int64           `json:"discount_id"`
	ApprovalID  int64           `json:"approval_id"`
	DataChanged bool            `json:"data_changed"`
}

// New cria um novo cliente da API de persistência
func New(baseURL, licenseKey, email string) *Client {
	return &Client{
		baseURL:    baseURL,
		licenseKey: licenseKey,
		email:      email,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Request efetua uma requisição HTTP à API e decodifica o envelope de resposta
func (c *Client) Request(method, endpoint string, body interface{}, params url.Values) (*Envelope, error) {
	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar corpo da requisição: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, fullURL, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("license-key", c.licenseKey)
	req.Header.Set("email", c.email)
	req.Header.Set("product-code", productCode)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro de conexão com a API: %v", err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("resposta inválida da API (%s %s, status %d): %v", method, endpoint, resp.StatusCode, err)
	}

	return &env, nil
}

// LicenseInfo são os dados retornados pela validação de licença
type LicenseInfo struct {
	Database string `json:"database"`
	UserID   int64  `json:"user_id"`
}

// ValidateLicense valida a licença na inicialização do bot
func (c *Client) ValidateLicense() (*LicenseInfo, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/validate", nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("license-key", c.licenseKey)
	req.Header.Set("email", c.email)
	req.Header.Set("product-code", productCode)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro de conexão com a API de licenças: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("licença inválida (status %d): %s", resp.StatusCode, string(body))
	}

	var info LicenseInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("resposta inválida da validação de licença: %v", err)
	}

	log.Printf("Licença validada com sucesso (database: %s, user: %d)", info.Database, info.UserID)
	return &info, nil
}
