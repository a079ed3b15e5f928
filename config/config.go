package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config contém as configurações da aplicação
type Config struct {
	TelegramBotToken string
	APIBaseURL       string
	LicenseKey       string
	LicenseEmail     string
	GeminiAPIKey     string
	AcceptLanguage   string
	AuthorizedUsers  []int64
}

// Load carrega as configurações das variáveis de ambiente
func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN não configurado")
	}

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		return nil, fmt.Errorf("API_BASE_URL não configurado")
	}

	cfg := &Config{
		TelegramBotToken: token,
		APIBaseURL:       strings.TrimRight(apiURL, "/"),
		LicenseKey:       os.Getenv("LICENSE_CODE"),
		LicenseEmail:     os.Getenv("LICENSE_EMAIL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		AcceptLanguage:   "pt-PT,pt;q=0.9,en;q=0.8",
	}

	// Idioma do header Accept-Language usado no scraping (depende do
	// marketplace Amazon monitorado)
	if lang := os.Getenv("SCRAPER_ACCEPT_LANGUAGE"); lang != "" {
		cfg.AcceptLanguage = lang
	}

	// Lista de administradores autorizados, separados por vírgula
	if usersStr := os.Getenv("AUTHORIZED_USERS"); usersStr != "" {
		for _, part := range strings.Split(usersStr, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			userID, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("AUTHORIZED_USERS contém valor inválido: %q", part)
			}
			cfg.AuthorizedUsers = append(cfg.AuthorizedUsers, userID)
		}
	}

	return cfg, nil
}

// IsAuthorizedUser verifica se o usuário está na lista de administradores do .env
func (c *Config) IsAuthorizedUser(userID int64) bool {
	for _, id := range c.AuthorizedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
