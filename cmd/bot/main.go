package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bot-ofertas/config"
	"bot-ofertas/internal/ai"
	"bot-ofertas/internal/api"
	"bot-ofertas/internal/bot"
	"bot-ofertas/internal/database"
	"bot-ofertas/internal/monitor"
	"bot-ofertas/internal/notify"
	"bot-ofertas/internal/scraper"

	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configurações: %v", err)
	}

	// Validar licença antes de tudo
	apiClient := api.New(cfg.APIBaseURL, cfg.LicenseKey, cfg.LicenseEmail)
	if _, err := apiClient.ValidateLicense(); err != nil {
		log.Fatalf("Licença inválida, bot não iniciado: %v", err)
	}

	db := database.New(apiClient)

	// Inicializar bot do Telegram
	telegramBot, err := bot.Init(cfg.TelegramBotToken)
	if err != nil {
		log.Fatalf("Erro ao inicializar bot do Telegram: %v", err)
	}

	// Inicializar scrapers
	scraperRegistry := scraper.NewRegistry(cfg.AcceptLanguage)

	// Melhorador de mensagens por IA (inerte sem GEMINI_API_KEY)
	improver, err := ai.New(cfg.GeminiAPIKey, db)
	if err != nil {
		log.Fatalf("Erro ao inicializar melhorador de mensagens: %v", err)
	}
	defer improver.Close()

	notifier := notify.New(telegramBot, db, improver)

	// Criar gerenciador de monitoramento
	monitorInstance := monitor.New(db, scraperRegistry, notifier)

	// Retomar o monitoramento se estava ativo na última execução
	if cronjobConfig, err := db.GetCronjobConfig(); err != nil {
		log.Printf("Erro ao buscar configuração do cronjob: %v", err)
	} else if cronjobConfig != nil && cronjobConfig.IsActive {
		monitorInstance.Start()
	}

	// Processar comandos do bot em background
	go bot.Run(telegramBot, cfg, db, monitorInstance, scraperRegistry, notifier)

	// Aguardar sinal de interrupção
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Encerrando bot...")
	monitorInstance.Stop()
}
