package bot

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Init autentica o bot junto à API do Telegram
func Init(token string) (*tgbotapi.BotAPI, error) {
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN não configurado, defina no .env ou no ambiente")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		if err.Error() == "Unauthorized" {
			return nil, fmt.Errorf("token do Telegram recusado. Confira o TELEGRAM_BOT_TOKEN gerado pelo @BotFather")
		}
		return nil, fmt.Errorf("erro ao autenticar no Telegram: %v", err)
	}

	bot.Debug = false
	log.Printf("Conectado ao Telegram como @%s", bot.Self.UserName)
	return bot, nil
}
