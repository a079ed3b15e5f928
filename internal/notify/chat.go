package notify

import (
	"strconv"
	"strings"
)

// NormalizeDestination converte um destino configurado (chat ID numérico,
// @handle, handle sem @ ou link t.me/...) na forma canônica esperada pela
// API do Telegram: um chat ID numérico ou um username com @.
func NormalizeDestination(link string) (chatID int64, username string) {
	link = strings.TrimSpace(link)

	// Link t.me: extrai o nome do canal, descartando parâmetros
	if idx := strings.Index(link, "t.me/"); idx >= 0 {
		name := link[idx+len("t.me/"):]
		if cut := strings.IndexAny(name, "?#"); cut >= 0 {
			name = name[:cut]
		}
		name = strings.TrimPrefix(name, "@")
		return 0, "@" + name
	}

	// Chat ID numérico (grupos e canais usam IDs negativos)
	if id, err := strconv.ParseInt(link, 10, 64); err == nil {
		return id, ""
	}

	if strings.HasPrefix(link, "@") {
		return 0, link
	}

	// Assume que é um nome de canal sem o @
	return 0, "@" + link
}
