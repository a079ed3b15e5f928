package notify

import "testing"

func TestNormalizeDestination(t *testing.T) {
	tests := []struct {
		name         string
		link         string
		wantChatID   int64
		wantUsername string
	}{
		{"chat ID numérico negativo", "-1001234567890", -1001234567890, ""},
		{"chat ID numérico positivo", "123456", 123456, ""},
		{"handle com @", "@canalofertas", 0, "@canalofertas"},
		{"handle sem @", "canalofertas", 0, "@canalofertas"},
		{"link t.me simples", "https://t.me/canalofertas", 0, "@canalofertas"},
		{"link t.me com parâmetros", "https://t.me/canalofertas?start=1", 0, "@canalofertas"},
		{"link t.me com fragmento", "t.me/canalofertas#topo", 0, "@canalofertas"},
		{"link t.me com @ no nome", "https://t.me/@canalofertas", 0, "@canalofertas"},
		{"espaços nas pontas", "  @canalofertas  ", 0, "@canalofertas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatID, username := NormalizeDestination(tt.link)
			if chatID != tt.wantChatID || username != tt.wantUsername {
				t.Errorf("NormalizeDestination(%q) = (%d, %q), esperado (%d, %q)",
					tt.link, chatID, username, tt.wantChatID, tt.wantUsername)
			}
		})
	}
}
