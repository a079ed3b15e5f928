package models

import "fmt"

// Limites mínimos da configuração do cronjob, para evitar bloqueio por
// excesso de requisições à Amazon
const (
	MinCheckInterval = 5 // minutos entre ciclos completos
	MinProductDelay  = 1 // minutos de pausa entre produtos
)

// CronjobConfig é a configuração do monitoramento periódico (singleton)
type CronjobConfig struct {
	CheckInterval int // minutos
	ProductDelay  int // minutos
	IsActive      bool
	LastRun       string
	CreatedBy     int64
}

// ValidateCronjobConfig valida os valores antes de persistir a configuração
func ValidateCronjobConfig(checkInterval, productDelay int) error {
	if checkInterval < MinCheckInterval {
		return fmt.Errorf("intervalo de verificação muito curto: mínimo %d minutos", MinCheckInterval)
	}
	if productDelay < MinProductDelay {
		return fmt.Errorf("pausa entre produtos muito curta: mínimo %d minuto(s)", MinProductDelay)
	}
	return nil
}

// ChannelConfig é a configuração do canal de aprovação (singleton)
type ChannelConfig struct {
	ChannelLink string
	ChannelID   string
	IsActive    bool
	CreatedBy   int64
}

// AutoApprovalConfig habilita a aprovação automática de notificações
type AutoApprovalConfig struct {
	IsEnabled bool
	CreatedBy int64
	CreatedAt string
	UpdatedAt string
}

// AffiliateConfig guarda o tag de afiliado anexado às URLs de compra
type AffiliateConfig struct {
	Tag       string
	IsActive  bool
	CreatedBy int64
}

// PurchaseButtonConfig define o texto do botão de compra nas mensagens
type PurchaseButtonConfig struct {
	Text     string
	IsActive bool
}

// PromptConfig é o prompt de sistema usado na melhoria de mensagens por IA
type PromptConfig struct {
	Text      string
	IsActive  bool
	CreatedBy int64
}

// AdminUser é um administrador autorizado a operar o bot
type AdminUser struct {
	UserID    int64
	Username  string
	FirstName string
	AddedBy   int64
	CreatedAt string
}
