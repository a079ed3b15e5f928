package models

// Product representa um produto da Amazon sendo monitorado
type Product struct {
	ID           int64
	AmazonURL    string
	Title        string
	ImageURL     string
	CategoryID   int64
	CategoryName string
	AddedBy      int64
	CreatedAt    string
}

// Category agrupa produtos e define o grupo de destino das ofertas aprovadas
type Category struct {
	ID           int64
	Name         string
	Description  string
	TelegramLink string
	CreatedBy    int64
	CreatedAt    string
}

// Discount é uma observação de desconto confirmada para um produto.
// Os preços são mantidos como strings formatadas (ex: "139,90€") e a
// detecção de mudança compara por igualdade exata de string.
type Discount struct {
	ID                 int64
	ProductID          int64
	DiscountPercentage int
	OriginalPrice      string
	DiscountedPrice    string
	Currency           string
	DetectedAt         string
}

// ApprovalMessage correlaciona um desconto com a mensagem postada no canal
// de aprovação. Transiciona uma única vez de não aprovado para aprovado.
type ApprovalMessage struct {
	ID               int64
	ProductID        int64
	DiscountID       int64
	ChannelMessageID int64
	IsApproved       bool
	ImprovedMessage  string
}

// AutoApprover é o valor sentinela registrado como aprovador quando a
// aprovação automática está habilitada (nenhum humano envolvido).
const AutoApprover int64 = 0
