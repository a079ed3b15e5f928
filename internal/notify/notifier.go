package notify

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bot-ofertas/internal/models"
)

// defaultPurchaseButtonText é usado quando não há texto configurado
const defaultPurchaseButtonText = "🛒 Comprar na Amazon"

// Sender é o subconjunto da API do Telegram usado pelo notificador
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Improver reescreve o rascunho da notificação, devolvendo o original
// quando não há melhoria disponível
type Improver interface {
	Improve(ctx context.Context, original string) string
}

// Store são as operações de persistência consumidas pelo notificador
type Store interface {
	GetChannelConfig() (*models.ChannelConfig, error)
	GetAutoApprovalConfig() (*models.AutoApprovalConfig, error)
	GetAffiliateConfig() (*models.AffiliateConfig, error)
	GetPurchaseButtonConfig() (*models.PurchaseButtonConfig, error)
	AddApprovalMessage(productID, discountID, channelMessageID int64, improvedMessage string) (int64, error)
	ApproveMessage(approvalID, approvedBy int64) (bool, error)
	GetApprovalByMessageID(channelMessageID int64) (*models.ApprovalMessage, error)
	GetProductByID(id int64) (*models.Product, error)
	GetLatestDiscountForProduct(productID int64) (*models.Discount, error)
	GetCategoryByID(id int64) (*models.Category, error)
	LogInteraction(userID int64, command, message string) error
}

// Notifier implementa o protocolo de publicação em dois estágios: posta a
// notificação no canal de aprovação e, após a aprovação (manual ou
// automática), publica no grupo da categoria. A transição para aprovado é
// terminal e idempotente: uma mensagem já aprovada nunca é republicada.
type Notifier struct {
	bot      Sender
	db       Store
	improver Improver
}

// New cria uma nova instância do notificador
func New(bot Sender, db Store, improver Improver) *Notifier {
	return &Notifier{
		bot:      bot,
		db:       db,
		improver: improver,
	}
}

// Compose monta a notificação final: rascunho em texto puro, passagem pela
// IA e, na ausência de melhoria, a renderização padrão com escape HTML
func (n *Notifier) Compose(ctx context.Context, p *models.Product, d *models.Discount) Draft {
	plain := BuildPlainDraft(p, d)

	improved := plain
	if n.improver != nil {
		improved = n.improver.Improve(ctx, plain)
	}

	draft := Draft{PhotoURL: p.ImageURL}
	if improved != plain && improved != "" {
		// A IA reescreveu o rascunho: usa o texto dela como veio,
		// assumido já em HTML
		draft.Text = improved
		draft.Improved = improved
	} else {
		draft.Text = RenderChannelHTML(p, d)
	}
	return draft
}

// SendDiscountNotification posta a notificação de desconto no canal de
// aprovação e registra a mensagem de aprovação. Com aprovação automática
// habilitada, aprova e publica no grupo imediatamente.
func (n *Notifier) SendDiscountNotification(ctx context.Context, p *models.Product, d *models.Discount) error {
	channelConfig, err := n.db.GetChannelConfig()
	if err != nil {
		return fmt.Errorf("erro ao buscar configuração do canal: %v", err)
	}
	if channelConfig == nil || !channelConfig.IsActive {
		log.Println("Canal de aprovação não configurado ou inativo, notificação descartada")
		return nil
	}

	draft := n.Compose(ctx, p, d)

	autoConfig, err := n.db.GetAutoApprovalConfig()
	if err != nil {
		log.Printf("Erro ao buscar configuração de aprovação automática: %v", err)
	}
	autoEnabled := autoConfig != nil && autoConfig.IsEnabled

	affiliateURL := n.affiliateURL(p.AmazonURL)

	// O botão de aprovação só aparece quando a aprovação é manual
	approveData := ""
	if !autoEnabled {
		approveData = fmt.Sprintf("approve_%d_%d", p.ID, d.ID)
	}
	keyboard := n.buildKeyboard(approveData, affiliateURL)

	chatID, username := NormalizeDestination(channelConfig.ChannelLink)
	sent, err := n.sendTo(chatID, username, draft.Text, draft.PhotoURL, keyboard)
	if err != nil {
		return fmt.Errorf("erro ao enviar notificação ao canal: %v", err)
	}

	approvalID, err := n.db.AddApprovalMessage(p.ID, d.ID, int64(sent.MessageID), draft.Improved)
	if err != nil {
		return fmt.Errorf("erro ao registrar mensagem de aprovação: %v", err)
	}

	log.Printf("Notificação de desconto enviada ao canal para o produto %d", p.ID)

	if autoEnabled {
		ok, err := n.db.ApproveMessage(approvalID, models.AutoApprover)
		if err != nil || !ok {
			log.Printf("Erro na aprovação automática do produto %d: %v", p.ID, err)
			return nil
		}
		log.Printf("Mensagem aprovada automaticamente para o produto %d", p.ID)

		if err := n.PublishToGroup(p, d, draft.Improved); err != nil {
			// Falha de entrega não desfaz a aprovação já registrada
			log.Printf("Erro na publicação automática do produto %d: %v", p.ID, err)
		}
	}

	return nil
}

// PublishToGroup entrega a oferta aprovada ao grupo da categoria, usando
// exatamente o texto que os revisores viram (o texto da IA quando houve
// melhoria, senão a renderização padrão)
func (n *Notifier) PublishToGroup(p *models.Product, d *models.Discount, improvedMessage string) error {
	category, err := n.db.GetCategoryByID(p.CategoryID)
	if err != nil {
		return fmt.Errorf("erro ao buscar categoria %d: %v", p.CategoryID, err)
	}
	if category == nil {
		return fmt.Errorf("categoria %d não encontrada", p.CategoryID)
	}
	if category.TelegramLink == "" {
		return fmt.Errorf("categoria %s sem grupo de destino configurado", category.Name)
	}

	var text string
	if improvedMessage != "" {
		text = stripAILinks(improvedMessage)
	} else {
		text = RenderGroupHTML(p, d)
	}

	keyboard := n.buildKeyboard("", n.affiliateURL(p.AmazonURL))

	chatID, username := NormalizeDestination(category.TelegramLink)
	if _, err := n.sendTo(chatID, username, text, p.ImageURL, keyboard); err != nil {
		return fmt.Errorf("erro ao enviar oferta ao grupo %s: %v", category.TelegramLink, err)
	}

	log.Printf("Oferta aprovada enviada ao grupo %s para o produto %d", category.TelegramLink, p.ID)
	return nil
}

// HandleApproval processa o clique no botão de aprovação. Uma segunda
// aprovação sobre a mesma mensagem é um no-op: o estado não muda e nada
// é republicado no grupo.
func (n *Notifier) HandleApproval(call *tgbotapi.CallbackQuery) {
	approval, err := n.db.GetApprovalByMessageID(int64(call.Message.MessageID))
	if err != nil {
		log.Printf("Erro ao buscar mensagem de aprovação: %v", err)
		n.answerCallback(call.ID, "❌ Erro interno")
		return
	}
	if approval == nil {
		n.answerCallback(call.ID, "❌ Mensagem não encontrada")
		return
	}

	if approval.IsApproved {
		product, _ := n.db.GetProductByID(approval.ProductID)
		n.markReviewMessageApproved(call, "✅ <b>Já aprovado</b>", product)
		n.answerCallback(call.ID, "✅ Já aprovado")
		return
	}

	ok, err := n.db.ApproveMessage(approval.ID, call.From.ID)
	if err != nil {
		log.Printf("Erro ao aprovar mensagem %d: %v", approval.ID, err)
		n.answerCallback(call.ID, "❌ Erro na aprovação")
		return
	}
	if !ok {
		n.answerCallback(call.ID, "❌ Mensagem não encontrada")
		return
	}

	product, err := n.db.GetProductByID(approval.ProductID)
	if err != nil || product == nil {
		log.Printf("Produto %d não encontrado após aprovação: %v", approval.ProductID, err)
		n.answerCallback(call.ID, "❌ Produto não encontrado")
		return
	}

	discount, err := n.db.GetLatestDiscountForProduct(approval.ProductID)
	if err != nil || discount == nil {
		log.Printf("Desconto do produto %d não encontrado após aprovação: %v", approval.ProductID, err)
		n.answerCallback(call.ID, "❌ Desconto não encontrado")
		return
	}

	// Falha de entrega é registrada mas não desfaz a aprovação
	if err := n.PublishToGroup(product, discount, approval.ImprovedMessage); err != nil {
		log.Printf("Erro ao publicar oferta aprovada: %v", err)
	}

	prefix := fmt.Sprintf("✅ <b>Aprovado por %s</b>", escapeHTML(call.From.FirstName))
	n.markReviewMessageApproved(call, prefix, product)
	n.answerCallback(call.ID, "✅ Aprovado e enviado ao grupo!")

	if err := n.db.LogInteraction(call.From.ID, "approve_discount", fmt.Sprintf("Produto: %d", approval.ProductID)); err != nil {
		log.Printf("Erro ao registrar interação: %v", err)
	}

	log.Printf("Desconto aprovado pelo usuário %d para o produto %d", call.From.ID, approval.ProductID)
}

// markReviewMessageApproved atualiza a mensagem no canal de aprovação,
// trocando o botão de aprovar por um marcador inerte
func (n *Notifier) markReviewMessageApproved(call *tgbotapi.CallbackQuery, prefix string, product *models.Product) {
	original := call.Message.Caption
	if original == "" {
		original = call.Message.Text
	}

	text := original
	if !hasApprovedPrefix(original) {
		text = prefix + "\n\n" + original
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Já aprovado", "already_approved"),
		),
	}
	if product != nil {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(n.purchaseButtonText(), n.affiliateURL(product.AmazonURL)),
		))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	var edit tgbotapi.Chattable
	if call.Message.Caption != "" {
		config := tgbotapi.NewEditMessageCaption(call.Message.Chat.ID, call.Message.MessageID, text)
		config.ParseMode = tgbotapi.ModeHTML
		config.ReplyMarkup = &keyboard
		edit = config
	} else {
		config := tgbotapi.NewEditMessageText(call.Message.Chat.ID, call.Message.MessageID, text)
		config.ParseMode = tgbotapi.ModeHTML
		config.ReplyMarkup = &keyboard
		edit = config
	}

	if _, err := n.bot.Send(edit); err != nil {
		// A aprovação segue válida mesmo se a edição falhar
		log.Printf("Erro ao atualizar mensagem no canal de aprovação: %v", err)
	}
}

func hasApprovedPrefix(text string) bool {
	return strings.HasPrefix(text, "✅")
}

// buildKeyboard monta os botões da notificação: aprovar (quando o callback
// data não é vazio) e comprar, sempre com a URL de afiliado
func (n *Notifier) buildKeyboard(approveData, affiliateURL string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if approveData != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Aprovar", approveData),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonURL(n.purchaseButtonText(), affiliateURL),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// purchaseButtonText retorna o texto configurado do botão de compra
func (n *Notifier) purchaseButtonText() string {
	config, err := n.db.GetPurchaseButtonConfig()
	if err != nil {
		log.Printf("Erro ao buscar texto do botão de compra: %v", err)
		return defaultPurchaseButtonText
	}
	if config == nil || !config.IsActive || config.Text == "" {
		return defaultPurchaseButtonText
	}
	return config.Text
}

// sendTo envia a mensagem ao destino, com foto e legenda quando há imagem.
// Se o envio da foto falhar, degrada para mensagem de texto.
func (n *Notifier) sendTo(chatID int64, username, text, photoURL string, keyboard tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error) {
	baseChat := tgbotapi.BaseChat{
		ChatID:          chatID,
		ChannelUsername: username,
		ReplyMarkup:     keyboard,
	}

	if photoURL != "" {
		photo := tgbotapi.PhotoConfig{
			BaseFile: tgbotapi.BaseFile{
				BaseChat: baseChat,
				File:     tgbotapi.FileURL(photoURL),
			},
			Caption:   text,
			ParseMode: tgbotapi.ModeHTML,
		}
		sent, err := n.bot.Send(photo)
		if err == nil {
			return sent, nil
		}
		log.Printf("Erro ao enviar foto: %v, enviando apenas texto", err)
	}

	msg := tgbotapi.MessageConfig{
		BaseChat:  baseChat,
		Text:      text,
		ParseMode: tgbotapi.ModeHTML,
	}
	return n.bot.Send(msg)
}

// answerCallback responde o callback query, apenas registrando falhas
func (n *Notifier) answerCallback(callbackID, text string) {
	if _, err := n.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("Erro ao responder callback: %v", err)
	}
}
