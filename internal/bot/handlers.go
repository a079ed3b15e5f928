package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bot-ofertas/config"
	"bot-ofertas/internal/database"
	"bot-ofertas/internal/models"
	"bot-ofertas/internal/monitor"
	"bot-ofertas/internal/notify"
	"bot-ofertas/internal/scraper"
)

// Handler agrupa as dependências dos comandos do bot
type Handler struct {
	bot      *tgbotapi.BotAPI
	cfg      *config.Config
	db       *database.DB
	monitor  *monitor.Monitor
	registry *scraper.Registry
	notifier *notify.Notifier
}

// Run processa as atualizações do Telegram até o canal de updates fechar
func Run(bot *tgbotapi.BotAPI, cfg *config.Config, db *database.DB, mon *monitor.Monitor, registry *scraper.Registry, notifier *notify.Notifier) {
	h := &Handler{
		bot:      bot,
		cfg:      cfg,
		db:       db,
		monitor:  mon,
		registry: registry,
		notifier: notifier,
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			h.handleCallback(update.CallbackQuery)
			continue
		}

		if update.Message == nil || update.Message.Text == "" {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	parts := strings.Fields(message.Text)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])
	// Remover @botname se presente
	if idx := strings.Index(command, "@"); idx > 0 {
		command = command[:idx]
	}

	if !strings.HasPrefix(command, "/") {
		return
	}

	// Comandos públicos (não precisam de autorização)
	isPublicCommand := command == "/start" || command == "/help"

	userID := message.From.ID
	if !isPublicCommand && !h.isAuthorized(userID) {
		h.reply(message.Chat.ID, "❌ Você não está autorizado a usar este bot.")
		return
	}

	switch command {
	case "/start", "/help":
		h.handleHelp(message.Chat.ID)
	case "/add":
		h.handleAddProduct(message, parts)
	case "/produtos":
		h.handleListProducts(message.Chat.ID)
	case "/remover":
		h.handleRemoveProduct(message, parts)
	case "/categorias":
		h.handleListCategories(message.Chat.ID)
	case "/addcategoria":
		h.handleAddCategory(message)
	case "/delcategoria":
		h.handleDeleteCategory(message, parts)
	case "/grupo":
		h.handleSetCategoryGroup(message, parts)
	case "/canal":
		h.handleSetChannel(message, parts)
	case "/cronjob":
		h.handleConfigureCronjob(message, parts)
	case "/monitor":
		h.handleToggleMonitor(message, parts)
	case "/status":
		h.handleStatus(message.Chat.ID)
	case "/autoaprovacao":
		h.handleToggleAutoApproval(message, parts)
	case "/afiliado":
		h.handleSetAffiliateTag(message, parts)
	case "/botao":
		h.handleSetPurchaseButton(message)
	case "/prompt":
		h.handleSetPrompt(message)
	case "/addadmin":
		h.handleAddAdmin(message, parts)
	case "/deladmin":
		h.handleRemoveAdmin(message, parts)
	case "/admins":
		h.handleListAdmins(message.Chat.ID)
	default:
		h.reply(message.Chat.ID, "Comando não reconhecido. Use /help para ver os comandos disponíveis.")
	}
}

func (h *Handler) handleCallback(call *tgbotapi.CallbackQuery) {
	if call.Message == nil {
		return
	}

	if !h.isAuthorized(call.From.ID) {
		h.answerCallback(call.ID, "❌ Não autorizado")
		return
	}

	data := call.Data
	switch {
	case strings.HasPrefix(data, "approve_"):
		h.notifier.HandleApproval(call)
	case data == "already_approved":
		h.answerCallback(call.ID, "✅ Já aprovado")
	default:
		h.answerCallback(call.ID, "")
	}
}

// isAuthorized verifica a lista de admins do .env e a lista remota
func (h *Handler) isAuthorized(userID int64) bool {
	if h.cfg.IsAuthorizedUser(userID) {
		return true
	}

	isAdmin, err := h.db.IsAdminUser(userID)
	if err != nil {
		log.Printf("Erro ao verificar admin %d: %v", userID, err)
		return false
	}
	return isAdmin
}

func (h *Handler) handleHelp(chatID int64) {
	helpText := `🤖 <b>Bot de Ofertas Amazon</b>

<b>Produtos:</b>
/add &lt;url&gt; [categoria_id] - Adicionar produto Amazon
/produtos - Listar produtos monitorados
/remover &lt;id&gt; - Remover produto

<b>Categorias:</b>
/categorias - Listar categorias
/addcategoria &lt;nome&gt; | &lt;descrição&gt; - Criar categoria
/delcategoria &lt;id&gt; - Remover categoria
/grupo &lt;categoria_id&gt; &lt;link&gt; - Definir grupo de destino da categoria

<b>Monitoramento:</b>
/cronjob &lt;intervalo&gt; &lt;pausa&gt; - Configurar intervalos (minutos)
/monitor on|off - Ligar/desligar o monitoramento
/status - Estado do monitoramento

<b>Publicação:</b>
/canal &lt;link&gt; - Definir canal de aprovação
/autoaprovacao on|off - Aprovação automática
/afiliado &lt;tag&gt; - Definir tag de afiliado
/botao &lt;texto&gt; - Texto do botão de compra
/prompt &lt;texto&gt; - Prompt da melhoria de mensagens por IA

<b>Administração:</b>
/addadmin &lt;user_id&gt; - Adicionar admin
/deladmin &lt;user_id&gt; - Remover admin
/admins - Listar admins`

	msg := tgbotapi.NewMessage(chatID, helpText)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Erro ao enviar mensagem de ajuda: %v", err)
		// Tentar sem formatação se houver erro
		msg.ParseMode = ""
		h.bot.Send(msg)
	}
}

func (h *Handler) handleAddProduct(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 {
		h.reply(message.Chat.ID, "❌ Formato incorreto.\n\nUso: /add <url> [categoria_id]\nExemplo: /add https://www.amazon.es/dp/B0ABCDE123 2")
		return
	}

	url := parts[1]
	s := h.registry.FindScraper(url)
	if s == nil {
		h.reply(message.Chat.ID, "❌ URL não suportada. Envie um link de produto Amazon (amazon.xx, amzn.to ou a.co).")
		return
	}

	var categoryID int64
	if len(parts) >= 3 {
		id, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			h.reply(message.Chat.ID, "❌ Categoria inválida. Use o ID numérico (veja /categorias).")
			return
		}
		category, err := h.db.GetCategoryByID(id)
		if err != nil {
			h.replyError(message.Chat.ID, "verificar categoria", err)
			return
		}
		if category == nil {
			h.reply(message.Chat.ID, "❌ Categoria não encontrada. Veja /categorias.")
			return
		}
		categoryID = id
	}

	// Buscar título e imagem reais da página antes de persistir
	title := scraper.TitleFromURL(url)
	imageURL := ""
	if result, err := s.Scrape(url); err != nil {
		log.Printf("Erro ao buscar título do produto: %v", err)
	} else {
		if result.Title != "" {
			title = result.Title
		}
		imageURL = result.ImageURL
	}

	productID, err := h.db.AddProduct(url, title, imageURL, categoryID, message.From.ID)
	if err != nil {
		h.replyError(message.Chat.ID, "adicionar produto", err)
		return
	}

	h.logInteraction(message.From.ID, "add_product", fmt.Sprintf("Produto: %d", productID))

	text := fmt.Sprintf("✅ <b>Produto adicionado!</b>\n\n📦 %s\n🆔 ID: %d", escapeHTML(title), productID)
	if categoryID == 0 {
		text += "\n\n💡 Sem categoria: a oferta só será publicada após associar o produto a uma categoria com grupo configurado."
	}
	h.replyHTML(message.Chat.ID, text)
}

func (h *Handler) handleListProducts(chatID int64) {
	products, err := h.db.GetAllProducts()
	if err != nil {
		h.replyError(chatID, "listar produtos", err)
		return
	}

	if len(products) == 0 {
		h.reply(chatID, "Nenhum produto monitorado. Use /add para adicionar.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📦 <b>Produtos monitorados:</b>\n")
	for _, p := range products {
		category := p.CategoryName
		if category == "" {
			category = "sem categoria"
		}
		sb.WriteString(fmt.Sprintf("\n🆔 %d - %s\n📂 %s\n🔗 %s\n", p.ID, escapeHTML(p.Title), escapeHTML(category), p.AmazonURL))
	}
	h.replyHTML(chatID, sb.String())
}

func (h *Handler) handleRemoveProduct(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 {
		h.reply(message.Chat.ID, "❌ Uso: /remover <id>")
		return
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ ID inválido.")
		return
	}

	if err := h.db.DeleteProduct(id); err != nil {
		h.replyError(message.Chat.ID, "remover produto", err)
		return
	}

	h.logInteraction(message.From.ID, "delete_product", fmt.Sprintf("Produto: %d", id))
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Produto %d removido (com histórico de descontos).", id))
}

func (h *Handler) handleListCategories(chatID int64) {
	categories, err := h.db.GetAllCategories()
	if err != nil {
		h.replyError(chatID, "listar categorias", err)
		return
	}

	if len(categories) == 0 {
		h.reply(chatID, "Nenhuma categoria criada. Use /addcategoria para criar.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📂 <b>Categorias:</b>\n")
	for _, c := range categories {
		group := c.TelegramLink
		if group == "" {
			group = "sem grupo configurado"
		}
		sb.WriteString(fmt.Sprintf("\n🆔 %d - <b>%s</b>\n📄 %s\n👥 %s\n", c.ID, escapeHTML(c.Name), escapeHTML(c.Description), escapeHTML(group)))
	}
	h.replyHTML(chatID, sb.String())
}

func (h *Handler) handleAddCategory(message *tgbotapi.Message) {
	args := strings.TrimSpace(strings.TrimPrefix(message.Text, "/addcategoria"))
	name, description := args, ""
	if idx := strings.Index(args, "|"); idx >= 0 {
		name = strings.TrimSpace(args[:idx])
		description = strings.TrimSpace(args[idx+1:])
	}

	if name == "" {
		h.reply(message.Chat.ID, "❌ Uso: /addcategoria <nome> | <descrição>")
		return
	}

	created, err := h.db.AddCategory(name, description, message.From.ID)
	if err != nil {
		h.replyError(message.Chat.ID, "adicionar categoria", err)
		return
	}
	if !created {
		h.reply(message.Chat.ID, "❌ Já existe uma categoria com esse nome.")
		return
	}

	h.logInteraction(message.From.ID, "add_category", name)
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Categoria %q criada!\n\n💡 Use /grupo <categoria_id> <link> para definir o grupo de destino.", name))
}

func (h *Handler) handleDeleteCategory(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 {
		h.reply(message.Chat.ID, "❌ Uso: /delcategoria <id>")
		return
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ ID inválido.")
		return
	}

	if err := h.db.DeleteCategory(id); err != nil {
		h.replyError(message.Chat.ID, "remover categoria", err)
		return
	}

	h.logInteraction(message.From.ID, "delete_category", fmt.Sprintf("Categoria: %d", id))
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Categoria %d removida.", id))
}

func (h *Handler) handleSetCategoryGroup(message *tgbotapi.Message, parts []string) {
	if len(parts) < 3 {
		h.reply(message.Chat.ID, "❌ Uso: /grupo <categoria_id> <link>\nExemplo: /grupo 2 https://t.me/meugrupo")
		return
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ ID de categoria inválido.")
		return
	}

	category, err := h.db.GetCategoryByID(id)
	if err != nil {
		h.replyError(message.Chat.ID, "verificar categoria", err)
		return
	}
	if category == nil {
		h.reply(message.Chat.ID, "❌ Categoria não encontrada.")
		return
	}

	link := parts[2]
	if err := h.db.UpdateCategoryTelegramLink(id, link); err != nil {
		h.replyError(message.Chat.ID, "salvar grupo da categoria", err)
		return
	}

	h.logInteraction(message.From.ID, "set_category_group", fmt.Sprintf("Categoria: %d", id))
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Grupo de destino da categoria %q configurado.\n\n⚠️ O bot precisa ser admin do grupo para publicar.", category.Name))
}

func (h *Handler) handleSetChannel(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 {
		h.reply(message.Chat.ID, "❌ Uso: /canal <link>\nExemplo: /canal https://t.me/meucanal ou /canal -1001234567890")
		return
	}

	if err := h.db.UpdateChannelConfig(parts[1], message.From.ID); err != nil {
		h.replyError(message.Chat.ID, "salvar canal de aprovação", err)
		return
	}

	h.logInteraction(message.From.ID, "set_channel", parts[1])
	h.reply(message.Chat.ID, "✅ Canal de aprovação configurado.\n\n⚠️ O bot precisa ser admin do canal para postar as notificações.")
}

func (h *Handler) handleConfigureCronjob(message *tgbotapi.Message, parts []string) {
	if len(parts) < 3 {
		h.reply(message.Chat.ID, fmt.Sprintf("❌ Uso: /cronjob <intervalo> <pausa> (minutos)\n\nMínimos: intervalo %d, pausa %d.\nExemplo: /cronjob 60 2", models.MinCheckInterval, models.MinProductDelay))
		return
	}

	checkInterval, err1 := strconv.Atoi(parts[1])
	productDelay, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		h.reply(message.Chat.ID, "❌ Valores inválidos. Use números inteiros de minutos.")
		return
	}

	if err := models.ValidateCronjobConfig(checkInterval, productDelay); err != nil {
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	// A configuração é salva desativada; /monitor on liga o loop
	if err := h.db.UpdateCronjobConfig(checkInterval, productDelay, false, message.From.ID); err != nil {
		h.replyError(message.Chat.ID, "salvar configuração do cronjob", err)
		return
	}

	h.logInteraction(message.From.ID, "configure_cronjob", fmt.Sprintf("Intervalo: %dmin, pausa: %dmin", checkInterval, productDelay))
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Configuração salva!\n\n🔄 Verificação a cada %d minutos\n⏱ Pausa de %d minuto(s) entre produtos\n\n💡 Use /monitor on para iniciar.", checkInterval, productDelay))
}

func (h *Handler) handleToggleMonitor(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 || (parts[1] != "on" && parts[1] != "off") {
		h.reply(message.Chat.ID, "❌ Uso: /monitor on|off")
		return
	}

	config, err := h.db.GetCronjobConfig()
	if err != nil {
		h.replyError(message.Chat.ID, "buscar configuração do cronjob", err)
		return
	}
	if config == nil {
		h.reply(message.Chat.ID, "❌ Configure primeiro os intervalos com /cronjob.")
		return
	}

	enable := parts[1] == "on"
	if err := h.db.UpdateCronjobConfig(config.CheckInterval, config.ProductDelay, enable, message.From.ID); err != nil {
		h.replyError(message.Chat.ID, "atualizar configuração do cronjob", err)
		return
	}

	if enable {
		h.monitor.Start()
		h.logInteraction(message.From.ID, "monitor_on", "")
		h.reply(message.Chat.ID, "✅ Monitoramento ativado.")
	} else {
		h.monitor.Stop()
		h.logInteraction(message.From.ID, "monitor_off", "")
		h.reply(message.Chat.ID, "✅ Monitoramento desativado.")
	}
}

func (h *Handler) handleStatus(chatID int64) {
	config, err := h.db.GetCronjobConfig()
	if err != nil {
		h.replyError(chatID, "buscar configuração do cronjob", err)
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 <b>Status do monitoramento</b>\n\n")

	if h.monitor.Running() {
		sb.WriteString("🟢 Loop em execução\n")
	} else {
		sb.WriteString("🔴 Loop parado\n")
	}

	if config == nil {
		sb.WriteString("⚙️ Sem configuração (use /cronjob)")
	} else {
		sb.WriteString(fmt.Sprintf("🔄 Intervalo: %d minutos\n", config.CheckInterval))
		sb.WriteString(fmt.Sprintf("⏱ Pausa entre produtos: %d minuto(s)\n", config.ProductDelay))
		if config.LastRun != "" {
			sb.WriteString(fmt.Sprintf("🕓 Última execução: %s\n", escapeHTML(config.LastRun)))
		}
	}

	if products, err := h.db.GetAllProducts(); err == nil {
		sb.WriteString(fmt.Sprintf("\n📦 %d produto(s) monitorado(s)", len(products)))
	}

	h.replyHTML(chatID, sb.String())
}

func (h *Handler) handleToggleAutoApproval(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 || (parts[1] != "on" && parts[1] != "off") {
		h.reply(message.Chat.ID, "❌ Uso: /autoaprovacao on|off")
		return
	}

	enable := parts[1] == "on"
	if err := h.db.UpdateAutoApprovalConfig(enable, message.From.ID); err != nil {
		h.replyError(message.Chat.ID, "salvar aprovação automática", err)
		return
	}

	h.logInteraction(message.From.ID, "toggle_auto_approval", parts[1])
	if enable {
		h.reply(message.Chat.ID, "✅ Aprovação automática ativada: novas ofertas vão direto para o grupo da categoria.")
	} else {
		h.reply(message.Chat.ID, "✅ Aprovação automática desativada: novas ofertas aguardam aprovação manual no canal.")
	}
}

func (h *Handler) handleSetAffiliateTag(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 {
		h.reply(message.Chat.ID, "❌ Uso: /afiliado <tag>\nExemplo: /afiliado minhaloja-21")
		return
	}

	if err := h.db.UpdateAffiliateConfig(parts[1], message.From.ID); err != nil {
		h.replyError(message.Chat.ID, "salvar tag de afiliado", err)
		return
	}

	h.logInteraction(message.From.ID, "set_affiliate_tag", parts[1])
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Tag de afiliado %q configurado. Os botões de compra passam a usar o link com o tag.", parts[1]))
}

func (h *Handler) handleSetPurchaseButton(message *tgbotapi.Message) {
	text := strings.TrimSpace(strings.TrimPrefix(message.Text, "/botao"))
	if text == "" {
		h.reply(message.Chat.ID, "❌ Uso: /botao <texto>\nExemplo: /botao 🛒 Comprar agora")
		return
	}

	if err := h.db.UpdatePurchaseButtonConfig(text, message.From.ID); err != nil {
		h.replyError(message.Chat.ID, "salvar texto do botão", err)
		return
	}

	h.logInteraction(message.From.ID, "set_purchase_button", text)
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Texto do botão de compra: %q", text))
}

func (h *Handler) handleSetPrompt(message *tgbotapi.Message) {
	text := strings.TrimSpace(strings.TrimPrefix(message.Text, "/prompt"))
	if text == "" {
		h.reply(message.Chat.ID, "❌ Uso: /prompt <texto>\n\nO texto é usado como instrução de sistema na melhoria das notificações por IA.")
		return
	}

	if err := h.db.UpdatePromptConfig(text, message.From.ID); err != nil {
		h.replyError(message.Chat.ID, "salvar prompt de IA", err)
		return
	}

	h.logInteraction(message.From.ID, "set_prompt", "")
	h.reply(message.Chat.ID, "✅ Prompt de IA configurado.")
}

func (h *Handler) handleAddAdmin(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 {
		h.reply(message.Chat.ID, "❌ Uso: /addadmin <user_id>")
		return
	}

	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ User ID inválido.")
		return
	}

	if err := h.db.AddAdminUser(userID, "", "", message.From.ID); err != nil {
		h.replyError(message.Chat.ID, "adicionar admin", err)
		return
	}

	h.logInteraction(message.From.ID, "add_admin", fmt.Sprintf("Admin: %d", userID))
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Admin %d adicionado.", userID))
}

func (h *Handler) handleRemoveAdmin(message *tgbotapi.Message, parts []string) {
	if len(parts) < 2 {
		h.reply(message.Chat.ID, "❌ Uso: /deladmin <user_id>")
		return
	}

	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		h.reply(message.Chat.ID, "❌ User ID inválido.")
		return
	}

	if userID == message.From.ID {
		h.reply(message.Chat.ID, "❌ Você não pode remover a si mesmo.")
		return
	}

	if err := h.db.RemoveAdminUser(userID); err != nil {
		h.replyError(message.Chat.ID, "remover admin", err)
		return
	}

	h.logInteraction(message.From.ID, "remove_admin", fmt.Sprintf("Admin: %d", userID))
	h.reply(message.Chat.ID, fmt.Sprintf("✅ Admin %d removido.", userID))
}

func (h *Handler) handleListAdmins(chatID int64) {
	admins, err := h.db.GetAllAdminUsers()
	if err != nil {
		h.replyError(chatID, "listar admins", err)
		return
	}

	if len(admins) == 0 {
		h.reply(chatID, "Nenhum admin cadastrado no serviço remoto (além dos do .env).")
		return
	}

	var sb strings.Builder
	sb.WriteString("👥 <b>Admins:</b>\n")
	for _, a := range admins {
		name := a.FirstName
		if name == "" {
			name = a.Username
		}
		sb.WriteString(fmt.Sprintf("\n🆔 %d %s", a.UserID, escapeHTML(name)))
	}
	h.replyHTML(chatID, sb.String())
}

// --- Auxiliares ---

// escapeHTML escapa caracteres especiais do HTML
func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Erro ao enviar mensagem: %v", err)
	}
}

func (h *Handler) replyHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Erro ao enviar mensagem: %v", err)
	}
}

// replyError informa ao admin que a operação falhou na persistência,
// em vez de engolir o erro silenciosamente
func (h *Handler) replyError(chatID int64, operation string, err error) {
	log.Printf("Erro ao %s: %v", operation, err)
	h.reply(chatID, fmt.Sprintf("❌ Erro ao %s: %v", operation, err))
}

// logInteraction registra a interação no serviço remoto (melhor esforço)
func (h *Handler) logInteraction(userID int64, command, detail string) {
	if err := h.db.LogInteraction(userID, command, detail); err != nil {
		log.Printf("Erro ao registrar interação: %v", err)
	}
}

func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("Erro ao responder callback: %v", err)
	}
}
