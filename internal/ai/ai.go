package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"bot-ofertas/internal/database"
)

// modelName é o modelo usado na melhoria de mensagens
const modelName = "gemini-1.5-flash"

// Improver reescreve o rascunho de notificação usando o modelo de linguagem,
// com o prompt de sistema configurado remotamente. Qualquer falha (chave
// ausente, prompt inativo, erro de chamada) degrada para o texto original.
//
// Atenção: o texto retornado pelo modelo é enviado ao Telegram sem escape,
// assumido como HTML já formatado. Essa fronteira de confiança está isolada
// aqui de propósito.
type Improver struct {
	client *genai.Client
	db     *database.DB
}

// New cria o melhorador de mensagens. Com a chave de API vazia, retorna um
// Improver inerte que sempre devolve o texto original.
func New(apiKey string, db *database.DB) (*Improver, error) {
	if apiKey == "" {
		log.Println("GEMINI_API_KEY não configurada, melhoria de mensagens desabilitada")
		return &Improver{db: db}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %v", err)
	}

	return &Improver{client: client, db: db}, nil
}

// Close libera o cliente do modelo
func (im *Improver) Close() {
	if im.client != nil {
		im.client.Close()
	}
}

// Improve envia o rascunho ao modelo e retorna o texto melhorado. Em caso
// de erro, timeout ou configuração ausente, retorna o original inalterado.
func (im *Improver) Improve(ctx context.Context, original string) string {
	if im.client == nil {
		return original
	}

	promptConfig, err := im.db.GetPromptConfig()
	if err != nil {
		log.Printf("Erro ao buscar prompt de IA: %v", err)
		return original
	}
	if promptConfig == nil || !promptConfig.IsActive || promptConfig.Text == "" {
		return original
	}

	model := im.client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(promptConfig.Text)},
	}
	model.SetMaxOutputTokens(500)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(original))
	if err != nil {
		log.Printf("Erro ao chamar o modelo de linguagem: %v", err)
		return original
	}

	improved := responseText(resp)
	if improved == "" {
		return original
	}

	log.Println("Mensagem melhorada pelo modelo de linguagem")
	return improved
}

// responseText concatena as partes de texto da primeira candidata
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
