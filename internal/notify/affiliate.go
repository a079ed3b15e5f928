package notify

import (
	"log"
	"strings"
)

// AddAffiliateTag anexa o tag de afiliado como parâmetro de query da URL.
// Função pura, sem efeitos colaterais. Não é idempotente: chamar duas vezes
// anexa o tag duas vezes, então cada URL de saída passa por aqui uma única vez.
func AddAffiliateTag(rawURL, tag string) string {
	if strings.Contains(rawURL, "?") {
		return rawURL + "&tag=" + tag
	}
	return rawURL + "?tag=" + tag
}

// affiliateURL aplica o tag de afiliado configurado. Com configuração
// ausente, inativa ou inacessível, a URL volta inalterada.
func (n *Notifier) affiliateURL(rawURL string) string {
	config, err := n.db.GetAffiliateConfig()
	if err != nil {
		log.Printf("Erro ao buscar configuração de afiliado: %v", err)
		return rawURL
	}
	if config == nil || !config.IsActive || config.Tag == "" {
		return rawURL
	}
	return AddAffiliateTag(rawURL, config.Tag)
}
