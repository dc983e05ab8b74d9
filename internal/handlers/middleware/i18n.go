package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fitcore/users-service/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey guarda o idioma resolvido no contexto do Gin
	LanguageContextKey = i18n.LanguageContextKey
	// TranslatorContextKey guarda o tradutor no contexto do Gin
	TranslatorContextKey = i18n.TranslatorContextKey
)

// I18n resolve o idioma da requisição e expõe o tradutor no contexto.
// Prioridade: query ?lang=, header Accept-Language, idioma padrão.
func I18n(translator *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := ""

		if queryLang := c.Query("lang"); queryLang != "" && translator.Supports(queryLang) {
			lang = queryLang
		}

		if lang == "" {
			lang = matchAcceptLanguage(translator, c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = translator.DefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(TranslatorContextKey, translator)

		c.Next()
	}
}

// matchAcceptLanguage percorre o header Accept-Language em ordem de preferência
// e retorna o primeiro idioma suportado, aceitando a variante base (pt-BR -> pt)
func matchAcceptLanguage(translator *i18n.Translator, acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, entry := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(entry)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if translator.Supports(lang) {
			return lang
		}

		if idx := strings.Index(lang, "-"); idx != -1 {
			if base := lang[:idx]; translator.Supports(base) {
				return base
			}
		}
	}

	return ""
}
