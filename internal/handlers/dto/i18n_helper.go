package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/fitcore/users-service/internal/infrastructure/i18n"
)

// T traduz uma chave usando o tradutor e o idioma resolvidos pelo middleware.
// Retorna a própria chave quando o middleware não está presente.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, exists := c.Get(i18n.TranslatorContextKey)
	if !exists {
		return key
	}

	translator, ok := value.(*i18n.Translator)
	if !ok {
		return key
	}

	return translator.T(Language(c), key, params...)
}

// Language retorna o idioma resolvido para a requisição
func Language(c *gin.Context) string {
	if lang := c.GetString(i18n.LanguageContextKey); lang != "" {
		return lang
	}
	return "en"
}
