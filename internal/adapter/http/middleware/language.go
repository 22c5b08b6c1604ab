package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskdesk/pkg/translator"
)

// NormalizeLang reduces an Accept-Language header to its first tag, falling
// back to English. Quality lists like "fr-FR,fr;q=0.9" are more than the
// translator needs.
func NormalizeLang(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	if idx := strings.IndexAny(header, ",;"); idx > 0 {
		header = header[:idx]
	}
	return strings.TrimSpace(header)
}

// LanguageMiddleware stores the request language, taken from the
// Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", NormalizeLang(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
