package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/arms237/backend-vehicleShop/pkg/i18n"
)

// LangKey is the gin context key holding the resolved request language
const LangKey = "lang"

// LocaleMiddleware resolves the request language. Precedence: the lang query
// parameter, then the X-Lang header, then the lang cookie, then the default.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = c.GetHeader("X-Lang")
		}
		if lang == "" {
			if cookie, err := c.Cookie("lang"); err == nil {
				lang = cookie
			}
		}
		c.Set(LangKey, i18n.Resolve(lang))
		c.Next()
	}
}

// Lang returns the resolved request language
func Lang(c *gin.Context) string {
	if lang := c.GetString(LangKey); lang != "" {
		return lang
	}
	return i18n.DefaultLanguage
}
