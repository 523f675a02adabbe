package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tikprofil/tikprofil-api/internal/constants"
)

// ResolveLocale picks the response locale for a request. A lang query
// parameter wins over Accept-Language; anything unknown falls back to tr-TR.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocaleTrTR
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		if loc := matchLocale(lang); loc != "" {
			return loc
		}
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if loc := matchLocale(tag); loc != "" {
			return loc
		}
	}
	return constants.LocaleTrTR
}

func matchLocale(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	for _, loc := range constants.SupportedLocales {
		if strings.EqualFold(tag, loc) {
			return loc
		}
		base := strings.SplitN(loc, "-", 2)[0]
		if tag == base || strings.HasPrefix(tag, base+"-") {
			return loc
		}
	}
	return ""
}

// T returns the translation for key in the given locale. Missing keys fall
// back to en-US, then to the key itself so callers always get a string.
func T(locale, key string) string {
	if msgs, ok := catalog[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msgs, ok := catalog[constants.LocaleEnUS]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf formats the translation for key with args.
func Sprintf(locale, key string, args ...interface{}) string {
	msg := T(locale, key)
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
