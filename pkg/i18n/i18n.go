// Package i18n holds the localization catalog. The catalog is built once at
// package init and is read-only afterwards; lookups are keyed by (language
// tag, message key) and fall back to the default language, then to the key
// itself.
package i18n

import "strings"

// DefaultLanguage is the fallback language tag
const DefaultLanguage = "fr"

// SupportedLanguages lists the language tags the catalog carries
var SupportedLanguages = []string{"fr", "en", "it"}

// Resolve normalizes a requested language tag ("fr-FR", "EN") to a supported
// one, falling back to the default when the tag is unknown or empty.
func Resolve(lang string) string {
	if lang == "" {
		return DefaultLanguage
	}
	tag := strings.ToLower(lang)
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	for _, s := range SupportedLanguages {
		if s == tag {
			return s
		}
	}
	return DefaultLanguage
}

// T translates a message key for the given language. Placeholder args of the
// form {name} are substituted. Missing keys fall back to the default
// language, then to the key itself.
func T(lang, key string, args ...map[string]string) string {
	msg, ok := catalog[Resolve(lang)][key]
	if !ok {
		msg, ok = catalog[DefaultLanguage][key]
	}
	if !ok {
		msg = key
	}
	for _, set := range args {
		for name, value := range set {
			msg = strings.ReplaceAll(msg, "{"+name+"}", value)
		}
	}
	return msg
}
