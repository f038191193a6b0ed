package middlewares

import (
	"slices"

	"github.com/typecms/typecms/internal"
	"github.com/typecms/typecms/pkg/i18n"
)

// LanguageSource attempts to extract a language preference from the request.
// It returns the language and true when a usable preference was found.
type LanguageSource func(c internal.Context) (string, bool)

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Sources []LanguageSource
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nSources replaces the default language source chain.
// Sources are tried in order; the first match wins.
func WithI18nSources(sources ...LanguageSource) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Sources = sources
	}
}

// FromQuery returns a LanguageSource reading the given query parameter.
// Values not in the available list are ignored.
func FromQuery(param string, available []string) LanguageSource {
	return func(c internal.Context) (string, bool) {
		lang := c.Query(param)
		if lang == "" || !slices.Contains(available, lang) {
			return "", false
		}
		return lang, true
	}
}

// FromCookie returns a LanguageSource reading the given cookie.
// Values not in the available list are ignored.
func FromCookie(name string, available []string) LanguageSource {
	return func(c internal.Context) (string, bool) {
		cookie, err := c.Request().Cookie(name)
		if err != nil || cookie.Value == "" || !slices.Contains(available, cookie.Value) {
			return "", false
		}
		return cookie.Value, true
	}
}

// FromAcceptLanguage returns a LanguageSource that parses the Accept-Language
// header and matches against the available languages.
func FromAcceptLanguage(available []string) LanguageSource {
	return func(c internal.Context) (string, bool) {
		header := c.Header("Accept-Language")
		if header == "" {
			return "", false
		}
		return i18n.ParseAcceptLanguage(header, available), true
	}
}

// I18n returns middleware that resolves the request language, creates a
// Translator, and stores both in the request context so that page rendering
// picks them up without re-parsing headers.
func I18n(svc *i18n.I18n, opts ...I18nOption) internal.Middleware {
	cfg := &I18nConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Default chain: query param, cookie, then Accept-Language header.
	if len(cfg.Sources) == 0 {
		cfg.Sources = []LanguageSource{
			FromQuery("lang", svc.Languages()),
			FromCookie("lang", svc.Languages()),
			FromAcceptLanguage(svc.Languages()),
		}
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			var lang string
			for _, src := range cfg.Sources {
				if l, ok := src(c); ok && l != "" {
					lang = l
					break
				}
			}
			if lang == "" {
				lang = svc.DefaultLanguage()
			}

			c.Set(internal.TranslatorKey{}, i18n.NewTranslator(svc, lang))
			c.Set(internal.LanguageKey{}, lang)

			return next(c)
		}
	}
}

// GetTranslator extracts the Translator from the context.
// Returns nil if the I18n middleware is not used.
func GetTranslator(c internal.Context) *i18n.Translator {
	if v, ok := c.Get(internal.TranslatorKey{}).(*i18n.Translator); ok {
		return v
	}
	return nil
}

// GetLanguage extracts the resolved language from the context.
// Returns an empty string if the I18n middleware is not used.
func GetLanguage(c internal.Context) string {
	if v, ok := c.Get(internal.LanguageKey{}).(string); ok {
		return v
	}
	return ""
}
