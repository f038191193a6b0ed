package i18n

import (
	"fmt"
	"sort"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

// M is a placeholder map for message interpolation.
type M map[string]any

// I18n holds all translations, flattened for O(1) lookup.
// It is immutable after New returns, making it safe for unsynchronized
// concurrent reads from request handlers.
type I18n struct {
	// Key format: "lang:key.path"
	translations map[string]string
	defaultLang  string
	languages    []string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance. All configuration happens during
// construction; the instance cannot be mutated afterwards.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	i.languages = i.buildLanguagesList()
	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithTranslations adds messages for a language. Nested maps are flattened
// with dot-separated keys. Later options override earlier ones.
func WithTranslations(lang string, messages map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		flattenInto(i.translations, lang+":", messages)
		return nil
	}
}

// DefaultLanguage returns the configured fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Languages returns all languages with at least one message, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

// T resolves a key in the given language, falling back to the default
// language and finally to the key itself. Placeholders in the message are
// replaced from the optional maps.
func (i *I18n) T(lang, key string, placeholders ...M) string {
	msg, ok := i.translations[lang+":"+key]
	if !ok {
		msg, ok = i.translations[i.defaultLang+":"+key]
	}
	if !ok {
		msg = key
	}
	return interpolate(msg, placeholders...)
}

func (i *I18n) buildLanguagesList() []string {
	seen := map[string]bool{i.defaultLang: true}
	langs := []string{i.defaultLang}
	keys := make([]string, 0, len(i.translations))
	for k := range i.translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for j := 0; j < len(k); j++ {
			if k[j] == ':' {
				if lang := k[:j]; !seen[lang] {
					seen[lang] = true
					langs = append(langs, lang)
				}
				break
			}
		}
	}
	return langs
}

func flattenInto(dst map[string]string, prefix string, src map[string]any) {
	for k, v := range src {
		switch val := v.(type) {
		case map[string]any:
			flattenInto(dst, prefix+k+".", val)
		case string:
			dst[prefix+k] = val
		default:
			dst[prefix+k] = fmt.Sprint(val)
		}
	}
}
