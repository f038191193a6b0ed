package i18n

// Translator binds an I18n instance to one resolved language, so request
// handlers and renderers do not have to thread the language through.
type Translator struct {
	i18n     *I18n
	language string
}

// NewTranslator creates a Translator for the given language. An empty
// language falls back to the instance's default.
func NewTranslator(i18n *I18n, language string) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	return &Translator{i18n: i18n, language: language}
}

// T translates a key in the translator's language.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, key, placeholders...)
}

// Language returns the resolved language code.
func (t *Translator) Language() string {
	return t.language
}
