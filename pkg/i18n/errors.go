package i18n

import "errors"

var (
	// ErrEmptyLanguage is returned when a language code is empty.
	ErrEmptyLanguage = errors.New("i18n: language cannot be empty")

	// ErrLoadTranslations is returned when a translation source cannot be
	// read or parsed.
	ErrLoadTranslations = errors.New("i18n: failed to load translations")
)
