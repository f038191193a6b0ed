// Package i18n provides the localized strings used by the generated admin
// interface. An I18n instance is immutable after construction and safe for
// concurrent reads; a Translator fixes the language for one request.
//
// The interface chrome ships with built-in English messages; hosts load
// additional languages from YAML files and can override any key.
package i18n
