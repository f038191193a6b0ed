// Package caseconv converts snake_case schema names into the casings the
// admin interface needs: kebab-case for URLs and Title Case for headings
// and labels.
package caseconv

import "strings"

// Kebab converts "blog_post" to "blog-post".
func Kebab(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// Title converts "alt_text" to "Alt Text".
func Title(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
