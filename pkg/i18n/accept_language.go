package i18n

import (
	"sort"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the header size before parsing.
const maxAcceptLanguageLength = 4096

type languageTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage returns the best match between an Accept-Language
// header and the available languages, honouring quality values. A base match
// ("en" for "en-US") is accepted when no exact match exists. Falls back to
// the first available language.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := parseLanguageTags(header)
	for _, tag := range tags {
		for _, avail := range available {
			norm := strings.ToLower(avail)
			if tag.tag == norm || baseOf(tag.tag) == baseOf(norm) {
				return avail
			}
		}
	}
	return available[0]
}

func parseLanguageTags(header string) []languageTag {
	var tags []languageTag
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag, params, _ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "*" {
			continue
		}
		quality := 1.0
		if params != "" {
			for param := range strings.SplitSeq(params, ";") {
				k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || strings.TrimSpace(k) != "q" {
					continue
				}
				if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}
		if quality > 0 {
			tags = append(tags, languageTag{tag: tag, quality: quality})
		}
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].quality > tags[j].quality
	})
	return tags
}

func baseOf(tag string) string {
	base, _, _ := strings.Cut(tag, "-")
	return base
}
