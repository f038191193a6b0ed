package i18n

import (
	"fmt"
	"strings"
)

// interpolate replaces {name} placeholders in msg with values from the
// given maps. Unknown placeholders are left as-is so missing values are
// visible rather than silently blanked.
func interpolate(msg string, placeholders ...M) string {
	if len(placeholders) == 0 || !strings.ContainsRune(msg, '{') {
		return msg
	}
	for _, m := range placeholders {
		for k, v := range m {
			msg = strings.ReplaceAll(msg, "{"+k+"}", fmt.Sprint(v))
		}
	}
	return msg
}
