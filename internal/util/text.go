package util

import "strings"

// SanitizeSearchText strips invalid UTF-8 and null bytes from free-text
// query input before it is bound as a query parameter.
func SanitizeSearchText(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	return strings.ReplaceAll(sanitized, "\x00", "")
}
