package utils

import (
	"regexp"
	"strings"
)

// TrimToNil trims a string and returns nil when nothing is left.
// Optional text fields are stored as NULL rather than empty strings.
func TrimToNil(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizeCurrency converts a currency code to upper case for storage consistency
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
