package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var rutChars = regexp.MustCompile(`[^0-9kK]`)

// FormatFolio builds a human quote reference such as COT-000123.
func FormatFolio(prefix string, number int) string {
	return fmt.Sprintf("%s-%06d", prefix, number)
}

// NormalizeCode upper-cases and trims a catalog code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeRUT formats a Chilean tax id as 12345678-K. Input without a
// check digit is returned trimmed and unchanged.
func NormalizeRUT(rut string) string {
	clean := strings.ToUpper(rutChars.ReplaceAllString(rut, ""))
	if len(clean) < 2 {
		return strings.TrimSpace(rut)
	}
	return clean[:len(clean)-1] + "-" + clean[len(clean)-1:]
}
