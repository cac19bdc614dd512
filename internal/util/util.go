// Package util contains small pure helpers shared across layers.
package util

import (
	"strconv"
	"strings"
)

// emailKeyReplacer maps every character that is illegal in a document-tree
// key to an underscore. The transform is deterministic so the uid stays
// reconstructible from the email alone.
var emailKeyReplacer = strings.NewReplacer(
	".", "_",
	"#", "_",
	"$", "_",
	"[", "_",
	"]", "_",
	"/", "_",
	" ", "_",
)

// SanitizeEmailKey derives the stable document key for a user from their
// email: lowercased, with key-illegal characters replaced.
func SanitizeEmailKey(email string) string {
	return emailKeyReplacer.Replace(strings.ToLower(strings.TrimSpace(email)))
}

// ParseCurrency normalizes a pt-BR formatted monetary string
// ("R$ 1.234,56") into its numeric amount. The second return reports
// whether a value was present and parseable; absent or unparseable values
// contribute zero to aggregates rather than failing.
func ParseCurrency(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, false
	}

	cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "R$"))
	// Thousands separator out, decimal comma in.
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// FormatCurrency renders a numeric amount in the pt-BR form "R$ 1.234,56".
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	whole := strconv.FormatFloat(value, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(whole, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + decPart
	if negative {
		return "-" + out
	}

	return out
}

// DisplayValor renders a stored monetary string for display: unparseable or
// absent values show as "não informado".
func DisplayValor(raw string) string {
	value, ok := ParseCurrency(raw)
	if !ok {
		return "não informado"
	}

	return FormatCurrency(value)
}
