package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SymbolDelimiter separates the phonemes of a multi-valued table field.
const SymbolDelimiter = "|"

// NormalizeSymbol prepares a phoneme symbol for comparison:
//   - trims leading/trailing whitespace
//   - composes to Unicode NFC
//
// Case is preserved: IPA distinguishes symbols by case.
func NormalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return norm.NFC.String(s)
}

// SplitSymbols splits a delimiter-joined field into normalized symbols,
// discarding empty fragments. An empty field yields a nil slice.
func SplitSymbols(field string) []string {
	var out []string
	for _, part := range strings.Split(field, SymbolDelimiter) {
		if sym := NormalizeSymbol(part); sym != "" {
			out = append(out, sym)
		}
	}
	return out
}
