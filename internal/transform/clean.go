package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean prepares a raw field value for its transformation rule. Two steps:
//
//  1. Every character outside the 16-bit codepoint range (and every invalid
//     UTF-8 byte) is replaced with the Unicode replacement character U+FFFD.
//  2. The result is put into canonical composition form (NFC), so base
//     characters followed by combining marks collapse into precomposed
//     characters wherever one exists.
//
// The derived TOTALDURATION field is never cleaned; its inputs are the
// already-normalized duration fields.
func Clean(value string) string {
	value = strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return unicode.ReplacementChar
		}
		return r
	}, value)

	return norm.NFC.String(value)
}
