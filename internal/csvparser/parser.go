// =============================================================================
// CSV Normalizer - Record Tokenizer
// =============================================================================
//
// This package splits one raw input line into the 8 field tokens of a
// record. The input format is not strict RFC 4180:
//   - Quote characters are kept verbatim in the tokens. Output lines are
//     joined without re-quoting, so the tokenizer must not strip them.
//   - A delimiter inside a quoted segment does not split.
//   - Trailing empty tokens are not significant: a line whose split yields
//     7 tokens but ends with the delimiter is accepted with an empty 8th
//     field.
//
// Any other token count is a malformed record. The caller records one error
// for it and skips the line without attempting any field transformation.
//
// =============================================================================

package csvparser

import (
	"fmt"
	"strings"

	"csv-normalizer/internal/field"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// MalformedRecordError reports a line that did not split into the expected
// number of fields.
type MalformedRecordError struct {
	// Got is the number of fields the line split into.
	Got int
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: got %d fields, want %d", e.Got, field.Count)
}

// Tokenize splits line on delim into exactly field.Count tokens.
//
// A delimiter is a field boundary only when it is outside a quoted segment;
// quote state toggles on every '"' rune. Trailing empty tokens are dropped
// before the count check, then restored through the trailing-delimiter rule:
// 7 tokens with the trimmed line ending in delim means the last field is
// empty.
func Tokenize(line string, delim rune) ([]string, error) {
	tokens := split(line, delim)

	// Trailing empty fields are indistinguishable from a dangling
	// delimiter, so strip them and let the rules below decide.
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) == field.Count {
		return tokens, nil
	}

	if len(tokens) == field.Count-1 && strings.HasSuffix(strings.TrimSpace(line), string(delim)) {
		return append(tokens, ""), nil
	}

	return nil, &MalformedRecordError{Got: len(tokens)}
}

// split cuts line at every delimiter that is outside a quoted segment.
// Quotes are preserved in the returned tokens.
func split(line string, delim rune) []string {
	var (
		tokens   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == delim && !inQuotes:
			tokens = append(tokens, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(tokens, current.String())
}
