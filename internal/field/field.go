// =============================================================================
// CSV Normalizer - Field Catalog
// =============================================================================
//
// This package defines the fixed set of semantic fields that make up a
// record, their canonical column order, and the resolution of the actual
// column order from an optional header line.
//
// FIELD ORDER:
//   The declaration order of the Field constants is the canonical order.
//   Input files without a header are assumed to use it. Input files with a
//   header may declare any permutation of the 8 field names; the header is
//   resolved once, from the first record, into an OrderMap that is reused
//   for every subsequent record.
//
// =============================================================================

package field

import "strings"

// Field identifies one of the 8 semantic columns of a record.
type Field int

// The canonical field order. TotalDuration is the derived field: its
// normalized value is computed from FooDuration and BarDuration rather than
// from its own raw input.
const (
	Timestamp Field = iota
	Zip
	FullName
	Address
	FooDuration
	BarDuration
	TotalDuration
	Notes

	numFields
)

// Count is the number of fields in a record.
const Count = int(numFields)

// names holds the header names of the fields, indexed by Field.
var names = [Count]string{
	"TIMESTAMP",
	"ZIP",
	"FULLNAME",
	"ADDRESS",
	"FOODURATION",
	"BARDURATION",
	"TOTALDURATION",
	"NOTES",
}

// Name returns the field's header name ("TIMESTAMP", "ZIP", ...).
func (f Field) Name() string {
	if f < 0 || f >= numFields {
		return "UNKNOWN"
	}
	return names[f]
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return f.Name()
}

// Parse matches a header token against the field names. The token is
// trimmed and upper-cased before comparison, so " zip " matches Zip.
func Parse(token string) (Field, bool) {
	token = strings.ToUpper(strings.TrimSpace(token))
	for i, name := range names {
		if token == name {
			return Field(i), true
		}
	}
	return 0, false
}

// All returns the fields in canonical order.
func All() [Count]Field {
	var fields [Count]Field
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// =============================================================================
// ORDER MAP
// =============================================================================

// OrderMap maps each Field to its column position in the current input.
// Positions are unique and cover 0..Count-1. An OrderMap is built once per
// file and is immutable for the remainder of the run.
type OrderMap [Count]int

// Position returns the column position of f.
func (m OrderMap) Position(f Field) int {
	return m[f]
}

// Canonical returns the order map for input without a header:
// Timestamp=0 ... Notes=7.
func Canonical() OrderMap {
	var m OrderMap
	for i := range m {
		m[i] = i
	}
	return m
}

// ResolveOrder inspects the tokenized first record of a file and decides
// whether it is a header.
//
// The record qualifies as a header only when its 8 tokens, trimmed and
// upper-cased, cover the 8 field names exactly once each. In that case the
// returned map assigns each field the position of its matching token, and
// the second return value is true.
//
// A record with a repeated name, a missing name, or any unrecognized token
// does not qualify. The canonical order is returned instead, and the caller
// must treat the record as ordinary data.
func ResolveOrder(record []string) (OrderMap, bool) {
	if len(record) != Count {
		return Canonical(), false
	}

	var m OrderMap
	var seen [Count]bool

	for pos, token := range record {
		f, ok := Parse(token)
		if !ok || seen[f] {
			return Canonical(), false
		}
		seen[f] = true
		m[f] = pos
	}

	return m, true
}
