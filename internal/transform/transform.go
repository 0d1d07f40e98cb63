// =============================================================================
// CSV Normalizer - Transformation Engine
// =============================================================================
//
// This package implements the per-field normalization rules:
//   - TIMESTAMP:    US Pacific M/d/yy h:mm:ss AM/PM -> US Eastern ISO-8601
//   - ZIP:          zero-padded to 5 digits
//   - FULLNAME:     upper-cased
//   - ADDRESS:      passthrough (Unicode-cleaned only)
//   - FOODURATION:  H(H):mm:ss.SSS clock time -> seconds since midnight
//   - BARDURATION:  same as FOODURATION
//   - NOTES:        passthrough (Unicode-cleaned only)
//
// TOTALDURATION is the derived field. It has no single-value rule: its
// normalized value is the integer sum of the already-normalized FooDuration
// and BarDuration values, so it is computed at the record level by the
// dispatcher via NormalizeTotalDuration.
//
// Every rule receives its input already passed through Clean (replacement of
// non-BMP characters and NFC composition).
//
// =============================================================================

package transform

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode/utf8"

	"csv-normalizer/internal/field"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// timestampInputLayout matches the legacy export format, with or
	// without zero-padding on month, day and hour.
	timestampInputLayout = "1/2/06 3:04:05 PM"

	// timestampOutputLayout is ISO-8601 date-and-time with an explicit
	// UTC offset.
	timestampOutputLayout = "2006-01-02T15:04:05-07:00"

	// durationLayout matches H:mm:ss.SSS and HH:mm:ss.SSS; the stdlib
	// hour token accepts both padded and unpadded hours.
	durationLayout = "15:04:05.000"

	// zeroSeconds is the normalized form of an empty duration.
	zeroSeconds = "0"

	// maxZipLength is the maximum accepted length of a raw ZIP value.
	maxZipLength = 5
)

// Timestamps are interpreted in US Pacific and rendered in US Eastern.
// The tzdata import above embeds the zone database so the lookups cannot
// fail at runtime.
var (
	pacific = mustLoadLocation("America/Los_Angeles")
	eastern = mustLoadLocation("America/New_York")
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load time zone %s: %v", name, err))
	}
	return loc
}

// =============================================================================
// RULE DISPATCH
// =============================================================================

// SingleFieldRule normalizes one field value in isolation.
type SingleFieldRule func(value string) (string, error)

// DerivedRule computes a field value from two upstream normalized values.
type DerivedRule func(foo, bar string) (string, error)

// RuleFor returns the single-value rule for f. The second return value is
// false for the derived TotalDuration field, which must be handled with
// NormalizeTotalDuration instead.
func RuleFor(f field.Field) (SingleFieldRule, bool) {
	switch f {
	case field.Timestamp:
		return NormalizeTimestamp, true
	case field.Zip:
		return NormalizeZip, true
	case field.FullName:
		return NormalizeFullName, true
	case field.Address:
		return NormalizeAddress, true
	case field.FooDuration:
		return fooDurationRule, true
	case field.BarDuration:
		return barDurationRule, true
	case field.Notes:
		return NormalizeNotes, true
	default:
		return nil, false
	}
}

func fooDurationRule(value string) (string, error) {
	return NormalizeDuration(field.FooDuration, value)
}

func barDurationRule(value string) (string, error) {
	return NormalizeDuration(field.BarDuration, value)
}

// =============================================================================
// FIELD RULES
// =============================================================================

// NormalizeTimestamp parses a timestamp in the US Pacific zone and renders
// it as an ISO-8601 string in the US Eastern zone. DST transitions are
// handled by the zone database on both sides of the conversion.
func NormalizeTimestamp(value string) (string, error) {
	t, err := time.ParseInLocation(timestampInputLayout, value, pacific)
	if err != nil {
		return "", &MalformedTimestampError{Value: value}
	}

	// Two-digit years all belong to 2000-2099 in this format. The stdlib
	// maps 69-99 to the 1900s, so those parses are shifted forward a
	// century.
	if t.Year() < 2000 {
		t = time.Date(t.Year()+100, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, pacific)
	}

	return t.In(eastern).Format(timestampOutputLayout), nil
}

// NormalizeZip validates a ZIP code and zero-pads it to 5 digits.
// Empty and whitespace-only values pass through unchanged.
func NormalizeZip(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return value, nil
	}
	if utf8.RuneCountInString(value) > maxZipLength {
		return "", &ZipTooLongError{Value: value}
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return "", &InvalidZipFormatError{Value: value}
	}
	return fmt.Sprintf("%05d", n), nil
}

// NormalizeFullName upper-cases the whole value.
func NormalizeFullName(value string) (string, error) {
	return strings.ToUpper(value), nil
}

// NormalizeAddress passes the value through. The Unicode cleanup has
// already happened by the time the rule runs.
func NormalizeAddress(value string) (string, error) {
	return value, nil
}

// NormalizeNotes passes the value through, like NormalizeAddress.
func NormalizeNotes(value string) (string, error) {
	return value, nil
}

// NormalizeDuration converts a clock time of the form H:mm:ss.SSS or
// HH:mm:ss.SSS into the count of seconds elapsed since midnight, rendered
// as a plain decimal integer. Empty and whitespace-only values normalize
// to "0".
func NormalizeDuration(f field.Field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return zeroSeconds, nil
	}

	t, err := time.Parse(durationLayout, value)
	if err != nil {
		return "", &MalformedDurationError{Field: f.Name(), Value: value}
	}

	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return strconv.Itoa(seconds), nil
}

// NormalizeTotalDuration computes the derived TOTALDURATION value: the
// integer sum of the already-normalized FooDuration and BarDuration
// values. A non-numeric operand means one of the source fields was not
// normalized first; the failure is labeled with the operand's own field
// name.
func NormalizeTotalDuration(foo, bar string) (string, error) {
	fooSeconds, err := strconv.ParseInt(foo, 10, 64)
	if err != nil {
		return "", &MalformedDurationError{Field: field.FooDuration.Name(), Value: foo}
	}
	barSeconds, err := strconv.ParseInt(bar, 10, 64)
	if err != nil {
		return "", &MalformedDurationError{Field: field.BarDuration.Name(), Value: bar}
	}
	return strconv.FormatInt(fooSeconds+barSeconds, 10), nil
}
