// =============================================================================
// CSV Normalizer - Transformation Failures
// =============================================================================
//
// Typed failures raised by the field transformers. All of them are
// field-scoped: one failing field aborts normalization of the rest of its
// line, but the failure is absorbed by the error budget rather than ending
// the run.
//
// =============================================================================

package transform

import "fmt"

// MalformedTimestampError reports a TIMESTAMP value that did not parse.
type MalformedTimestampError struct {
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("error parsing Timestamp: %q", e.Value)
}

// InvalidZipFormatError reports a ZIP value that is not an unsigned integer.
type InvalidZipFormatError struct {
	Value string
}

func (e *InvalidZipFormatError) Error() string {
	return fmt.Sprintf("error parsing Zip: %q is not numeric", e.Value)
}

// ZipTooLongError reports a ZIP value longer than 5 characters.
type ZipTooLongError struct {
	Value string
}

func (e *ZipTooLongError) Error() string {
	return fmt.Sprintf("error parsing Zip: %q is longer than 5", e.Value)
}

// MalformedDurationError reports a duration value that did not parse.
// Field names which duration column the failing value came from, including
// when the failure surfaces while computing the derived total.
type MalformedDurationError struct {
	Field string
	Value string
}

func (e *MalformedDurationError) Error() string {
	return fmt.Sprintf("error parsing %s: %q", e.Field, e.Value)
}
