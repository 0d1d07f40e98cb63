// =============================================================================
// CSV Normalizer - Record Processor
// =============================================================================
//
// The Processor orchestrates the normalization of one input file, line by
// line. It owns the tokenizer, the one-time column-order resolution, the
// dispatcher and the error budget.
//
// STATE MACHINE:
//   AwaitingFirstLine -> Processing -> Halted
//
//   The first successfully tokenized record decides the column order: a
//   header is emitted verbatim, anything else is normalized as data under
//   the canonical order. Every later line is tokenized and dispatched. Any
//   failure is counted against the error budget; crossing the budget moves
//   the processor to Halted, a terminal state in which no further input is
//   accepted and no further output is produced.
//
// =============================================================================

package processor

import (
	"errors"
	"fmt"
	"strings"

	"csv-normalizer/internal/csvparser"
	"csv-normalizer/internal/field"
)

// ErrBudgetExhausted is the fatal condition raised when the number of
// recorded errors reaches the configured maximum. Unlike per-line failures
// it ends the whole run; callers must report it as an abnormal termination.
var ErrBudgetExhausted = errors.New("max error count reached")

// IsBudgetExhausted reports whether err is (or wraps) the fatal
// budget-exhausted condition, as opposed to a per-line skip.
func IsBudgetExhausted(err error) bool {
	return errors.Is(err, ErrBudgetExhausted)
}

// State identifies the processor's position in its lifecycle.
type State int

const (
	// AwaitingFirstLine means the column order has not been resolved yet.
	AwaitingFirstLine State = iota

	// Processing means the column order is fixed and data lines are being
	// normalized.
	Processing

	// Halted means the error budget was exhausted. Terminal.
	Halted
)

// Processor normalizes the lines of a single input file.
type Processor struct {
	tracker   *ErrorTracker
	order     field.OrderMap
	state     State
	delimiter rune
	line      int
}

// New returns a Processor with the given error budget and the default
// comma delimiter.
func New(maxErrors int) *Processor {
	return &Processor{
		tracker:   NewErrorTracker(maxErrors),
		delimiter: csvparser.DefaultDelimiter,
		state:     AwaitingFirstLine,
	}
}

// NewWithDelimiter returns a Processor using a non-default field separator.
func NewWithDelimiter(maxErrors int, delimiter rune) *Processor {
	p := New(maxErrors)
	p.delimiter = delimiter
	return p
}

// State returns the processor's current lifecycle state.
func (p *Processor) State() State {
	return p.state
}

// ErrorCount returns the number of failures recorded so far.
func (p *Processor) ErrorCount() int {
	return p.tracker.Count()
}

// ProcessLine tokenizes and normalizes one raw input line.
//
// Return values:
//   - (output, true, nil): the normalized line (or the verbatim header) to
//     emit.
//   - ("", false, err): the line was skipped; err describes why. The caller
//     logs it and continues.
//   - ("", false, err) with errors.Is(err, ErrBudgetExhausted): the error
//     budget is exhausted. The run must stop and no output may be emitted
//     for this or any later line.
func (p *Processor) ProcessLine(line string) (string, bool, error) {
	if p.state == Halted {
		return "", false, fmt.Errorf("%w (%d errors)", ErrBudgetExhausted, p.tracker.Count())
	}

	p.line++

	record, err := csvparser.Tokenize(line, p.delimiter)
	if err != nil {
		return "", false, p.fail(err)
	}

	return p.process(record)
}

// ProcessRecord normalizes an already-tokenized record. It serves input
// sources that produce field slices instead of raw text lines, such as
// spreadsheet rows. The record must have exactly field.Count elements.
func (p *Processor) ProcessRecord(record []string) (string, bool, error) {
	if p.state == Halted {
		return "", false, fmt.Errorf("%w (%d errors)", ErrBudgetExhausted, p.tracker.Count())
	}

	p.line++

	if len(record) != field.Count {
		return "", false, p.fail(&csvparser.MalformedRecordError{Got: len(record)})
	}

	return p.process(record)
}

// process handles a well-shaped record: first-line order resolution, then
// dispatch.
func (p *Processor) process(record []string) (string, bool, error) {
	if p.state == AwaitingFirstLine {
		order, isHeader := field.ResolveOrder(record)
		p.order = order
		p.state = Processing

		if isHeader {
			// The header is passed through unchanged, not normalized.
			return strings.Join(record, ","), true, nil
		}
		// Not a header: fall through and normalize the first record as
		// ordinary data under the canonical order.
	}

	if err := Dispatch(record, p.order); err != nil {
		return "", false, p.fail(err)
	}

	return strings.Join(record, ","), true, nil
}

// fail records one error against the budget. It returns a line-scoped error
// when processing may continue, or an ErrBudgetExhausted-wrapped error when
// the budget is gone, in which case the processor halts for good.
func (p *Processor) fail(cause error) error {
	p.tracker.Record()

	if p.tracker.Exhausted() {
		p.state = Halted
		return fmt.Errorf("line %d: %v: %w (%d errors)", p.line, cause, ErrBudgetExhausted, p.tracker.Count())
	}

	return fmt.Errorf("line %d: %w", p.line, cause)
}
