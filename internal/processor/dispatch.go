package processor

import (
	"csv-normalizer/internal/field"
	"csv-normalizer/internal/transform"
)

// Dispatch normalizes a record in place.
//
// Fields are visited in canonical order, which guarantees FooDuration and
// BarDuration are normalized before the derived TotalDuration reads them.
// Each non-derived field's raw value is Unicode-cleaned, run through its
// rule, and written back into the record at the column the order map
// assigns it.
//
// The first failing field aborts the dispatch: fields already written keep
// their new values, but the caller discards the whole record anyway.
func Dispatch(record []string, order field.OrderMap) error {
	for _, f := range field.All() {
		pos := order.Position(f)

		if f == field.TotalDuration {
			foo := record[order.Position(field.FooDuration)]
			bar := record[order.Position(field.BarDuration)]
			total, err := transform.NormalizeTotalDuration(foo, bar)
			if err != nil {
				return err
			}
			record[pos] = total
			continue
		}

		rule, ok := transform.RuleFor(f)
		if !ok {
			continue
		}

		normalized, err := rule(transform.Clean(record[pos]))
		if err != nil {
			return err
		}
		record[pos] = normalized
	}

	return nil
}
