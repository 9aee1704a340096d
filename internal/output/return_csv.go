package output

import (
	"bytes"
	"encoding/csv"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/returns"
)

// ReturnCSV renders a filing-ready return record as a two line CSV: the
// schema headers in declared order, then the coerced values. Decimal values
// are fixed to 2 decimal places.
func ReturnCSV(rec returns.Record) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(rec.Headers()); err != nil {
		return nil, err
	}
	if err := w.Write(rec.Strings()); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
