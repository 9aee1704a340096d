package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Dataset is a column-oriented table handed over by the input collaborator
// (file upload, accounting connector). Cells are raw strings; numeric cells
// are parsed on demand and unparsable cells are ignored by consumers.
type Dataset struct {
	columns []DataColumn
}

// DataColumn is one named column of raw cell values.
type DataColumn struct {
	Name   string
	Values []string
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{}
}

// AddColumn appends a named column. Column order is preserved.
func (d *Dataset) AddColumn(name string, values ...string) *Dataset {
	d.columns = append(d.columns, DataColumn{Name: name, Values: values})
	return d
}

// Column returns the first column whose name matches case-insensitively
// after trimming surrounding whitespace.
func (d *Dataset) Column(name string) (DataColumn, bool) {
	want := NormalizeColumnName(name)
	for _, c := range d.columns {
		if NormalizeColumnName(c.Name) == want {
			return c, true
		}
	}
	return DataColumn{}, false
}

// Columns returns all columns in insertion order.
func (d *Dataset) Columns() []DataColumn {
	return d.columns
}

// Empty reports whether the dataset holds no columns.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.columns) == 0
}

// NormalizeColumnName lower-cases and trims a column header for matching.
func NormalizeColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SumNumeric sums the parseable numeric cells of the column. Blank and
// non-numeric cells contribute nothing; thousands separators are tolerated.
func (c DataColumn) SumNumeric() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c.Values {
		if d, ok := ParseCell(v); ok {
			total = total.Add(d)
		}
	}
	return total
}

// ParseCell parses one raw cell into a decimal, reporting whether the cell
// held a numeric value.
func ParseCell(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
