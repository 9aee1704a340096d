// Package returns validates computed-and-entered payloads against the
// registered URA return form schemas and builds ordered, typed records
// ready for export.
package returns

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldType is the declared type of a schema field.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldInt     FieldType = "int"
	FieldDecimal FieldType = "decimal"
)

// SchemaField is one named, typed field of a return form.
type SchemaField struct {
	Name string
	Type FieldType
}

// FormSchema is the fixed field layout of one registered return form.
// Field order is load-bearing: exported columns must line up with the
// regulator's expected layout.
type FormSchema struct {
	FormCode string
	Fields   []SchemaField
}

// Registered form codes.
const (
	FormIndividual = "DT-2001" // individual with business income
	FormCompany    = "DT-2002" // non-individual (company)
)

var formSchemas = map[string]FormSchema{
	FormIndividual: {
		FormCode: FormIndividual,
		Fields: []SchemaField{
			{"TIN", FieldString},
			{"Taxpayer Name", FieldString},
			{"Period", FieldString},
			{"Year", FieldInt},
			{"Business Income (UGX)", FieldDecimal},
			{"Allowable Deductions (UGX)", FieldDecimal},
			{"Capital Allowances (UGX)", FieldDecimal},
			{"Exemptions (UGX)", FieldDecimal},
			{"Taxable Income (UGX)", FieldDecimal},
			{"Gross Tax (UGX)", FieldDecimal},
			{"WHT Credits (UGX)", FieldDecimal},
			{"Foreign Tax Credit (UGX)", FieldDecimal},
			{"Rebates (UGX)", FieldDecimal},
			{"Net Tax Payable (UGX)", FieldDecimal},
		},
	},
	FormCompany: {
		FormCode: FormCompany,
		Fields: []SchemaField{
			{"TIN", FieldString},
			{"Entity Name", FieldString},
			{"Period", FieldString},
			{"Year", FieldInt},
			{"Gross Turnover (UGX)", FieldDecimal},
			{"COGS (UGX)", FieldDecimal},
			{"Operating Expenses (UGX)", FieldDecimal},
			{"Other Income (UGX)", FieldDecimal},
			{"Other Expenses (UGX)", FieldDecimal},
			{"Capital Allowances (UGX)", FieldDecimal},
			{"Exemptions (UGX)", FieldDecimal},
			{"Taxable Income (UGX)", FieldDecimal},
			{"Gross Tax (UGX)", FieldDecimal},
			{"WHT Credits (UGX)", FieldDecimal},
			{"Foreign Tax Credit (UGX)", FieldDecimal},
			{"Rebates (UGX)", FieldDecimal},
			{"Net Tax Payable (UGX)", FieldDecimal},
		},
	},
}

// Schema looks up a registered form schema.
func Schema(formCode string) (FormSchema, error) {
	schema, ok := formSchemas[formCode]
	if !ok {
		return FormSchema{}, &UnknownFormError{FormCode: formCode}
	}
	return schema, nil
}

// RegisteredForms returns the registered form codes in sorted order.
func RegisteredForms() []string {
	codes := make([]string, 0, len(formSchemas))
	for code := range formSchemas {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Record is a validated return: coerced values in exact schema field order.
type Record struct {
	FormCode string
	Fields   []SchemaField
	Values   []any
}

// Headers returns the field names in schema order.
func (r Record) Headers() []string {
	headers := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		headers[i] = f.Name
	}
	return headers
}

// Strings renders the coerced values in schema order for delimited export.
// Decimal values are fixed to two places.
func (r Record) Strings() []string {
	out := make([]string, len(r.Values))
	for i, v := range r.Values {
		if d, ok := v.(decimal.Decimal); ok {
			out[i] = d.StringFixed(2)
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Value returns the coerced value for a named field.
func (r Record) Value(name string) (any, bool) {
	for i, f := range r.Fields {
		if f.Name == name {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Build validates a payload against the named form schema and emits an
// ordered, typed record. Every schema field must be present in the payload;
// values are coerced to the declared type and an unparsable value fails with
// a CoercionError naming the offending field. Building is idempotent and
// side-effect-free, and output order follows the schema regardless of
// payload insertion order.
func Build(formCode string, payload map[string]any) (Record, error) {
	schema, err := Schema(formCode)
	if err != nil {
		return Record{}, err
	}

	values := make([]any, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		raw, ok := payload[field.Name]
		if !ok {
			return Record{}, &ValidationError{FormCode: formCode, Field: field.Name}
		}
		coerced, err := coerce(field.Type, raw)
		if err != nil {
			return Record{}, &CoercionError{FormCode: formCode, Field: field.Name, Type: field.Type, Value: raw}
		}
		values = append(values, coerced)
	}
	return Record{FormCode: formCode, Fields: schema.Fields, Values: values}, nil
}

// coerce dispatches on the field type tag; one coercion function per tag.
func coerce(t FieldType, v any) (any, error) {
	switch t {
	case FieldString:
		return coerceString(v), nil
	case FieldInt:
		return coerceInt(v)
	case FieldDecimal:
		return coerceDecimal(v)
	default:
		return nil, fmt.Errorf("unsupported field type %q", t)
	}
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if d, ok := v.(decimal.Decimal); ok {
		return d.String()
	}
	return fmt.Sprint(v)
}

func coerceInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("non-finite value %v", x)
		}
		return int(x), nil
	case decimal.Decimal:
		return int(x.IntPart()), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

func coerceDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case float64:
		// decimal.NewFromFloat panics on non-finite values.
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Decimal{}, fmt.Errorf("non-finite value %v", x)
		}
		return decimal.NewFromFloat(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Decimal{}, err
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot convert %T to decimal", v)
	}
}
