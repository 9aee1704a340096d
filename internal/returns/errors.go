package returns

import "fmt"

// ValidationError reports a schema-required field absent from a payload.
type ValidationError struct {
	FormCode string
	Field    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.FormCode, e.Field)
}

// CoercionError reports a field value that cannot be converted to its
// declared type.
type CoercionError struct {
	FormCode string
	Field    string
	Type     FieldType
	Value    any
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: field %q: cannot coerce %v (%T) to %s",
		e.FormCode, e.Field, e.Value, e.Value, e.Type)
}

// UnknownFormError reports a request for an unregistered form code.
type UnknownFormError struct {
	FormCode string
}

func (e *UnknownFormError) Error() string {
	return fmt.Sprintf("unknown form code %q", e.FormCode)
}
