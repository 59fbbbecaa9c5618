package validate

import "fmt"

type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{
		Fields: fields,
	}
}
func (f *FieldsError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(f.Fields))
}
