package contact

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidInput = errors.New("invalid input")

const submissionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "email", "subject", "message"],
  "properties": {
    "name":    {"type": "string", "minLength": 1, "maxLength": 200},
    "email":   {"type": "string", "minLength": 1, "format": "email", "maxLength": 320},
    "phone":   {"type": "string", "maxLength": 40},
    "subject": {"type": "string", "minLength": 1, "maxLength": 300},
    "message": {"type": "string", "minLength": 1, "maxLength": 5000}
  }
}`

var compiledSchema = mustCompile(submissionSchema)

func mustCompile(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("contact: invalid schema: %v", err))
	}
	return schema
}

// FieldError describe un campo inválido del formulario.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError junta todos los campos inválidos. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// validate corre el schema sobre el input ya normalizado (trim).
// Los campos vacíos se omiten del documento, así "required" los reporta.
func validate(in Input) error {
	doc := map[string]any{}
	for k, v := range map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   in.Phone,
		"subject": in.Subject,
		"message": in.Message,
	} {
		if v != "" {
			doc[k] = v
		}
	}

	result, err := compiledSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	fields := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if desc.Type() == "required" {
			if p, ok := desc.Details()["property"].(string); ok {
				field = p
			}
		}
		fields = append(fields, FieldError{Field: field, Message: desc.Description()})
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	return &ValidationError{Fields: fields}
}
