// Package validation describes invalid client input field by field.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := Register(v); err != nil {
			panic(err)
		}
	}
}

// Register adds the tags request structs use beyond validator's built-ins.
// It runs against gin's default engine on import.
func Register(v *validator.Validate) error {
	return v.RegisterValidation("notblank", validators.NotBlank)
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned when input fails validation. It never wraps a store error.
type Error struct {
	Fields []FieldError
}

// NewError builds an Error with a single field.
func NewError(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *Error) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no field errors were collected.
func (e *Error) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Message returns the first field message, used as the top-level error text.
func (e *Error) Message() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0].Message
}

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// ParseDate accepts "2006-01-02" (interpreted in loc) or RFC 3339.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// FromBinding converts an error returned by gin's ShouldBind* into an *Error.
// It returns nil for errors that are not about a particular field, such as
// malformed JSON.
func FromBinding(err error) *Error {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		out := &Error{}
		for _, fe := range vErrs {
			out.Add(jsonName(fe.Field()), bindingMessage(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return NewError(typeErr.Field, "must be a "+typeErr.Type.String())
	}

	return nil
}

// jsonName maps a Go field name onto the camelCase name used on the wire,
// e.g. ChallengeID -> challengeId.
func jsonName(structField string) string {
	if structField == "" {
		return structField
	}
	name := strings.ToLower(structField[:1]) + structField[1:]
	if strings.HasSuffix(name, "ID") {
		name = strings.TrimSuffix(name, "ID") + "Id"
	}
	return name
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be " + fe.Param() + " characters or less"
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
