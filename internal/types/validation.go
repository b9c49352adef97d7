package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ------------------------------
// Request Validation
// ------------------------------

// ValidationError describes one field that failed local validation.
// The request never reached the network.
type ValidationError struct {
	Field   string // wire name of the field, e.g. "hook_url"
	Tag     string // failed rule, e.g. "http_url"
	Value   string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ValidationErrors collects every failed field of one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report wire names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Expose decimal amounts to numeric rules (gt, required).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate checks a request struct against its validate tags and converts
// any failures into ValidationErrors.
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(ferrs))
	for _, fe := range ferrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
			Message: fmt.Sprintf("field %q failed on the %q rule", fe.Field(), fe.Tag()),
		})
	}
	return out
}

// ValidateVar checks a single value against a rule, reporting failures under
// the given wire name. Used for endpoints that take one bare parameter.
func ValidateVar(field string, value interface{}, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(ferrs))
	for _, fe := range ferrs {
		out = append(out, ValidationError{
			Field:   field,
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
			Message: fmt.Sprintf("field %q failed on the %q rule", field, fe.Tag()),
		})
	}
	return out
}
