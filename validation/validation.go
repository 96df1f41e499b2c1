// Package validation wraps go-playground/validator so violations come
// back addressed by JSON field names, the way API clients see them.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldViolation is one schema violation on a request body field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New returns a validator that reports fields under their JSON names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Details converts validator errors into per-field violations.
func Details(verrs validator.ValidationErrors) []FieldViolation {
	details := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldViolation{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return details
}

// fieldPath strips the root struct name from a validator namespace,
// leaving the JSON path into the request body.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		if fe.Kind() == reflect.Slice {
			return "must contain at most " + fe.Param() + " item(s)"
		}
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed validation on '" + fe.Tag() + "'"
	}
}
