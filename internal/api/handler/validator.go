package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var objectIDPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// FieldError is one entry in a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidationError carries the full ordered list of field failures for a
// request. The HTTP error handler renders it as a 422 with structured details.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Details))
	for i, d := range e.Details {
		msgs[i] = d.Message
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// It registers the platform's custom rules and reports fields by json name.
func NewValidator() *echoValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// mongoid: a 24-character hex ObjectID, used for foreign-key-like fields.
	_ = v.RegisterValidation("mongoid", func(fl validator.FieldLevel) bool {
		return objectIDPattern.MatchString(fl.Field().String())
	})

	// futuredate: a time.Time strictly after now, used for pickup scheduling.
	_ = v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && t.After(time.Now())
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Every rule is evaluated;
// failures accumulate into a single ordered detail list.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			details := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				details = append(details, FieldError{
					Field:   fe.Field(),
					Value:   fe.Value(),
					Message: fieldMessage(fe),
					Type:    fe.Tag(),
				})
			}
			return &ValidationError{Details: details}
		}
		return err
	}
	return nil
}

// fieldMessage converts a single rule failure into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s elements", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "mongoid":
		return field + " must be a valid object id"
	case "futuredate":
		return field + " must be in the future"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
