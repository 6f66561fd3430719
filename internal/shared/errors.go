package shared

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Violation is one failed rule on one field
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a record breaks one or more field rules.
// It always carries every violation found in the pass, ordered by field.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError builds a ValidationError with a single violation
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Violations: []Violation{{Field: field, Message: message}},
	}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the field has at least one violation
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Message returns the first message recorded for field, or "" if none
func (e *ValidationError) Message(field string) string {
	for _, v := range e.Violations {
		if v.Field == field {
			return v.Message
		}
	}
	return ""
}

// IsValidationError reports whether err wraps a *ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// FromValidation converts the result of an ozzo-validation call.
//
// validation.Errors (struct validation) becomes one violation per field.
// A single validation.Error (value validation) is attributed to field.
// Internal rule failures, such as a storage lookup that could not run,
// are unwrapped and returned as plain errors.
func FromValidation(field string, err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) && internal.InternalError() != nil {
		return internal.InternalError()
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		verr := &ValidationError{}
		for name, fe := range fieldErrs {
			if fe == nil {
				continue
			}
			verr.Violations = append(verr.Violations, Violation{Field: name, Message: fe.Error()})
		}
		if len(verr.Violations) == 0 {
			return nil
		}
		sort.Slice(verr.Violations, func(i, j int) bool {
			return verr.Violations[i].Field < verr.Violations[j].Field
		})
		return verr
	}

	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		return NewValidationError(field, ruleErr.Error())
	}

	return err
}
