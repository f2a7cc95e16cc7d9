package badge

import (
	"errors"
	"fmt"
)

// MissingFieldError reports a required configuration field that was absent
// or empty. Field holds the configuration key as the caller supplies it
// (e.g. "npmPackageName"), not the Go struct field name.
type MissingFieldError struct {
	Field string
}

// Error returns a message naming the missing field.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// IsMissingField checks if an error is (or wraps) a MissingFieldError.
func IsMissingField(err error) bool {
	var e *MissingFieldError
	return errors.As(err, &e)
}

// InvalidSlugError reports a compound identifier that is not of the form
// owner/repository.
type InvalidSlugError struct {
	Field string
	Slug  string
}

// Error returns a message naming the field and the malformed slug.
func (e *InvalidSlugError) Error() string {
	return fmt.Sprintf("field %q: malformed slug %q (want owner/repository)", e.Field, e.Slug)
}

// IsInvalidSlug checks if an error is (or wraps) an InvalidSlugError.
func IsInvalidSlug(err error) bool {
	var e *InvalidSlugError
	return errors.As(err, &e)
}

// InvalidTypeError reports a structured configuration field whose value has
// an unsupported shape. Want describes the accepted shapes.
type InvalidTypeError struct {
	Field string
	Want  string
}

// Error returns a message naming the field and the accepted shapes.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("field %q: unsupported value type (want %s)", e.Field, e.Want)
}

// IsInvalidType checks if an error is (or wraps) an InvalidTypeError.
func IsInvalidType(err error) bool {
	var e *InvalidTypeError
	return errors.As(err, &e)
}

// Required returns a *MissingFieldError naming field when value is empty.
// Generators call it once per required field, in declared order, so the
// first missing field wins.
func Required(field, value string) error {
	if value == "" {
		return &MissingFieldError{Field: field}
	}
	return nil
}
