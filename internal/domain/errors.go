package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for domain-level error discrimination.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// Error kinds reported by Kind.
const (
	KindValidation  = "ValidationError"
	KindApplication = "ApplicationError"
	KindError       = "Error"
)

// ApplicationError is a user-facing failure with an explicit HTTP status.
// It deliberately does not unwrap to whatever caused it.
type ApplicationError struct {
	Msg    string
	Status int
}

func NewApplicationError(message string, status int) *ApplicationError {
	return &ApplicationError{Msg: message, Status: status}
}

func (e *ApplicationError) Error() string   { return e.Msg }
func (e *ApplicationError) Message() string { return e.Msg }
func (e *ApplicationError) StatusCode() int { return e.Status }
func (e *ApplicationError) Kind() string    { return KindApplication }

// FieldError describes one failed rule on one field.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError is raised by the data store when a record breaks its schema rules.
type ValidationError struct {
	Msg    string
	Fields []FieldError
}

// NewValidationError builds a ValidationError for the named entity, joining the field messages.
func NewValidationError(entity string, fields []FieldError) *ValidationError {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return &ValidationError{
		Msg:    entity + " validation failed: " + strings.Join(msgs, ", "),
		Fields: fields,
	}
}

func (e *ValidationError) Error() string   { return e.Msg }
func (e *ValidationError) Message() string { return e.Msg }
func (e *ValidationError) Kind() string    { return KindValidation }

// KindOf returns the kind of the first error in err's chain that reports one,
// or KindError for anything unclassified.
func KindOf(err error) string {
	var k interface{ Kind() string }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindError
}
