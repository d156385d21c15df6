package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/farmstand/internal/domain"
)

const (
	defaultErrorStatus  = http.StatusInternalServerError
	defaultErrorMessage = "Something went wrong!"

	validationPrefix = "Validation Failed...  "
)

// ErrorHandler is one stage of the error chain. It either calls next exactly
// once, with the same or a replacement error, or writes the response.
type ErrorHandler func(err error, w http.ResponseWriter, r *http.Request, next func(error))

// ErrorChain runs error handlers in registration order.
type ErrorChain struct {
	stages []ErrorHandler
}

func NewErrorChain(stages ...ErrorHandler) *ErrorChain {
	return &ErrorChain{stages: stages}
}

// DefaultErrorChain classifies and then responds.
func DefaultErrorChain() *ErrorChain {
	return NewErrorChain(ClassifyError, RespondError)
}

// Dispatch runs err through the chain. It satisfies Forwarder. If the last
// stage still forwards, the error is answered with RespondError.
func (c *ErrorChain) Dispatch(w http.ResponseWriter, r *http.Request, err error) {
	c.run(0, err, w, r)
}

// Wrap is shorthand for Wrap(fn, c.Dispatch).
func (c *ErrorChain) Wrap(fn HandlerFunc) http.HandlerFunc {
	return Wrap(fn, c.Dispatch)
}

func (c *ErrorChain) run(i int, err error, w http.ResponseWriter, r *http.Request) {
	if i >= len(c.stages) {
		RespondError(err, w, r, nil)
		return
	}
	c.stages[i](err, w, r, func(next error) {
		c.run(i+1, next, w, r)
	})
}

// ClassifyError turns a data-store validation failure into a 400
// ApplicationError. Every other error is forwarded unchanged.
func ClassifyError(err error, w http.ResponseWriter, r *http.Request, next func(error)) {
	kind := domain.KindOf(err)
	slog.WarnContext(r.Context(), "request failed", "kind", kind, "method", r.Method, "path", r.URL.Path, "err", err)

	if kind == domain.KindValidation {
		err = validationFailed(err)
	}
	next(err)
}

func validationFailed(err error) error {
	var msg string
	var m messager
	if errors.As(err, &m) {
		msg = m.Message()
	}
	return domain.NewApplicationError(validationPrefix+msg, http.StatusBadRequest)
}

type messager interface{ Message() string }

type statusCoder interface{ StatusCode() int }

// RespondError writes the error's status and message as a plain-text body,
// defaulting to 500 and a generic message. It never calls next.
func RespondError(err error, w http.ResponseWriter, r *http.Request, _ func(error)) {
	status := defaultErrorStatus
	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() != 0 {
		status = sc.StatusCode()
	}

	message := defaultErrorMessage
	var m messager
	if errors.As(err, &m) && m.Message() != "" {
		message = m.Message()
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if _, werr := io.WriteString(w, message); werr != nil {
		slog.ErrorContext(r.Context(), "write error response", "err", werr)
	}
}
