package middleware

import (
	"fmt"
	"net/http"
)

// HandlerFunc is a route handler that can fail. It either writes the
// response itself and returns nil, or returns an error and writes nothing.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Forwarder hands a failed request over to the error chain.
type Forwarder func(w http.ResponseWriter, r *http.Request, err error)

// Wrap adapts fn to a plain http.HandlerFunc. A returned error, or a panic
// raised inside fn, is passed to forward exactly once and unchanged.
// forward is never called when fn succeeds.
func Wrap(fn HandlerFunc, forward Forwarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := call(fn, w, r); err != nil {
			forward(w, r, err)
		}
	}
}

func call(fn HandlerFunc, w http.ResponseWriter, r *http.Request) (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			//nolint:errorlint // sentinel is compared directly, as net/http does
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			if e, ok := rvr.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("panic: %v", rvr)
		}
	}()
	return fn(w, r)
}
