package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forwardRecorder struct {
	calls []error
}

func (f *forwardRecorder) forward(_ http.ResponseWriter, _ *http.Request, err error) {
	f.calls = append(f.calls, err)
}

func TestWrap_ForwardsOriginalErrorOnce(t *testing.T) {
	rec := &forwardRecorder{}
	want := errors.New("db down")
	h := Wrap(func(http.ResponseWriter, *http.Request) error { return want }, rec.forward)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, rec.calls, 1)
	assert.Same(t, want, rec.calls[0])
}

func TestWrap_SuccessNeverForwards(t *testing.T) {
	rec := &forwardRecorder{}
	h := Wrap(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		return nil
	}, rec.forward)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rec.calls)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestWrap_PanicWithErrorIsForwarded(t *testing.T) {
	rec := &forwardRecorder{}
	want := errors.New("nil product")
	h := Wrap(func(http.ResponseWriter, *http.Request) error { panic(want) }, rec.forward)

	assert.NotPanics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Len(t, rec.calls, 1)
	assert.Same(t, want, rec.calls[0])
}

func TestWrap_PanicWithValueIsForwardedAsError(t *testing.T) {
	rec := &forwardRecorder{}
	h := Wrap(func(http.ResponseWriter, *http.Request) error { panic("boom") }, rec.forward)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, rec.calls, 1)
	assert.EqualError(t, rec.calls[0], "panic: boom")
}

func TestWrap_AbortHandlerIsRepanicked(t *testing.T) {
	rec := &forwardRecorder{}
	h := Wrap(func(http.ResponseWriter, *http.Request) error { panic(http.ErrAbortHandler) }, rec.forward)

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Empty(t, rec.calls)
}
