package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodOverride(t *testing.T) {
	cases := []struct {
		name   string
		method string
		target string
		want   string
	}{
		{"post to put", http.MethodPost, "/products/1?_method=PUT", http.MethodPut},
		{"lower case", http.MethodPost, "/products/1?_method=delete", http.MethodDelete},
		{"unsupported override", http.MethodPost, "/products/1?_method=GET", http.MethodPost},
		{"only from post", http.MethodGet, "/products/1?_method=DELETE", http.MethodGet},
		{"no override", http.MethodPost, "/products", http.MethodPost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			h := MethodOverride(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = r.Method
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tc.method, tc.target, nil))
			assert.Equal(t, tc.want, got)
		})
	}
}

func formPost(target string, form url.Values, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", contentType)
	return r
}

func TestMethodOverride_FormField(t *testing.T) {
	var got, name string
	h := MethodOverride(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Method
		name = r.PostFormValue("name")
	}))

	h.ServeHTTP(httptest.NewRecorder(), formPost("/products/1",
		url.Values{"_method": {"PUT"}, "name": {"Kale"}}, "application/x-www-form-urlencoded"))

	assert.Equal(t, http.MethodPut, got)
	assert.Equal(t, "Kale", name, "form values must survive the override")
}

func TestMethodOverride_QueryWinsOverFormField(t *testing.T) {
	var got string
	h := MethodOverride(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Method
	}))

	h.ServeHTTP(httptest.NewRecorder(), formPost("/products/1?_method=DELETE",
		url.Values{"_method": {"PUT"}}, "application/x-www-form-urlencoded"))

	assert.Equal(t, http.MethodDelete, got)
}

func TestMethodOverride_IgnoresNonFormBodies(t *testing.T) {
	var got string
	h := MethodOverride(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Method
	}))

	h.ServeHTTP(httptest.NewRecorder(), formPost("/products",
		url.Values{"_method": {"PUT"}}, "application/json"))

	assert.Equal(t, http.MethodPost, got)
}
