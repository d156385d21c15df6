package middleware

import (
	"mime"
	"net/http"
	"strings"
)

const methodOverrideParam = "_method"

// MethodOverride lets HTML forms, which can only POST, reach PUT, PATCH and
// DELETE routes through a "_method" query parameter or url-encoded form
// field. The query parameter wins when both are present.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch m := strings.ToUpper(overrideMethod(r)); m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) string {
	if m := r.URL.Query().Get(methodOverrideParam); m != "" {
		return m
	}
	if ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); ct != "application/x-www-form-urlencoded" {
		return ""
	}
	// Parsed form values stay on r for the handler.
	if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.PostForm.Get(methodOverrideParam)
}
