// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates
var templateFS embed.FS

// Data is the bag of values handed to a template.
type Data map[string]any

// Renderer writes a named page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data Data) error
}

// Templates renders pages from the embedded templates directory. Each page
// is parsed together with the shared layout.
type Templates struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"price": func(p *float64) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%.2f", *p)
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// New parses every page under templates/ (except the layout) once.
func New() (*Templates, error) {
	t := &Templates{pages: make(map[string]*template.Template)}
	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path == "templates/layout.html" {
			return err
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		page, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		t.pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Render executes the page into a buffer first so that a failing template
// leaves the response untouched.
func (t *Templates) Render(w http.ResponseWriter, status int, name string, data Data) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
