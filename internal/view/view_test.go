package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farmstand/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesAllPages(t *testing.T) {
	tpl, err := New()
	require.NoError(t, err)
	for _, name := range []string{"products/index", "products/show", "products/new", "products/edit"} {
		assert.Contains(t, tpl.pages, name)
	}
	assert.NotContains(t, tpl.pages, "layout")
}

func TestRender_Show(t *testing.T) {
	tpl, err := New()
	require.NoError(t, err)
	p := 4.5
	rr := httptest.NewRecorder()

	err = tpl.Render(rr, http.StatusOK, "products/show", Data{
		"product": &domain.Product{ID: "01H", Name: "Melon", Price: &p, Category: "fruit"},
	})
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<h1>Melon</h1>")
	assert.Contains(t, rr.Body.String(), "$4.50")
	assert.Contains(t, rr.Body.String(), `/products/01H?_method=DELETE`)
}

func TestRender_EditSelectsCurrentCategory(t *testing.T) {
	tpl, err := New()
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	err = tpl.Render(rr, http.StatusOK, "products/edit", Data{
		"product":    &domain.Product{ID: "01H", Name: "Milk", Category: "dairy"},
		"categories": domain.Categories,
	})
	require.NoError(t, err)
	assert.Contains(t, rr.Body.String(), `<option value="dairy" selected>`)
}

func TestRender_UnknownView(t *testing.T) {
	tpl, err := New()
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	err = tpl.Render(rr, http.StatusOK, "products/missing", nil)
	assert.ErrorContains(t, err, `view "products/missing" not found`)
	assert.Empty(t, rr.Body.String())
}

func TestRender_FailingTemplateWritesNothing(t *testing.T) {
	tpl, err := New()
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	// show dereferences .product fields; a string there cannot be executed.
	err = tpl.Render(rr, http.StatusOK, "products/show", Data{"product": "not a product"})
	assert.Error(t, err)
	assert.Empty(t, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Content-Type"))
}
