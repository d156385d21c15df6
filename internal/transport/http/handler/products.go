package handler

import (
	"log/slog"
	"net/http"

	"github.com/farmstand/internal/application/product"
	"github.com/farmstand/internal/domain"
	"github.com/farmstand/internal/view"
	"github.com/go-chi/chi/v5"
)

const allCategories = "All"

var errProductNotFound = domain.NewApplicationError("Product Not Found", http.StatusNotFound)

// ProductHandler serves the product pages. Every method returns its failure
// instead of writing it, so routes must be registered through the error chain.
type ProductHandler struct {
	svc   product.Service
	views view.Renderer
}

func NewProductHandler(svc product.Service, views view.Renderer) *ProductHandler {
	return &ProductHandler{svc: svc, views: views}
}

func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) error {
	category := r.URL.Query().Get("category")
	products, err := h.svc.List(r.Context(), category)
	if err != nil {
		return err
	}
	if category == "" {
		category = allCategories
	}
	return h.views.Render(w, http.StatusOK, "products/index", view.Data{
		"products": products,
		"category": category,
	})
}

func (h *ProductHandler) New(w http.ResponseWriter, _ *http.Request) error {
	return h.views.Render(w, http.StatusOK, "products/new", view.Data{
		"categories": h.svc.Categories(),
	})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) error {
	input, err := bindProduct(r)
	if err != nil {
		return err
	}
	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		return err
	}
	http.Redirect(w, r, "/products/"+created.ID, http.StatusFound)
	return nil
}

func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) error {
	p, err := h.find(r)
	if err != nil {
		return err
	}
	return h.views.Render(w, http.StatusOK, "products/show", view.Data{"product": p})
}

func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) error {
	p, err := h.find(r)
	if err != nil {
		return err
	}
	return h.views.Render(w, http.StatusOK, "products/edit", view.Data{
		"product":    p,
		"categories": h.svc.Categories(),
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) error {
	input, err := bindProduct(r)
	if err != nil {
		return err
	}
	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		return err
	}
	if updated == nil {
		return errProductNotFound
	}
	http.Redirect(w, r, "/products/"+updated.ID, http.StatusFound)
	return nil
}

// Delete redirects to the index whether or not the product existed.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	productID := chi.URLParam(r, "id")
	deleted, err := h.svc.Delete(r.Context(), productID)
	if err != nil {
		return err
	}
	if deleted == nil {
		slog.DebugContext(r.Context(), "delete of missing product", "id", productID)
	}
	http.Redirect(w, r, "/products", http.StatusFound)
	return nil
}

func (h *ProductHandler) find(r *http.Request) (*domain.Product, error) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errProductNotFound
	}
	return p, nil
}
