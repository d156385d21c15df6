package http

import (
	"context"

	"github.com/farmstand/internal/domain"
)

// ProductRepository is the minimal interface the router requires from a product store.
// Lookups return nil, nil for a missing product; failed schema rules are
// returned as *domain.ValidationError.
type ProductRepository interface {
	Find(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
	FindByIDAndUpdate(ctx context.Context, productID string, patch domain.ProductInput) (*domain.Product, error)
	FindByIDAndDelete(ctx context.Context, productID string) (*domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
}
