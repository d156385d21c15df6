package product

import (
	"context"
	"strings"

	"github.com/farmstand/internal/domain"
	"github.com/farmstand/internal/pkg/id"
)

type Service interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, productID string, input domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, productID string) (*domain.Product, error)
	Categories() []string
}

// productStore is the data store the service reads and writes through.
// Lookups return nil, nil when the product does not exist.
type productStore interface {
	Find(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
	FindByIDAndUpdate(ctx context.Context, productID string, patch domain.ProductInput) (*domain.Product, error)
	FindByIDAndDelete(ctx context.Context, productID string) (*domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
}

type service struct {
	repo productStore
}

func NewService(repo productStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.Find(ctx, domain.ProductFilter{Category: normalizeCategory(category)})
}

// Get, Update and Delete treat an id that New could never have produced as
// a missing product without asking the store.
func (s *service) Get(ctx context.Context, productID string) (*domain.Product, error) {
	if !id.Valid(productID) {
		return nil, nil
	}
	return s.repo.FindByID(ctx, productID)
}

func (s *service) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:       id.New(),
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Category: normalizeCategory(input.Category),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, productID string, input domain.ProductInput) (*domain.Product, error) {
	if !id.Valid(productID) {
		return nil, nil
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Category = normalizeCategory(input.Category)
	return s.repo.FindByIDAndUpdate(ctx, productID, input)
}

func (s *service) Delete(ctx context.Context, productID string) (*domain.Product, error) {
	if !id.Valid(productID) {
		return nil, nil
	}
	return s.repo.FindByIDAndDelete(ctx, productID)
}

func (s *service) Categories() []string {
	return append([]string(nil), domain.Categories...)
}

// Categories are stored lower-case.
func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
