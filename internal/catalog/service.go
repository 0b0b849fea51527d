package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kartzyhq/kartzy-backend/pkg/config"
	pkgerrors "github.com/kartzyhq/kartzy-backend/pkg/errors"
)

// Service exposes the catalog read and admin mutation operations.
type Service interface {
	ListProducts(ctx context.Context, spec QuerySpec) (Result, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	Categories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// CreateProductInput carries the validated fields for a new product.
// Missing optionals default: no originalPrice, empty specifications,
// zero rating and reviews, inStock derived from stock.
type CreateProductInput struct {
	Name           string
	Price          float64
	OriginalPrice  *float64
	Image          string
	Category       string
	Description    string
	Stock          int
	Specifications map[string]string
}

// UpdateProductInput merges supplied fields over the stored record.
// Nil fields are left untouched; identity is immutable.
type UpdateProductInput struct {
	Name           *string
	Price          *float64
	OriginalPrice  *float64
	Image          *string
	Category       *string
	Description    *string
	Stock          *int
	Specifications *map[string]string
}

type service struct {
	repo *Repository
	cfg  config.CatalogConfig
	now  func() time.Time
}

// NewService builds a catalog service over the given repository.
func NewService(repo *Repository, cfg config.CatalogConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}, nil
}

func (s *service) ListProducts(ctx context.Context, spec QuerySpec) (Result, error) {
	if spec.Page.Limit <= 0 {
		spec.Page.Limit = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && spec.Page.Limit > s.cfg.MaxPageSize {
		spec.Page.Limit = s.cfg.MaxPageSize
	}
	return Query(s.repo.List(), spec), nil
}

func (s *service) GetProduct(ctx context.Context, id string) (Product, error) {
	product, ok := s.repo.Get(strings.TrimSpace(id))
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return product, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(), nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (Product, error) {
	specs := input.Specifications
	if specs == nil {
		specs = map[string]string{}
	}

	product := Product{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		Price:          input.Price,
		OriginalPrice:  input.OriginalPrice,
		Image:          strings.TrimSpace(input.Image),
		Rating:         0,
		Reviews:        0,
		Category:       strings.TrimSpace(input.Category),
		Description:    strings.TrimSpace(input.Description),
		InStock:        input.Stock > 0,
		Stock:          input.Stock,
		Specifications: specs,
		CreatedAt:      s.now(),
	}

	s.repo.Insert(product)
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (Product, error) {
	product, ok := s.repo.Get(strings.TrimSpace(id))
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}

	applyUpdate(&product, input)

	if !s.repo.Save(product) {
		// the record vanished between Get and Save
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	if !s.repo.Delete(strings.TrimSpace(id)) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return nil
}

func applyUpdate(product *Product, input UpdateProductInput) {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.Image != nil {
		product.Image = strings.TrimSpace(*input.Image)
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
		product.InStock = product.Stock > 0
	}
	if input.Specifications != nil {
		product.Specifications = *input.Specifications
	}
}
