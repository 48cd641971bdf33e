package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/money"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

// ProductInput carries the admin payload for creating or updating a product.
// Price is the decimal KWD string, e.g. "12.500".
type ProductInput struct {
	Title       i18n.Text
	Description i18n.Text
	Price       string
	ImageURL    *string
	Category    *string
	IsActive    *bool
	SortOrder   *int
}

// Service exposes the catalog read path plus the admin CRUD surface.
type Service interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListActive(ctx context.Context, category *string, page pagination.Params) ([]models.Product, int64, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.Product, int64, error)
	Create(ctx context.Context, input ProductInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds the catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// GetActiveByID serves the public product page and the cart. Inactive
// products are indistinguishable from missing ones.
func (s *service) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) ListActive(ctx context.Context, category *string, page pagination.Params) ([]models.Product, int64, error) {
	return s.List(ctx, ListFilter{ActiveOnly: true, Category: category}, page)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.Product, int64, error) {
	products, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, total, nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	price, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:       input.Title,
		Description: input.Description,
		PriceFils:   price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		IsActive:    true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error) {
	price, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Title = input.Title
	product.Description = input.Description
	product.PriceFils = price
	product.ImageURL = input.ImageURL
	product.Category = input.Category
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return updated, nil
}

// Delete removes the catalog row. Order items keep their snapshot, so
// order history is unaffected.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func validateInput(input ProductInput) (money.Fils, error) {
	details := map[string]string{}
	if strings.TrimSpace(input.Title.EN) == "" && strings.TrimSpace(input.Title.AR) == "" {
		details["title"] = "at least one language is required"
	}
	price, err := money.ParsePrice(input.Price)
	if err != nil {
		details["price"] = err.Error()
	}
	if len(details) > 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid product").WithDetails(details)
	}
	return price, nil
}
