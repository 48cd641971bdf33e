package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

// ListFilter narrows product listings.
type ListFilter struct {
	ActiveOnly bool
	Category   *string
}

// Repository defines the persistence surface required by the catalog service.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.Product, int64, error)
}
