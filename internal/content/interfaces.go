package content

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

// BlogFilter narrows blog listings.
type BlogFilter struct {
	PublishedOnly bool
}

// Repository defines the persistence surface for site content.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreatePost(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
	FindPostByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	FindPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListPosts(ctx context.Context, filter BlogFilter, page pagination.Params) ([]models.BlogPost, int64, error)

	CreateTestimonial(ctx context.Context, item *models.Testimonial) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, item *models.Testimonial) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
	FindTestimonialByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
	ListTestimonials(ctx context.Context, activeOnly bool) ([]models.Testimonial, error)

	UpsertSetting(ctx context.Context, setting *models.Setting) error
	FindSetting(ctx context.Context, key string) (*models.Setting, error)
	ListSettings(ctx context.Context) ([]models.Setting, error)
}
