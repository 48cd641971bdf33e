package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/money"
)

// Product represents a purchasable catalog listing.
type Product struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       i18n.Text  `gorm:"column:title;type:jsonb;not null"`
	Description i18n.Text  `gorm:"column:description;type:jsonb;not null;default:'{}'"`
	PriceFils   money.Fils `gorm:"column:price_fils;not null"`
	ImageURL    *string    `gorm:"column:image_url"`
	Category    *string    `gorm:"column:category"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	SortOrder   int        `gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
