package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
)

// Testimonial is a customer quote shown on the public site.
type Testimonial struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AuthorName string    `gorm:"column:author_name;not null"`
	Quote      i18n.Text `gorm:"column:quote;type:jsonb;not null"`
	Rating     int       `gorm:"column:rating;not null;default:5"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	SortOrder  int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
