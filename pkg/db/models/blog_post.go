package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
)

// BlogPost is a bilingual article managed from the admin dashboard.
type BlogPost struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug          string     `gorm:"column:slug;not null;uniqueIndex"`
	Title         i18n.Text  `gorm:"column:title;type:jsonb;not null"`
	Excerpt       i18n.Text  `gorm:"column:excerpt;type:jsonb;not null;default:'{}'"`
	Body          i18n.Text  `gorm:"column:body;type:jsonb;not null"`
	CoverImageURL *string    `gorm:"column:cover_image_url"`
	IsPublished   bool       `gorm:"column:is_published;not null;default:false"`
	PublishedAt   *time.Time `gorm:"column:published_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
