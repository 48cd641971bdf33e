package models

import (
	"time"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
)

// Setting is a keyed site value such as contact numbers or hero copy.
// Single-language values live in the EN field only.
type Setting struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     i18n.Text `gorm:"column:value;type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
