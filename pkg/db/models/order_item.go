package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/money"
)

// OrderItem is the per-line snapshot of an order. Title and prices are
// captured at submission so later catalog edits never rewrite history.
type OrderItem struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID       uuid.UUID  `gorm:"column:order_id;type:uuid;not null"`
	ProductID     *uuid.UUID `gorm:"column:product_id;type:uuid"`
	Title         i18n.Text  `gorm:"column:title;type:jsonb;not null"`
	UnitPriceFils money.Fils `gorm:"column:unit_price_fils;not null"`
	Qty           int        `gorm:"column:qty;not null"`
	TotalFils     money.Fils `gorm:"column:total_fils;not null"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
}
