package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/pkg/enums"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/money"
)

// Order is a submitted checkout with its customer details frozen at submission.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName    string            `gorm:"column:customer_name;not null"`
	CustomerPhone   string            `gorm:"column:customer_phone;not null"`
	CustomerAddress string            `gorm:"column:customer_address;not null"`
	Notes           *string           `gorm:"column:notes"`
	Lang            i18n.Lang         `gorm:"column:lang;not null;default:'en'"`
	Status          enums.OrderStatus `gorm:"column:status;type:order_status;not null;default:'pending'"`
	TotalFils       money.Fils        `gorm:"column:total_fils;not null"`
	Items           []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
