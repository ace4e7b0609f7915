package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount is a percentage cut scoped to at most one of variant, product or
// category. A discount with no target set is considered global configuration
// and is never picked up by the resolver.
type Discount struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name       string          `gorm:"size:100;not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Active     bool            `gorm:"not null;default:true"`
	ProductID  *string         `gorm:"size:36;index"`
	Product    *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CategoryID *string         `gorm:"size:36;index"`
	Category   *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	VariantID  *string         `gorm:"size:36;index"`
	Variant    *ProductVariant `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	StartDate  time.Time       `gorm:"not null"`
	EndDate    *time.Time
	CreatedAt  time.Time
}

// IsValidAt reports whether the discount applies at the given instant. The
// caller decides the instant so one timestamp can cover a whole assembly.
func (d *Discount) IsValidAt(at time.Time) bool {
	if !d.Active {
		return false
	}
	if at.Before(d.StartDate) {
		return false
	}
	if d.EndDate != nil && at.After(*d.EndDate) {
		return false
	}
	return true
}
