package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID     *string          `gorm:"size:36;index"`
	Category       *Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Name           string           `gorm:"size:200;not null"`
	Description    string           `gorm:"type:text"`
	Brand          string           `gorm:"size:100"`
	ShowInMainPage bool             `gorm:"not null;default:false"`
	Variants       []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	LikedBy        []User           `gorm:"many2many:product_likes;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Size struct {
	ID    string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name  string `gorm:"size:50;not null"`
	Label string `gorm:"size:50;not null"`
}

type Color struct {
	ID   string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name string `gorm:"size:50;not null"`
	Code string `gorm:"size:20;not null;default:'#000000'"`
}

type ProductVariant struct {
	ID             string                `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID      string                `gorm:"size:36;not null;index;uniqueIndex:idx_product_size_color"`
	Product        *Product              `gorm:"foreignKey:ProductID"`
	SizeID         string                `gorm:"size:36;not null;uniqueIndex:idx_product_size_color"`
	Size           Size                  `gorm:"foreignKey:SizeID;constraint:OnDelete:CASCADE"`
	ColorID        string                `gorm:"size:36;not null;uniqueIndex:idx_product_size_color"`
	Color          Color                 `gorm:"foreignKey:ColorID;constraint:OnDelete:CASCADE"`
	Price          decimal.Decimal       `gorm:"type:decimal(10,2);not null"`
	Image          string                `gorm:"size:255;not null"`
	ImageHover     string                `gorm:"size:255"`
	Stock          uint                  `gorm:"not null;default:0"`
	ShowInMainPage bool                  `gorm:"not null;default:false"`
	Images         []ProductVariantImage `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProductVariantImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	VariantID string `gorm:"size:36;not null;index"`
	Image     string `gorm:"size:255;not null"`
	AltText   string `gorm:"size:150"`
}

type ProductLike struct {
	ProductID string `gorm:"size:36;primaryKey"`
	UserID    string `gorm:"size:36;primaryKey"`
	CreatedAt time.Time
}
