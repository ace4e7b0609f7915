package models

import (
	"time"
)

type MainCategory struct {
	ID         string     `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name       string     `gorm:"size:100;not null;uniqueIndex"`
	Slug       string     `gorm:"size:120;not null;uniqueIndex"`
	Icon       string     `gorm:"size:255;not null"`
	Categories []Category `gorm:"foreignKey:MainCategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Category struct {
	ID             string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	MainCategoryID *string       `gorm:"size:36;index;uniqueIndex:idx_main_category_name"`
	MainCategory   *MainCategory `gorm:"foreignKey:MainCategoryID"`
	Name           string        `gorm:"size:100;not null;uniqueIndex;uniqueIndex:idx_main_category_name"`
	Slug           string        `gorm:"size:120;not null;uniqueIndex"`
	Description    string        `gorm:"type:text"`
	Image          string        `gorm:"size:255"`
	SecondImage    string        `gorm:"size:255"`
	ThirdImage     string        `gorm:"size:255"`
	Icon           string        `gorm:"size:255"`
	Products       []Product     `gorm:"foreignKey:CategoryID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsTopLevel reports whether the category hangs directly off the storefront
// navigation instead of a main category group.
func (c *Category) IsTopLevel() bool {
	return c.MainCategoryID == nil
}
