package models

import "time"

// Review is append-only: created by shoppers, never updated.
type Review struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;not null;index"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Name      string `gorm:"size:100;not null"`
	Image     string `gorm:"size:255"`
	Detail    string `gorm:"type:text;not null"`
	Rating    uint   `gorm:"not null;default:5"`
	CreatedAt time.Time
}

// RecentSearch is a user's append-only search log, read newest-first.
type RecentSearch struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string `gorm:"size:36;not null;index"`
	User      *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Query     string `gorm:"size:100;not null"`
	CreatedAt time.Time
}
