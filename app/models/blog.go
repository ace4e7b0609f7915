package models

import "time"

type BlogCategory struct {
	ID   string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name string `gorm:"size:150;not null;uniqueIndex"`
	Slug string `gorm:"size:150;not null;uniqueIndex"`
}

type Blog struct {
	ID               string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Title            string        `gorm:"size:250;not null"`
	Slug             string        `gorm:"size:250;not null;uniqueIndex"`
	CategoryID       *string       `gorm:"size:36;index"`
	Category         *BlogCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Author           string        `gorm:"size:100"`
	Image            string        `gorm:"size:255"`
	ShortDescription string        `gorm:"size:400"`
	Content          string        `gorm:"type:text;not null"`
	IsPublished      bool          `gorm:"not null;default:true"`
	Comments         []BlogComment `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BlogComment struct {
	ID        string      `gorm:"size:36;not null;uniqueIndex;primary_key"`
	BlogID    string      `gorm:"size:36;not null;index"`
	Name      string      `gorm:"size:100;not null"`
	Image     string      `gorm:"size:255"`
	Comment   string      `gorm:"type:text;not null"`
	Replies   []BlogReply `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

type BlogReply struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CommentID string `gorm:"size:36;not null;index"`
	Name      string `gorm:"size:100;not null"`
	Image     string `gorm:"size:255"`
	ReplyText string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
