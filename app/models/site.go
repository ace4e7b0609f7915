package models

import "time"

// Site content records are edited in the back office; readers always want the
// current one, defined as the row with the highest id rather than whatever
// happened to be inserted last.

type ContactInfo struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Email       string `gorm:"size:100;not null"`
	PhoneNumber string `gorm:"size:100;not null"`
	Address     string `gorm:"size:400;not null"`
}

type ContactMessage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:100"`
	Phone     *int64
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

type AboutPage struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"size:300;not null"`
	Details     string `gorm:"type:text;not null"`
	Image       string `gorm:"size:255"`
	SecondImage string `gorm:"size:255"`
	ThirdImage  string `gorm:"size:255"`
	FourthImage string `gorm:"size:255"`
	Slogan      string `gorm:"size:200"`
}

type SocialLinks struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Whatsapp  string `gorm:"size:255"`
	Instagram string `gorm:"size:255"`
	TikTok    string `gorm:"size:255"`
}
