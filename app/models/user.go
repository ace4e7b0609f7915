package models

import "time"

// User is the minimal account row the session cookie points at. Registration
// and credentials live in the external auth service.
type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
