package db

import "gorm.io/gorm"

// Profile holds the site owner's public biography. Each row is tied to the
// opaque identity the authentication provider assigns, one row per admin.
type Profile struct {
	gorm.Model
	ExternalID string `gorm:"uniqueIndex;size:191;not null"`
	Name       string `gorm:"size:120"`
	Bio        string
	ImageURL   string `gorm:"size:255"`
	Phone      string `gorm:"size:40"`
	Location   string `gorm:"size:120"`
}
