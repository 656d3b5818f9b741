package db

import "gorm.io/gorm"

// TeamMember is a person listed on the team page.
type TeamMember struct {
	gorm.Model
	Name      string `gorm:"size:120;not null"`
	Title     string `gorm:"size:160;not null"`
	Bio       string
	ImageURL  string `gorm:"size:255"`
	SortOrder int    `gorm:"default:0"`
}
