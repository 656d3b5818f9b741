package db

import "gorm.io/gorm"

// PracticeArea describes one area of legal practice shown on the public site.
// SortOrder controls presentation only; ties fall back to insertion order.
type PracticeArea struct {
	gorm.Model
	Title       string `gorm:"size:160;not null"`
	Description string `gorm:"not null"`
	Icon        string `gorm:"size:50"`
	SortOrder   int    `gorm:"default:0"`
}
