package db

import "gorm.io/gorm"

// BlogPost is an article. Slug is derived from the title and unique across
// posts; only published posts are visible on public paths.
type BlogPost struct {
	gorm.Model
	Title     string `gorm:"size:200;not null"`
	Slug      string `gorm:"uniqueIndex;size:220;not null"`
	Content   string `gorm:"not null"`
	Summary   string
	ImageURL  string `gorm:"size:255"`
	Published bool   `gorm:"default:false"`
}
