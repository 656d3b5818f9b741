package db

import "gorm.io/gorm"

// GalleryImage is one photo in the public gallery. Width and height are
// recorded when the upload pipeline could determine them.
type GalleryImage struct {
	gorm.Model
	Title       string `gorm:"size:160;not null"`
	Description string
	ImageURL    string `gorm:"size:255;not null"`
	ImageWidth  int
	ImageHeight int
	SortOrder   int `gorm:"default:0"`
}
