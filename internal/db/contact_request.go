package db

import "gorm.io/gorm"

// ContactRequest is a message submitted through the public contact form.
// Read flips to true the first time an admin opens the request and never
// flips back; the row is otherwise immutable until deleted.
type ContactRequest struct {
	gorm.Model
	Name    string `gorm:"size:120;not null"`
	Email   string `gorm:"size:190;not null"`
	Phone   string `gorm:"size:40"`
	Subject string `gorm:"size:200;not null"`
	Message string `gorm:"not null"`
	Read    bool   `gorm:"default:false"`
}
