package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the process-wide database connection opened by Init; services hold
// their own reference passed in at construction.
var DB *gorm.DB

// Init opens the sqlite database and runs auto migration for the content
// models. An empty databasePath falls back to lawfirm.db.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "lawfirm.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate creates or updates the tables for every content model.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&Profile{},
		&PracticeArea{},
		&TeamMember{},
		&BlogPost{},
		&GalleryImage{},
		&ContactRequest{},
	)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
