package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mutukulaw/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound     = errors.New("gallery image not found")
	ErrGalleryImageMissing = errors.New("gallery image and title are required")
)

// GalleryService handles gallery CRUD.
type GalleryService struct {
	db *gorm.DB
}

// GalleryInput represents fields accepted when creating or updating a
// gallery image.
type GalleryInput struct {
	Title       string
	Description string
	ImageURL    string
	ImageWidth  int
	ImageHeight int
	SortOrder   int
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// List returns all gallery images ordered by display order, insertion order
// breaking ties.
func (s *GalleryService) List() ([]db.GalleryImage, error) {
	var items []db.GalleryImage
	if err := s.db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	return items, nil
}

// Get fetches a gallery image by id.
func (s *GalleryService) Get(id uint) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, fmt.Errorf("get gallery image: %w", err)
	}
	return &item, nil
}

// Create inserts a new gallery image.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryImage, error) {
	if err := validateGalleryInput(input); err != nil {
		return nil, err
	}

	item := db.GalleryImage{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		ImageWidth:  input.ImageWidth,
		ImageHeight: input.ImageHeight,
		SortOrder:   input.SortOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}
	return &item, nil
}

// Update modifies an existing gallery image.
func (s *GalleryService) Update(id uint, input GalleryInput) (*db.GalleryImage, error) {
	if err := validateGalleryInput(input); err != nil {
		return nil, err
	}

	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, fmt.Errorf("update gallery image: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.ImageWidth = input.ImageWidth
	item.ImageHeight = input.ImageHeight
	item.SortOrder = input.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update gallery image: %w", err)
	}
	return &item, nil
}

// Delete removes a gallery image.
func (s *GalleryService) Delete(id uint) error {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGalleryNotFound
		}
		return fmt.Errorf("delete gallery image: %w", err)
	}
	return s.db.Delete(&item).Error
}

func validateGalleryInput(input GalleryInput) error {
	if strings.TrimSpace(input.ImageURL) == "" || strings.TrimSpace(input.Title) == "" {
		return ErrGalleryImageMissing
	}
	return nil
}
