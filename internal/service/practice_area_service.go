package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mutukulaw/internal/db"
	"github.com/mutukulaw/internal/view"
	"gorm.io/gorm"
)

var (
	ErrPracticeAreaNotFound     = errors.New("practice area not found")
	ErrPracticeAreaInvalidInput = errors.New("practice area title and description are required")
	ErrPracticeAreaIconUnknown  = errors.New("practice area icon is not a known glyph")
)

// PracticeAreaService handles practice area CRUD.
type PracticeAreaService struct {
	db *gorm.DB
}

// PracticeAreaInput represents the editable fields of a practice area.
type PracticeAreaInput struct {
	Title       string
	Description string
	Icon        string
	SortOrder   int
}

// NewPracticeAreaService creates a PracticeAreaService instance.
func NewPracticeAreaService(gdb *gorm.DB) *PracticeAreaService {
	return &PracticeAreaService{db: gdb}
}

// List returns all practice areas ordered by display order, insertion order
// breaking ties.
func (s *PracticeAreaService) List() ([]db.PracticeArea, error) {
	var items []db.PracticeArea
	if err := s.db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list practice areas: %w", err)
	}
	return items, nil
}

// Get fetches a practice area by id.
func (s *PracticeAreaService) Get(id uint) (*db.PracticeArea, error) {
	var item db.PracticeArea
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPracticeAreaNotFound
		}
		return nil, fmt.Errorf("get practice area: %w", err)
	}
	return &item, nil
}

// Create inserts a new practice area.
func (s *PracticeAreaService) Create(input PracticeAreaInput) (*db.PracticeArea, error) {
	if err := validatePracticeAreaInput(input); err != nil {
		return nil, err
	}

	item := db.PracticeArea{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.ToLower(strings.TrimSpace(input.Icon)),
		SortOrder:   input.SortOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create practice area: %w", err)
	}
	return &item, nil
}

// Update modifies an existing practice area.
func (s *PracticeAreaService) Update(id uint, input PracticeAreaInput) (*db.PracticeArea, error) {
	if err := validatePracticeAreaInput(input); err != nil {
		return nil, err
	}

	var item db.PracticeArea
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPracticeAreaNotFound
		}
		return nil, fmt.Errorf("update practice area: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.Icon = strings.ToLower(strings.TrimSpace(input.Icon))
	item.SortOrder = input.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update practice area: %w", err)
	}
	return &item, nil
}

// Delete removes a practice area. Deleting an id that no longer exists
// reports not-found rather than success.
func (s *PracticeAreaService) Delete(id uint) error {
	var item db.PracticeArea
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPracticeAreaNotFound
		}
		return fmt.Errorf("delete practice area: %w", err)
	}
	return s.db.Delete(&item).Error
}

func validatePracticeAreaInput(input PracticeAreaInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return ErrPracticeAreaInvalidInput
	}
	if !view.IsPracticeIconKey(input.Icon) {
		return ErrPracticeAreaIconUnknown
	}
	return nil
}
