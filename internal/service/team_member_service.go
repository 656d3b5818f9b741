package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mutukulaw/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound     = errors.New("team member not found")
	ErrTeamMemberInvalidInput = errors.New("team member name and title are required")
)

// TeamMemberService handles team member CRUD.
type TeamMemberService struct {
	db *gorm.DB
}

// TeamMemberInput represents the editable fields of a team member.
type TeamMemberInput struct {
	Name      string
	Title     string
	Bio       string
	ImageURL  string
	SortOrder int
}

// NewTeamMemberService creates a TeamMemberService instance.
func NewTeamMemberService(gdb *gorm.DB) *TeamMemberService {
	return &TeamMemberService{db: gdb}
}

// List returns all team members ordered by display order, insertion order
// breaking ties.
func (s *TeamMemberService) List() ([]db.TeamMember, error) {
	var items []db.TeamMember
	if err := s.db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return items, nil
}

// Get fetches a team member by id.
func (s *TeamMemberService) Get(id uint) (*db.TeamMember, error) {
	var item db.TeamMember
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &item, nil
}

// Create inserts a new team member.
func (s *TeamMemberService) Create(input TeamMemberInput) (*db.TeamMember, error) {
	if err := validateTeamMemberInput(input); err != nil {
		return nil, err
	}

	item := db.TeamMember{
		Name:      strings.TrimSpace(input.Name),
		Title:     strings.TrimSpace(input.Title),
		Bio:       strings.TrimSpace(input.Bio),
		ImageURL:  strings.TrimSpace(input.ImageURL),
		SortOrder: input.SortOrder,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return &item, nil
}

// Update modifies an existing team member.
func (s *TeamMemberService) Update(id uint, input TeamMemberInput) (*db.TeamMember, error) {
	if err := validateTeamMemberInput(input); err != nil {
		return nil, err
	}

	var item db.TeamMember
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("update team member: %w", err)
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Title = strings.TrimSpace(input.Title)
	item.Bio = strings.TrimSpace(input.Bio)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.SortOrder = input.SortOrder

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}
	return &item, nil
}

// Delete removes a team member.
func (s *TeamMemberService) Delete(id uint) error {
	var item db.TeamMember
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamMemberNotFound
		}
		return fmt.Errorf("delete team member: %w", err)
	}
	return s.db.Delete(&item).Error
}

func validateTeamMemberInput(input TeamMemberInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Title) == "" {
		return ErrTeamMemberInvalidInput
	}
	return nil
}
