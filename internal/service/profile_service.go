package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mutukulaw/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrProfileIdentityMissing = errors.New("profile identity is required")
)

// ProfileService maintains the per-admin site owner profile. A profile is
// created lazily on the first edit for an identity and updated in place
// afterwards; it is never deleted.
type ProfileService struct {
	db *gorm.DB
}

// ProfileInput represents the editable profile fields.
type ProfileInput struct {
	Name     string
	Bio      string
	ImageURL string
	Phone    string
	Location string
}

// NewProfileService creates a ProfileService instance.
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// GetByExternalID fetches the profile tied to the given identity.
func (s *ProfileService) GetByExternalID(externalID string) (*db.Profile, error) {
	trimmed := strings.TrimSpace(externalID)
	if trimmed == "" {
		return nil, ErrProfileIdentityMissing
	}

	var profile db.Profile
	if err := s.db.Where("external_id = ?", trimmed).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Primary returns the oldest profile on record, which the public about page
// treats as the site owner.
func (s *ProfileService) Primary() (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.Order("id ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get primary profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile for externalID on first call and updates it on
// every call after that. The write is a single conflict-aware insert so a
// concurrent first edit cannot race an existence check.
func (s *ProfileService) Upsert(externalID string, input ProfileInput) (*db.Profile, error) {
	trimmed := strings.TrimSpace(externalID)
	if trimmed == "" {
		return nil, ErrProfileIdentityMissing
	}

	profile := db.Profile{
		ExternalID: trimmed,
		Name:       strings.TrimSpace(input.Name),
		Bio:        strings.TrimSpace(input.Bio),
		ImageURL:   strings.TrimSpace(input.ImageURL),
		Phone:      strings.TrimSpace(input.Phone),
		Location:   strings.TrimSpace(input.Location),
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "bio", "image_url", "phone", "location", "updated_at"}),
	}).Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	// Re-read so the returned row carries the right id and timestamps on the
	// update path.
	return s.GetByExternalID(trimmed)
}
