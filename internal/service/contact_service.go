package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mutukulaw/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound     = errors.New("contact request not found")
	ErrContactInvalidInput = errors.New("name, email, subject and message are required")
)

// ContactNotifier sends the outbound emails triggered by a submission. Both
// sends are best-effort; the intake never rolls back because of them.
type ContactNotifier interface {
	NotifyFirm(req *db.ContactRequest) error
	AcknowledgeSender(req *db.ContactRequest) error
}

// ContactService handles contact form intake and admin management of the
// resulting requests.
type ContactService struct {
	db       *gorm.DB
	notifier ContactNotifier
}

// ContactInput is a contact form submission. Phone is optional.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactResult reports the outcome of a submission. Notified is false when
// persistence succeeded but one or both notification emails failed; NotifyErr
// then carries the cause for logging.
type ContactResult struct {
	Request   *db.ContactRequest
	Notified  bool
	NotifyErr error
}

// NewContactService creates a ContactService. notifier may be nil, in which
// case submissions are persisted without sending email.
func NewContactService(gdb *gorm.DB, notifier ContactNotifier) *ContactService {
	return &ContactService{db: gdb, notifier: notifier}
}

// Submit validates and persists a contact request, then attempts the firm
// notification and the sender acknowledgment. Persistence failure aborts the
// whole operation; notification failure does not.
func (s *ContactService) Submit(input ContactInput) (*ContactResult, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	request := db.ContactRequest{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("create contact request: %w", err)
	}

	result := &ContactResult{Request: &request, Notified: true}
	if s.notifier == nil {
		result.Notified = false
		return result, nil
	}

	var notifyErrs []error
	if err := s.notifier.NotifyFirm(&request); err != nil {
		notifyErrs = append(notifyErrs, fmt.Errorf("notify firm: %w", err))
	}
	if err := s.notifier.AcknowledgeSender(&request); err != nil {
		notifyErrs = append(notifyErrs, fmt.Errorf("acknowledge sender: %w", err))
	}
	if len(notifyErrs) > 0 {
		result.Notified = false
		result.NotifyErr = errors.Join(notifyErrs...)
	}

	return result, nil
}

// List returns all contact requests, newest first.
func (s *ContactService) List() ([]db.ContactRequest, error) {
	var requests []db.ContactRequest
	if err := s.db.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list contact requests: %w", err)
	}
	return requests, nil
}

// Get fetches one request and marks it read on first view. The transition
// happens at most once; re-viewing changes nothing.
func (s *ContactService) Get(id uint) (*db.ContactRequest, error) {
	var request db.ContactRequest
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact request: %w", err)
	}

	if !request.Read {
		if err := s.db.Model(&request).Update("read", true).Error; err != nil {
			return nil, fmt.Errorf("mark contact request read: %w", err)
		}
		request.Read = true
	}

	return &request, nil
}

// MarkRead flips the read flag without returning the full detail; used by
// the admin list view.
func (s *ContactService) MarkRead(id uint) (*db.ContactRequest, error) {
	return s.Get(id)
}

// Delete removes a contact request. A second delete of the same id reports
// not-found.
func (s *ContactService) Delete(id uint) error {
	var request db.ContactRequest
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("delete contact request: %w", err)
	}
	return s.db.Delete(&request).Error
}

func validateContactInput(input ContactInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Subject) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return ErrContactInvalidInput
	}
	if !strings.Contains(input.Email, "@") {
		return ErrContactInvalidInput
	}
	return nil
}
