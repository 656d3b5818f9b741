package mailer

import (
	"fmt"

	"github.com/mutukulaw/internal/db"
)

// messageExcerptLimit caps the message echo included in the acknowledgment.
const messageExcerptLimit = 200

// FirmInfo carries the firm-facing contact details used in outbound email.
type FirmInfo struct {
	Name         string
	ContactEmail string
	ContactPhone string
}

// ContactMailer composes and sends the two emails triggered by a contact
// form submission.
type ContactMailer struct {
	svc  *Service
	firm FirmInfo
}

// NewContactMailer creates a ContactMailer.
func NewContactMailer(svc *Service, firm FirmInfo) *ContactMailer {
	return &ContactMailer{svc: svc, firm: firm}
}

// NotifyFirm emails the firm's configured contact address with the full
// submission, the request id, and a timestamp. The sender's address becomes
// Reply-To so the firm can answer directly.
func (m *ContactMailer) NotifyFirm(req *db.ContactRequest) error {
	body, err := RenderFirmNotification(FirmNotificationData{
		FirmName:   m.firm.Name,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		RequestID:  req.ID,
		ReceivedAt: req.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("render firm notification: %w", err)
	}

	subject := fmt.Sprintf("New Contact Request: %s", req.Subject)
	return m.svc.SendHTMLEmail([]string{m.firm.ContactEmail}, subject, body, req.Email)
}

// AcknowledgeSender emails the submitter a confirmation containing a
// truncated echo of their message and the firm's phone number.
func (m *ContactMailer) AcknowledgeSender(req *db.ContactRequest) error {
	body, err := RenderAcknowledgment(AcknowledgmentData{
		FirmName:       m.firm.Name,
		Name:           req.Name,
		Subject:        req.Subject,
		MessageExcerpt: MessageExcerpt(req.Message),
		ContactEmail:   m.firm.ContactEmail,
		ContactPhone:   m.firm.ContactPhone,
	})
	if err != nil {
		return fmt.Errorf("render acknowledgment: %w", err)
	}

	subject := fmt.Sprintf("Thank you for contacting %s", m.firm.Name)
	return m.svc.SendHTMLEmail([]string{req.Email}, subject, body, "")
}

// MessageExcerpt truncates a message to at most 200 characters, appending an
// ellipsis when anything was cut.
func MessageExcerpt(message string) string {
	runes := []rune(message)
	if len(runes) <= messageExcerptLimit {
		return message
	}
	return string(runes[:messageExcerptLimit]) + "..."
}
