package mailer

import (
	"bytes"
	"html/template"
	"time"
)

// FirmNotificationData fills the email sent to the firm's inbox for each
// contact request.
type FirmNotificationData struct {
	FirmName   string
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	RequestID  uint
	ReceivedAt time.Time
}

// AcknowledgmentData fills the confirmation email sent back to the person
// who submitted the contact form.
type AcknowledgmentData struct {
	FirmName       string
	Name           string
	Subject        string
	MessageExcerpt string
	ContactEmail   string
	ContactPhone   string
}

var firmNotificationTmpl = template.Must(template.New("firm_notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #1a365d; color: white; padding: 2rem; text-align: center;">
    <h1>New Contact Request</h1>
    <p>You have received a new message through your website</p>
  </div>
  <div style="padding: 2rem; background: #f7fafc;">
    <div style="background: white; padding: 2rem; border-radius: 8px;">
      <h2 style="color: #1a365d;">Contact Details</h2>
      <div style="margin-bottom: 1rem;"><strong>Name:</strong> {{.Name}}</div>
      <div style="margin-bottom: 1rem;"><strong>Email:</strong> {{.Email}}</div>
      {{if .Phone}}<div style="margin-bottom: 1rem;"><strong>Phone:</strong> {{.Phone}}</div>{{end}}
      <div style="margin-bottom: 1rem;"><strong>Subject:</strong> {{.Subject}}</div>
      <div style="margin-bottom: 1rem;">
        <strong>Message:</strong>
        <div style="background: #f7fafc; padding: 1rem; border-radius: 4px; margin-top: 0.5rem;">{{.Message}}</div>
      </div>
      <div style="margin-top: 2rem; padding-top: 1rem; border-top: 1px solid #e2e8f0;">
        <small style="color: #666;">
          Received on: {{.ReceivedAt.Format "Jan 2, 2006 15:04 MST"}}<br>
          Request ID: {{.RequestID}}
        </small>
      </div>
    </div>
  </div>
  <div style="background: #1a365d; color: white; padding: 1rem; text-align: center;">
    <p style="margin: 0;">{{.FirmName}} - Contact Management System</p>
  </div>
</div>
`))

var acknowledgmentTmpl = template.Must(template.New("acknowledgment").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #1a365d; color: white; padding: 2rem; text-align: center;">
    <h1>Thank You for Contacting Us</h1>
    <p>We have received your message and will respond within 24 hours</p>
  </div>
  <div style="padding: 2rem; background: #f7fafc;">
    <div style="background: white; padding: 2rem; border-radius: 8px;">
      <p>Dear {{.Name}},</p>
      <p>Thank you for reaching out to {{.FirmName}}. We have received your message regarding "{{.Subject}}" and will review it promptly.</p>
      <p>Our team typically responds to all inquiries within 24 hours during business days. If your matter is urgent, please call us directly at <strong>{{.ContactPhone}}</strong>.</p>
      <div style="background: #f7fafc; padding: 1rem; border-radius: 4px; margin: 1rem 0;">
        <h3 style="color: #1a365d; margin-top: 0;">Your Message Summary:</h3>
        <p><strong>Subject:</strong> {{.Subject}}</p>
        <p><strong>Message:</strong> {{.MessageExcerpt}}</p>
      </div>
      <p>We appreciate your interest in our legal services and look forward to assisting you.</p>
      <p>Best regards,<br><strong>{{.FirmName}}</strong></p>
    </div>
  </div>
  <div style="background: #1a365d; color: white; padding: 1rem; text-align: center;">
    <p style="margin: 0;">{{.ContactEmail}} | {{.ContactPhone}}</p>
  </div>
</div>
`))

// RenderFirmNotification renders the firm-facing notification email body.
func RenderFirmNotification(data FirmNotificationData) (string, error) {
	var buf bytes.Buffer
	if err := firmNotificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderAcknowledgment renders the submitter-facing confirmation email body.
func RenderAcknowledgment(data AcknowledgmentData) (string, error) {
	var buf bytes.Buffer
	if err := acknowledgmentTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
