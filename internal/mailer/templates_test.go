package mailer

import (
	"strings"
	"testing"
	"time"
)

func TestRenderFirmNotification(t *testing.T) {
	body, err := RenderFirmNotification(FirmNotificationData{
		FirmName:   "Mutuku Moses Law Firm",
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+254 711 000 000",
		Subject:    "Family Law",
		Message:    "Need help with custody.",
		RequestID:  42,
		ReceivedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Jane Doe", "jane@example.com", "+254 711 000 000", "Family Law", "Need help with custody.", "Request ID: 42"} {
		if !strings.Contains(body, want) {
			t.Errorf("notification body missing %q", want)
		}
	}
}

func TestRenderFirmNotificationOmitsEmptyPhone(t *testing.T) {
	body, err := RenderFirmNotification(FirmNotificationData{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "s",
		Message: "m",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(body, "Phone:") {
		t.Errorf("phone row should be omitted when empty")
	}
}

func TestRenderFirmNotificationEscapesHTML(t *testing.T) {
	body, err := RenderFirmNotification(FirmNotificationData{
		Name:    "<script>alert(1)</script>",
		Email:   "jane@example.com",
		Subject: "s",
		Message: "m",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Errorf("submitted fields must be escaped")
	}
}

func TestRenderAcknowledgment(t *testing.T) {
	body, err := RenderAcknowledgment(AcknowledgmentData{
		FirmName:       "Mutuku Moses Law Firm",
		Name:           "Jane Doe",
		Subject:        "Family Law",
		MessageExcerpt: MessageExcerpt(strings.Repeat("x", 300)),
		ContactEmail:   "info@mutukumoses.com",
		ContactPhone:   "+254 700 123 456",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Dear Jane Doe", "Family Law", "+254 700 123 456", "info@mutukumoses.com", "..."} {
		if !strings.Contains(body, want) {
			t.Errorf("acknowledgment body missing %q", want)
		}
	}
}
