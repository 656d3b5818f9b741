package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig gathers the process-wide settings the server needs. Everything is
// loaded once at start and never mutated afterwards.
type AppConfig struct {
	ListenAddr         string
	Port               string
	DatabasePath       string
	SessionSecret      string
	GinMode            string
	AdminUserIDs       []string
	AdminAccessKeyHash string
	SMTPHost           string
	SMTPPort           string
	SMTPUser           string
	SMTPPass           string
	SMTPFrom           string
	FirmName           string
	ContactEmail       string
	ContactPhone       string
	CloudinaryURL      string
	CloudinaryFolder   string
	SiteBaseURL        string
}

// Load reads the application configuration from environment variables and
// provides safe defaults for everything that has one. Credentials and the
// admin allowlist have no defaults; features depending on them degrade when
// they are absent.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "lawfirm.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "lawfirm-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	smtpPort := strings.TrimSpace(os.Getenv("SMTP_PORT"))
	if smtpPort == "" {
		smtpPort = "587"
	}

	smtpUser := strings.TrimSpace(os.Getenv("SMTP_USER"))
	smtpFrom := strings.TrimSpace(os.Getenv("SMTP_FROM"))
	if smtpFrom == "" {
		smtpFrom = smtpUser
	}

	firmName := strings.TrimSpace(os.Getenv("FIRM_NAME"))
	if firmName == "" {
		firmName = "Mutuku Moses Law Firm"
	}

	contactEmail := strings.TrimSpace(os.Getenv("CONTACT_EMAIL"))
	if contactEmail == "" {
		contactEmail = "info@mutukumoses.com"
	}

	contactPhone := strings.TrimSpace(os.Getenv("CONTACT_PHONE"))
	if contactPhone == "" {
		contactPhone = "+254 700 123 456"
	}

	cloudinaryFolder := strings.TrimSpace(os.Getenv("CLOUDINARY_FOLDER"))
	if cloudinaryFolder == "" {
		cloudinaryFolder = "mutuku-moses-law"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://mutukumoses.com"
	}

	return AppConfig{
		ListenAddr:         listenAddr,
		Port:               port,
		DatabasePath:       databasePath,
		SessionSecret:      sessionSecret,
		GinMode:            ginMode,
		AdminUserIDs:       ParseAdminIDs(os.Getenv("ADMIN_USER_IDS")),
		AdminAccessKeyHash: strings.TrimSpace(os.Getenv("ADMIN_ACCESS_KEY_HASH")),
		SMTPHost:           strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:           smtpPort,
		SMTPUser:           smtpUser,
		SMTPPass:           strings.TrimSpace(os.Getenv("SMTP_PASS")),
		SMTPFrom:           smtpFrom,
		FirmName:           firmName,
		ContactEmail:       contactEmail,
		ContactPhone:       contactPhone,
		CloudinaryURL:      strings.TrimSpace(os.Getenv("CLOUDINARY_URL")),
		CloudinaryFolder:   cloudinaryFolder,
		SiteBaseURL:        siteBaseURL,
	}
}

// ParseAdminIDs splits a comma-separated allowlist into identities, dropping
// empty entries and surrounding whitespace.
func ParseAdminIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		ids = append(ids, trimmed)
	}
	return ids
}
