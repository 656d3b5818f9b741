package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/config"
	"github.com/mutukulaw/internal/db"
	"github.com/mutukulaw/internal/handler"
	"github.com/mutukulaw/internal/mailer"
	"github.com/mutukulaw/internal/media"
	"github.com/mutukulaw/internal/router"
	"github.com/mutukulaw/internal/service"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	var uploader media.Uploader
	if cfg.CloudinaryURL != "" {
		up, err := media.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			log.Fatalf("failed to initialize media uploader: %v", err)
		}
		uploader = up
	} else {
		log.Printf("CLOUDINARY_URL not set, image uploads disabled")
	}

	var notifier service.ContactNotifier
	mailService := mailer.NewService(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		FromName: cfg.FirmName,
	})
	if mailService.IsConfigured() {
		notifier = mailer.NewContactMailer(mailService, mailer.FirmInfo{
			Name:         cfg.FirmName,
			ContactEmail: cfg.ContactEmail,
			ContactPhone: cfg.ContactPhone,
		})
	} else {
		log.Printf("SMTP not configured, contact notifications disabled")
	}

	api := handler.NewAPI(db.DB, cfg, uploader, notifier)

	r := router.SetupRouter(api, cfg.SessionSecret, "web/template/*.html")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
