package handler

import (
	"github.com/mutukulaw/internal/config"
	"github.com/mutukulaw/internal/media"
	"github.com/mutukulaw/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db            *gorm.DB
	access        *service.AdminAccess
	practiceAreas *service.PracticeAreaService
	team          *service.TeamMemberService
	posts         *service.BlogPostService
	gallery       *service.GalleryService
	profiles      *service.ProfileService
	contacts      *service.ContactService
	uploader      media.Uploader
	accessKeyHash string
	firmName      string
	contactEmail  string
	contactPhone  string
}

// NewAPI constructs a handler set with shared services. uploader and
// notifier are the external collaborators; either may be nil in deployments
// (or tests) that do not configure them.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig, up media.Uploader, notifier service.ContactNotifier) *API {
	return &API{
		db:            gdb,
		access:        service.NewAdminAccess(cfg.AdminUserIDs),
		practiceAreas: service.NewPracticeAreaService(gdb),
		team:          service.NewTeamMemberService(gdb),
		posts:         service.NewBlogPostService(gdb),
		gallery:       service.NewGalleryService(gdb),
		profiles:      service.NewProfileService(gdb),
		contacts:      service.NewContactService(gdb, notifier),
		uploader:      up,
		accessKeyHash: cfg.AdminAccessKeyHash,
		firmName:      cfg.FirmName,
		contactEmail:  cfg.ContactEmail,
		contactPhone:  cfg.ContactPhone,
	}
}
