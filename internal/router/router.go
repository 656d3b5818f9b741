package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/handler"
)

// SetupRouter configures the Gin engine and all routes. templateGlob may be
// empty to skip HTML template loading (JSON-only deployments and tests).
func SetupRouter(api *handler.API, sessionSecret, templateGlob string) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("lawfirm_session", store))

	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)

		// Public pages
		r.GET("/", api.ShowHome)
		r.GET("/about", api.ShowAbout)
		r.GET("/practice-areas", api.ShowPracticeAreas)
		r.GET("/team", api.ShowTeam)
		r.GET("/blog", api.ShowBlog)
		r.GET("/blog/:slug", api.ShowBlogPost)
		r.GET("/gallery", api.ShowGallery)
		r.GET("/contact", api.ShowContact)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	apiGroup := r.Group("/api")
	{
		// Public reads
		apiGroup.GET("/practice-areas", api.ListPracticeAreas)
		apiGroup.GET("/team", api.ListTeamMembers)
		apiGroup.GET("/gallery", api.ListGalleryImages)
		apiGroup.GET("/blog", api.ListPublishedBlogPosts)
		apiGroup.GET("/blog/:slug", api.GetBlogPostBySlug)

		// Contact intake and contact-side upload
		apiGroup.POST("/contact", api.SubmitContact)
		apiGroup.POST("/upload", api.UploadImage)

		admin := apiGroup.Group("/admin")
		{
			admin.GET("/check", api.CheckAdmin)
			admin.POST("/session", api.SignIn)
			admin.DELETE("/session", api.SignOut)

			// Admin-gated content management
			gated := admin.Group("")
			gated.Use(api.RequireAdmin())
			{
				gated.GET("/practice-areas", api.ListPracticeAreas)
				gated.POST("/practice-areas", api.CreatePracticeArea)
				gated.GET("/practice-areas/:id", api.GetPracticeArea)
				gated.PUT("/practice-areas/:id", api.UpdatePracticeArea)
				gated.DELETE("/practice-areas/:id", api.DeletePracticeArea)

				gated.GET("/team", api.ListTeamMembers)
				gated.POST("/team", api.CreateTeamMember)
				gated.GET("/team/:id", api.GetTeamMember)
				gated.PUT("/team/:id", api.UpdateTeamMember)
				gated.DELETE("/team/:id", api.DeleteTeamMember)

				gated.GET("/blog", api.ListBlogPosts)
				gated.POST("/blog", api.CreateBlogPost)
				gated.GET("/blog/:id", api.GetBlogPost)
				gated.PUT("/blog/:id", api.UpdateBlogPost)
				gated.DELETE("/blog/:id", api.DeleteBlogPost)

				gated.GET("/gallery", api.ListGalleryImages)
				gated.POST("/gallery", api.CreateGalleryImage)
				gated.GET("/gallery/:id", api.GetGalleryImage)
				gated.PUT("/gallery/:id", api.UpdateGalleryImage)
				gated.DELETE("/gallery/:id", api.DeleteGalleryImage)

				gated.GET("/contact-requests", api.ListContactRequests)
				gated.GET("/contact-requests/:id", api.GetContactRequest)
				gated.PUT("/contact-requests/:id/read", api.MarkContactRequestRead)
				gated.DELETE("/contact-requests/:id", api.DeleteContactRequest)

				gated.GET("/profile", api.GetProfile)
				gated.POST("/profile", api.UpsertProfile)

				gated.POST("/upload-image", api.AdminUploadImage)
				gated.GET("/icons", api.ListPracticeIcons)
			}
		}
	}

	return r
}
