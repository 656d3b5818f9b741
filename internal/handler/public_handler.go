package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mutukulaw/internal/service"
	"github.com/mutukulaw/internal/view"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts post content to sanitized HTML for the public site.
func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

func (a *API) baseViewData(title string) gin.H {
	return gin.H{
		"title":        title,
		"firmName":     a.firmName,
		"contactEmail": a.contactEmail,
		"contactPhone": a.contactPhone,
		"year":         time.Now().Year(),
	}
}

// ShowHome renders the public home page: practice areas plus latest posts.
func (a *API) ShowHome(c *gin.Context) {
	data := a.baseViewData("Home")

	areas, err := a.practiceAreas.List()
	if err != nil {
		c.Error(err)
	} else {
		data["practiceAreas"] = areas
	}

	posts, err := a.posts.ListPublished()
	if err != nil {
		c.Error(err)
	} else {
		if len(posts) > 3 {
			posts = posts[:3]
		}
		data["posts"] = posts
	}

	c.HTML(http.StatusOK, "home.html", data)
}

// ShowAbout renders the about page with the site owner's profile.
func (a *API) ShowAbout(c *gin.Context) {
	data := a.baseViewData("About")

	profile, err := a.profiles.Primary()
	if err != nil && !errors.Is(err, service.ErrProfileNotFound) {
		c.Error(err)
	}
	if profile != nil {
		data["profile"] = profile
	}

	c.HTML(http.StatusOK, "about.html", data)
}

// ShowPracticeAreas renders the practice areas page.
func (a *API) ShowPracticeAreas(c *gin.Context) {
	data := a.baseViewData("Practice Areas")

	areas, err := a.practiceAreas.List()
	if err != nil {
		c.Error(err)
		c.HTML(http.StatusInternalServerError, "practice_areas.html", data)
		return
	}

	type areaView struct {
		Title       string
		Description string
		IconSVG     template.HTML
	}
	views := make([]areaView, 0, len(areas))
	for _, area := range areas {
		views = append(views, areaView{
			Title:       area.Title,
			Description: area.Description,
			IconSVG:     template.HTML(view.PracticeIconSVG(area.Icon)),
		})
	}
	data["practiceAreas"] = views

	c.HTML(http.StatusOK, "practice_areas.html", data)
}

// ShowTeam renders the team page.
func (a *API) ShowTeam(c *gin.Context) {
	data := a.baseViewData("Our Team")

	members, err := a.team.List()
	if err != nil {
		c.Error(err)
		c.HTML(http.StatusInternalServerError, "team.html", data)
		return
	}
	data["members"] = members

	c.HTML(http.StatusOK, "team.html", data)
}

// ShowBlog renders the public blog index with published posts only.
func (a *API) ShowBlog(c *gin.Context) {
	data := a.baseViewData("Blog")

	posts, err := a.posts.ListPublished()
	if err != nil {
		c.Error(err)
		c.HTML(http.StatusInternalServerError, "blog.html", data)
		return
	}
	data["posts"] = posts

	c.HTML(http.StatusOK, "blog.html", data)
}

// ShowBlogPost renders a single published post by slug.
func (a *API) ShowBlogPost(c *gin.Context) {
	post, err := a.posts.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", a.baseViewData("Not Found"))
			return
		}
		c.Error(err)
		c.HTML(http.StatusInternalServerError, "not_found.html", a.baseViewData("Error"))
		return
	}

	data := a.baseViewData(post.Title)
	data["post"] = post
	data["content"] = renderMarkdown(post.Content)

	c.HTML(http.StatusOK, "blog_post.html", data)
}

// ShowGallery renders the gallery page.
func (a *API) ShowGallery(c *gin.Context) {
	data := a.baseViewData("Gallery")

	images, err := a.gallery.List()
	if err != nil {
		c.Error(err)
		c.HTML(http.StatusInternalServerError, "gallery.html", data)
		return
	}
	data["images"] = images

	c.HTML(http.StatusOK, "gallery.html", data)
}

// ShowContact renders the contact page with the form posting to /api/contact.
func (a *API) ShowContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", a.baseViewData("Contact"))
}
