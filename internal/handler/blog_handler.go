package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/service"
)

type blogPostPayload struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Summary   string `json:"summary"`
	Image     string `json:"image"`
	Published bool   `json:"published"`
}

func (p blogPostPayload) toInput() service.BlogPostInput {
	return service.BlogPostInput{
		Title:     p.Title,
		Content:   p.Content,
		Summary:   p.Summary,
		ImageURL:  p.Image,
		Published: p.Published,
	}
}

// ListBlogPosts returns every post including drafts, newest first. Admin path.
func (a *API) ListBlogPosts(c *gin.Context) {
	posts, err := a.posts.ListAll()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListPublishedBlogPosts returns published posts for the public site.
func (a *API) ListPublishedBlogPosts(c *gin.Context) {
	posts, err := a.posts.ListPublished()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBlogPost returns one post by id, drafts included. Admin path.
func (a *API) GetBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid blog post id")
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondError(c, http.StatusNotFound, "Blog post not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetBlogPostBySlug returns one published post by slug. Public path; drafts
// are invisible here.
func (a *API) GetBlogPostBySlug(c *gin.Context) {
	post, err := a.posts.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondError(c, http.StatusNotFound, "Blog post not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreateBlogPost creates a post; the slug is derived from the title.
func (a *API) CreateBlogPost(c *gin.Context) {
	var payload blogPostPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	post, err := a.posts.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrBlogPostInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to create blog post")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdateBlogPost updates a post, re-deriving the slug on title changes.
func (a *API) UpdateBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid blog post id")
		return
	}

	var payload blogPostPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	post, err := a.posts.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlogPostNotFound):
			respondError(c, http.StatusNotFound, "Blog post not found")
		case errors.Is(err, service.ErrBlogPostInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "Failed to update blog post")
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeleteBlogPost removes a post by id.
func (a *API) DeleteBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid blog post id")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		if errors.Is(err, service.ErrBlogPostNotFound) {
			respondError(c, http.StatusNotFound, "Blog post not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
