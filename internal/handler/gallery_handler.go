package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/service"
)

type galleryPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Order       int    `json:"order"`
}

func (p galleryPayload) toInput() service.GalleryInput {
	return service.GalleryInput{
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.Image,
		ImageWidth:  p.Width,
		ImageHeight: p.Height,
		SortOrder:   p.Order,
	}
}

// ListGalleryImages returns all gallery images in display order.
func (a *API) ListGalleryImages(c *gin.Context) {
	items, err := a.gallery.List()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch gallery images")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetGalleryImage returns one gallery image by id.
func (a *API) GetGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid gallery image id")
		return
	}

	item, err := a.gallery.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			respondError(c, http.StatusNotFound, "Gallery image not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch gallery image")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateGalleryImage creates a new gallery image.
func (a *API) CreateGalleryImage(c *gin.Context) {
	var payload galleryPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.gallery.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrGalleryImageMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to create gallery image")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateGalleryImage updates an existing gallery image.
func (a *API) UpdateGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid gallery image id")
		return
	}

	var payload galleryPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.gallery.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "Gallery image not found")
		case errors.Is(err, service.ErrGalleryImageMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "Failed to update gallery image")
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteGalleryImage removes a gallery image.
func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid gallery image id")
		return
	}

	if err := a.gallery.Delete(id); err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			respondError(c, http.StatusNotFound, "Gallery image not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to delete gallery image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted successfully"})
}
