package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/service"
	"github.com/mutukulaw/internal/view"
)

type practiceAreaPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

func (p practiceAreaPayload) toInput() service.PracticeAreaInput {
	return service.PracticeAreaInput{
		Title:       p.Title,
		Description: p.Description,
		Icon:        p.Icon,
		SortOrder:   p.Order,
	}
}

// ListPracticeAreas returns all practice areas in display order.
func (a *API) ListPracticeAreas(c *gin.Context) {
	items, err := a.practiceAreas.List()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch practice areas")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPracticeArea returns one practice area by id.
func (a *API) GetPracticeArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid practice area id")
		return
	}

	item, err := a.practiceAreas.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPracticeAreaNotFound) {
			respondError(c, http.StatusNotFound, "Practice area not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch practice area")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreatePracticeArea creates a new practice area.
func (a *API) CreatePracticeArea(c *gin.Context) {
	var payload practiceAreaPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.practiceAreas.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPracticeAreaInvalidInput),
			errors.Is(err, service.ErrPracticeAreaIconUnknown):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "Failed to create practice area")
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdatePracticeArea updates an existing practice area.
func (a *API) UpdatePracticeArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid practice area id")
		return
	}

	var payload practiceAreaPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.practiceAreas.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPracticeAreaNotFound):
			respondError(c, http.StatusNotFound, "Practice area not found")
		case errors.Is(err, service.ErrPracticeAreaInvalidInput),
			errors.Is(err, service.ErrPracticeAreaIconUnknown):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "Failed to update practice area")
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeletePracticeArea removes a practice area.
func (a *API) DeletePracticeArea(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid practice area id")
		return
	}

	if err := a.practiceAreas.Delete(id); err != nil {
		if errors.Is(err, service.ErrPracticeAreaNotFound) {
			respondError(c, http.StatusNotFound, "Practice area not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to delete practice area")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Practice area deleted successfully"})
}

// ListPracticeIcons returns the selectable icon glyph catalog for the admin
// editor.
func (a *API) ListPracticeIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"icons": view.PracticeIconOptions()})
}
