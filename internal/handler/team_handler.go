package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/service"
)

type teamMemberPayload struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
	Order int    `json:"order"`
}

func (p teamMemberPayload) toInput() service.TeamMemberInput {
	return service.TeamMemberInput{
		Name:      p.Name,
		Title:     p.Title,
		Bio:       p.Bio,
		ImageURL:  p.Image,
		SortOrder: p.Order,
	}
}

// ListTeamMembers returns all team members in display order.
func (a *API) ListTeamMembers(c *gin.Context) {
	items, err := a.team.List()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch team members")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetTeamMember returns one team member by id.
func (a *API) GetTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid team member id")
		return
	}

	item, err := a.team.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			respondError(c, http.StatusNotFound, "Team member not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch team member")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateTeamMember creates a new team member.
func (a *API) CreateTeamMember(c *gin.Context) {
	var payload teamMemberPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.team.Create(payload.toInput())
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberInvalidInput) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to create team member")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateTeamMember updates an existing team member.
func (a *API) UpdateTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid team member id")
		return
	}

	var payload teamMemberPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.team.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamMemberNotFound):
			respondError(c, http.StatusNotFound, "Team member not found")
		case errors.Is(err, service.ErrTeamMemberInvalidInput):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "Failed to update team member")
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteTeamMember removes a team member.
func (a *API) DeleteTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid team member id")
		return
	}

	if err := a.team.Delete(id); err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			respondError(c, http.StatusNotFound, "Team member not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to delete team member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}
