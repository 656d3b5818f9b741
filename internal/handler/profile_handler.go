package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/service"
)

type profilePayload struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// GetProfile returns the profile of the signed-in admin. 404 until the first
// profile edit creates it.
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profiles.GetByExternalID(adminIdentity(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			respondError(c, http.StatusNotFound, "Profile not found")
		case errors.Is(err, service.ErrProfileIdentityMissing):
			respondError(c, http.StatusUnauthorized, "Unauthorized")
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "Failed to fetch profile")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates the caller's profile on first edit and updates it
// afterwards, keyed by the caller's identity rather than a passed-in id.
func (a *API) UpsertProfile(c *gin.Context) {
	var payload profilePayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	profile, err := a.profiles.Upsert(adminIdentity(c), service.ProfileInput{
		Name:     payload.Name,
		Bio:      payload.Bio,
		ImageURL: payload.Image,
		Phone:    payload.Phone,
		Location: payload.Location,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileIdentityMissing) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
