package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/service"
)

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact handles the public contact form. The request is durable once
// persisted; email notification is best-effort and its outcome is reported in
// the response rather than failing it.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	result, err := a.contacts.Submit(service.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrContactInvalidInput) {
			respondError(c, http.StatusBadRequest, "All required fields must be filled")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to send message. Please try again or contact us directly.")
		return
	}

	if result.NotifyErr != nil {
		log.Printf("contact request %d saved but notification failed: %v", result.Request.ID, result.NotifyErr)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Message sent successfully! We'll get back to you within 24 hours.",
		"id":       result.Request.ID,
		"notified": result.Notified,
	})
}

// ListContactRequests returns all contact requests, newest first.
func (a *API) ListContactRequests(c *gin.Context) {
	requests, err := a.contacts.List()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch contact requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetContactRequest returns one request's full detail and marks it read on
// first view.
func (a *API) GetContactRequest(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact request id")
		return
	}

	request, err := a.contacts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "Contact request not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch contact request")
		return
	}
	c.JSON(http.StatusOK, request)
}

// MarkContactRequestRead flips the read flag; retained for the admin list UI.
func (a *API) MarkContactRequestRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact request id")
		return
	}

	request, err := a.contacts.MarkRead(id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "Contact request not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to mark contact request as read")
		return
	}
	c.JSON(http.StatusOK, request)
}

// DeleteContactRequest removes a request; deleting twice reports not-found.
func (a *API) DeleteContactRequest(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact request id")
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, http.StatusNotFound, "Contact request not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to delete contact request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact request deleted successfully"})
}
