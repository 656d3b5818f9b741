package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionIdentityKey = "admin_identity"
	contextIdentityKey = "__admin_identity"
)

// callerIdentity resolves the opaque identity presented by the caller: the
// cookie session established at sign-in, or the X-Admin-Id header for
// deployments where a fronting proxy authenticates the admin.
func (a *API) callerIdentity(c *gin.Context) string {
	session := sessions.Default(c)
	if identity, ok := session.Get(sessionIdentityKey).(string); ok && identity != "" {
		return identity
	}
	return strings.TrimSpace(c.GetHeader("X-Admin-Id"))
}

// RequireAdmin rejects callers whose identity is not on the allowlist before
// any handler work happens. The resolved identity is stashed on the context
// for handlers that need it (profile upsert).
func (a *API) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := a.callerIdentity(c)
		if !a.access.IsAdmin(identity) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Set(contextIdentityKey, identity)
		c.Next()
	}
}

func adminIdentity(c *gin.Context) string {
	if identity, ok := c.Get(contextIdentityKey); ok {
		if s, ok := identity.(string); ok {
			return s
		}
	}
	return ""
}

type signInPayload struct {
	Identity  string `json:"identity"`
	AccessKey string `json:"accessKey"`
}

// SignIn establishes an admin session. The caller must present an allowlisted
// identity together with the shared access key; the key is only ever stored
// as a bcrypt hash in configuration.
func (a *API) SignIn(c *gin.Context) {
	var payload signInPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	if a.accessKeyHash == "" {
		respondError(c, http.StatusUnauthorized, "admin sign-in is not configured")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.accessKeyHash), []byte(payload.AccessKey)); err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	identity := strings.TrimSpace(payload.Identity)
	if !a.access.IsAdmin(identity) {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionIdentityKey, identity)
	if err := session.Save(); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": true})
}

// SignOut clears the admin session.
func (a *API) SignOut(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.Error(err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// CheckAdmin reports whether the caller is an admin. It never fails; unknown
// or absent identities simply report false.
func (a *API) CheckAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isAdmin": a.access.IsAdmin(a.callerIdentity(c))})
}
