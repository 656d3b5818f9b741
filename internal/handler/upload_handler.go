package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// uploadImage forwards the multipart "file" field to the media host and
// returns the durable URL under the given response key.
func (a *API) uploadImage(c *gin.Context, responseKey string) {
	if a.uploader == nil {
		respondError(c, http.StatusInternalServerError, "Image uploads are not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer file.Close()

	img, err := a.uploader.Upload(c.Request.Context(), file)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "Upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		responseKey: img.URL,
		"width":     img.Width,
		"height":    img.Height,
	})
}

// UploadImage is the public-side upload endpoint; its callers expect the URL
// under "imageUrl".
func (a *API) UploadImage(c *gin.Context) {
	a.uploadImage(c, "imageUrl")
}

// AdminUploadImage is the admin upload endpoint; its callers expect "url".
func (a *API) AdminUploadImage(c *gin.Context) {
	a.uploadImage(c, "url")
}
