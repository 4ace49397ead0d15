package loadsapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"haulsaver-app/database"
	"haulsaver-app/internal/infra/cloudinary"
)

type UploadHandler struct {
	Cloud cloudinary.Client
}

// POST /api/loads/:id/photo — multipart upload of a load photo.
func (h *UploadHandler) UploadLoadPhoto(c *gin.Context) {
	if h.Cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads not configured"})
		return
	}

	load, err := findOwnedLoad(database.DB, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	folder := "haulsaver/loads/" + load.UserID.String()
	publicID := "load_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	url, err := h.Cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	if err := database.DB.Model(load).Update("photo_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
