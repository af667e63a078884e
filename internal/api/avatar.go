package api

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxAvatarSize caps uploads at 2 MiB
const maxAvatarSize = 2 << 20

// AvatarUploader stores an avatar image and returns its public URL
type AvatarUploader interface {
	Upload(ctx context.Context, devID string, data []byte, contentType string) (string, error)
}

type AvatarHandler struct {
	avatars AvatarUploader
}

func NewAvatarHandler(avatars AvatarUploader) *AvatarHandler {
	return &AvatarHandler{
		avatars: avatars,
	}
}

// Upload handles POST /devs/avatar. The caller's token identity decides
// which record the avatar is attached to.
func (h *AvatarHandler) Upload(c *gin.Context) {
	devID := c.GetString("dev_id")

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Avatar file is required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Avatar must be smaller than 2MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error Avatar: opening upload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read avatar"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
	if err != nil {
		log.Printf("Error Avatar: reading upload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read avatar"})
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Avatar must be an image"})
		return
	}

	url, err := h.avatars.Upload(c.Request.Context(), devID, data, contentType)
	if err != nil {
		log.Printf("Error Avatar: uploading: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to upload avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
