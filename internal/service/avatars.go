package service

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostAvatar accepts a multipart avatar image and stores it in object
// storage. Returns 503 when the deployment runs without MinIO.
func (svc *Service) PostAvatar(c *gin.Context) {
	if svc.avatars == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "avatar storage disabled"})
		return
	}
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()
	if err := validateFile(header); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meta, err := svc.avatars.PostAvatar(file, header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"filename": meta.Info.Key,
		"url":      meta.URL.String(),
		"size":     meta.Info.Size,
	})
}

func validateFile(header *multipart.FileHeader) error {
	allowed := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/jpg":  true,
	}
	if !allowed[header.Header.Get("Content-Type")] {
		return fmt.Errorf("invalid file type")
	}
	return nil
}
