package helpers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadFilename builds a collision-safe name for a stored upload,
// `<timestamp>-<random><ext>`.
func UploadFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), random, ext)
}

// IsImageUpload reports whether the uploaded file declares an image MIME
// type. Only images are accepted for profile pictures.
func IsImageUpload(file *multipart.FileHeader) bool {
	return strings.HasPrefix(file.Header.Get("Content-Type"), "image/")
}

// SaveUploadedImage writes the file under uploadDir and returns the public
// URL it will be served from. Replaced images are not cleaned up.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, uploadDir, baseURL string) (string, error) {
	if !IsImageUpload(file) {
		return "", fmt.Errorf("only images are allowed")
	}

	name := UploadFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %v", err)
	}
	return fmt.Sprintf("%s/uploads/%s", strings.TrimRight(baseURL, "/"), name), nil
}

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}
