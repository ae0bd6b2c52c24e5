package uploadControllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

const maxProductImages = 5

// Dir returns the image upload directory (UPLOAD_DIR, default "uploads").
// Files are stored flat; the public URL is /uploads/<filename>.
func Dir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// SaveImage stores an uploaded file under Dir with a timestamped name and
// returns the stored filename.
func SaveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := Dir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// POST /upload/brand-logo
func UploadBrandLogo() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("logo")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		filename, err := SaveImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"filePath": "/uploads/" + filename})
	}
}

// POST /upload/product-image
func UploadProductImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil || len(form.File["images"]) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
			return
		}
		files := form.File["images"]
		if len(files) > maxProductImages {
			files = files[:maxProductImages]
		}

		filePaths := make([]string, 0, len(files))
		for _, file := range files {
			filename, err := SaveImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
				return
			}
			filePaths = append(filePaths, "/uploads/"+filename)
		}
		c.JSON(http.StatusOK, gin.H{"filePaths": filePaths})
	}
}
