package adminController

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	uploadControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/upload"
	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CleanupResult reports which stored files a sweep removed.
type CleanupResult struct {
	DeletedFiles []string `json:"deletedFiles"`
	Count        int      `json:"count"`
}

// CleanupImages deletes every file in uploadDir that no brand logo or product
// image references. Full mark-and-sweep on every run: the referenced set is
// rebuilt from the catalog, the directory is scanned flat, and anything
// unreferenced goes. A file that fails to delete is logged and skipped, so
// the result lists only files that are actually gone.
//
// Not safe to run concurrently with an in-flight upload whose owning row has
// not committed yet; the caller throttles invocations.
func CleanupImages(db *gorm.DB, uploadDir string) (*CleanupResult, error) {
	var logos []string
	if err := db.Model(&models.Brand{}).Pluck("logo", &logos).Error; err != nil {
		return nil, err
	}
	var filenames []string
	if err := db.Model(&models.ProductImage{}).Pluck("filename", &filenames).Error; err != nil {
		return nil, err
	}

	referenced := make(map[string]struct{}, len(logos)+len(filenames))
	for _, name := range logos {
		if name != "" {
			referenced[name] = struct{}{}
		}
	}
	for _, name := range filenames {
		if name != "" {
			referenced[name] = struct{}{}
		}
	}

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		return nil, err
	}

	result := &CleanupResult{DeletedFiles: []string{}}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if _, ok := referenced[entry.Name()]; ok {
			continue
		}
		path := filepath.Join(uploadDir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("cleanup: failed to delete %s: %v", path, err)
			continue
		}
		result.DeletedFiles = append(result.DeletedFiles, entry.Name())
	}
	result.Count = len(result.DeletedFiles)
	return result, nil
}

// POST /admin/cleanup-images
func CleanupImagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := CleanupImages(db, uploadControllers.Dir())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cleanup failed"})
			return
		}
		message := "Cleanup completed"
		if result.Count == 0 {
			message = "No orphaned images found"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      message,
			"deletedFiles": result.DeletedFiles,
			"count":        result.Count,
		})
	}
}
