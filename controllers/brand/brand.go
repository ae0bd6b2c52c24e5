package brandControllers

import (
	"errors"
	"net/http"

	uploadControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/upload"
	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const brandsCacheKey = "brands"

// POST /brands
func CreateBrand(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Brand name is required"})
			return
		}
		file, err := c.FormFile("logo")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Logo file is required"})
			return
		}

		var existing models.Brand
		if err := db.First(&existing, "name = ?", name).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Brand name already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		filename, err := uploadControllers.SaveImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save logo"})
			return
		}

		brand := models.Brand{Name: name, Logo: filename}
		if err := db.Create(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
			return
		}
		store.Delete(brandsCacheKey)
		c.JSON(http.StatusCreated, brand)
	}
}

// GET /brands
func GetBrands(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cached, ok := store.Get(brandsCacheKey); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
		var brands []models.Brand
		if err := db.Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		store.Set(brandsCacheKey, brands, cache.DefaultExpiration)
		c.JSON(http.StatusOK, brands)
	}
}

// GET /brands/:id
func GetBrandByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brand models.Brand
		if err := db.First(&brand, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, brand)
	}
}

type UpdateBrandInput struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// PUT /brands/:id
func UpdateBrand(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateBrandInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		var brand models.Brand
		if err := db.First(&brand, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}

		if input.Name != "" {
			brand.Name = input.Name
		}
		if input.Logo != "" {
			brand.Logo = input.Logo
		}
		if err := db.Save(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brand"})
			return
		}
		store.Delete(brandsCacheKey)
		c.JSON(http.StatusOK, brand)
	}
}

// DELETE /brands/:id
//
// Deleting a brand takes its catalog with it: the brand's products, their
// image rows, and any curation entries pointing at them.
func DeleteBrand(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brand models.Brand
		if err := db.First(&brand, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var productIDs []uint
			if err := tx.Model(&models.Product{}).Where("brand_id = ?", brand.ID).
				Pluck("id", &productIDs).Error; err != nil {
				return err
			}
			if len(productIDs) > 0 {
				if err := tx.Where("product_id IN ?", productIDs).Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
				if err := tx.Where("product_id IN ?", productIDs).Delete(&models.FeaturedProduct{}).Error; err != nil {
					return err
				}
				if err := tx.Where("product_id IN ?", productIDs).Delete(&models.BestSellingProduct{}).Error; err != nil {
					return err
				}
				if err := tx.Where("brand_id = ?", brand.ID).Delete(&models.Product{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("brand_id = ?", brand.ID).Delete(&models.TopBrand{}).Error; err != nil {
				return err
			}
			return tx.Delete(&brand).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
			return
		}
		store.Delete(brandsCacheKey)
		c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
	}
}
