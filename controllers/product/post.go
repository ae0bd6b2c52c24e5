package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	uploadControllers "github.com/Rifaque/Bhatkal-Time-Luxe/controllers/upload"
	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const maxProductImages = 5

// POST /products
//
// Multipart form: name, brand, MRP, price, optional inStock/color/about, and
// 1 to 5 image files under "images".
func CreateProduct(db *gorm.DB, store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		brandStr := c.PostForm("brand")
		mrpStr := c.PostForm("MRP")
		priceStr := c.PostForm("price")
		if name == "" || brandStr == "" || mrpStr == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, brand, MRP and price are required"})
			return
		}

		brandID, err := strconv.ParseUint(brandStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand"})
			return
		}
		mrp, err := strconv.ParseInt(mrpStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid MRP"})
			return
		}
		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		inStock := true
		if v := c.PostForm("inStock"); v != "" {
			if parsed, err := strconv.ParseBool(v); err == nil {
				inStock = parsed
			}
		}

		var brand models.Brand
		if err := db.First(&brand, uint(brandID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil || len(form.File["images"]) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
			return
		}
		files := form.File["images"]
		if len(files) > maxProductImages {
			files = files[:maxProductImages]
		}

		images := make([]models.ProductImage, 0, len(files))
		for i, file := range files {
			filename, err := uploadControllers.SaveImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			images = append(images, models.ProductImage{Filename: filename, Position: i})
		}

		product := models.Product{
			Name:    name,
			BrandID: brand.ID,
			MRP:     mrp,
			Price:   price,
			InStock: inStock,
			Color:   c.PostForm("color"),
			About:   c.PostForm("about"),
			Images:  images,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		store.Delete(newArrivalsCacheKey)
		c.JSON(http.StatusCreated, product)
	}
}
