package adminController

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCurationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/featured", AddFeatured(db))
	r.DELETE("/admin/featured/:productId", RemoveFeatured(db))
	r.GET("/featured", GetFeatured(db))
	r.POST("/admin/top-brands", AddTopBrand(db))
	r.DELETE("/admin/top-brands/:brandId", RemoveTopBrand(db))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddFeaturedRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	r := newCurationRouter(db)

	brand := models.Brand{Name: "Regal", Logo: "logo.png"}
	require.NoError(t, db.Create(&brand).Error)
	product := models.Product{Name: "Regal One", BrandID: brand.ID, MRP: 999, Price: 799}
	require.NoError(t, db.Create(&product).Error)

	body := fmt.Sprintf(`{"productId": %d}`, product.ID)
	w := doJSON(r, http.MethodPost, "/admin/featured", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/admin/featured", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already in the featured list")

	var count int64
	require.NoError(t, db.Model(&models.FeaturedProduct{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddFeaturedRequiresProductID(t *testing.T) {
	db := newTestDB(t)
	r := newCurationRouter(db)

	w := doJSON(r, http.MethodPost, "/admin/featured", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFeatured(t *testing.T) {
	db := newTestDB(t)
	r := newCurationRouter(db)

	require.NoError(t, db.Create(&models.FeaturedProduct{ProductID: 7}).Error)

	w := doJSON(r, http.MethodDelete, "/admin/featured/7", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Removing it again is a 404, not a silent no-op.
	w = doJSON(r, http.MethodDelete, "/admin/featured/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFeaturedResolvesProducts(t *testing.T) {
	db := newTestDB(t)
	r := newCurationRouter(db)

	brand := models.Brand{Name: "Regal", Logo: "logo.png"}
	require.NoError(t, db.Create(&brand).Error)
	product := models.Product{Name: "Regal One", BrandID: brand.ID, MRP: 999, Price: 799}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.FeaturedProduct{ProductID: product.ID}).Error)

	w := doJSON(r, http.MethodGet, "/featured", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Regal One")
}

func TestTopBrandLifecycle(t *testing.T) {
	db := newTestDB(t)
	r := newCurationRouter(db)

	brand := models.Brand{Name: "Regal", Logo: "logo.png"}
	require.NoError(t, db.Create(&brand).Error)

	body := fmt.Sprintf(`{"brandId": %d}`, brand.ID)
	w := doJSON(r, http.MethodPost, "/admin/top-brands", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/admin/top-brands", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/top-brands/%d", brand.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.TopBrand{}).Count(&count).Error)
	assert.Zero(t, count)
}
