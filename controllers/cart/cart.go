package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Rifaque/Bhatkal-Time-Luxe/middleware"
	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrProductRequired = errors.New("product is required")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("product not found in cart")
)

type CartItemInput struct {
	Product  uint `json:"product" binding:"required"`
	Quantity int  `json:"quantity"`
}

type QuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// -------- Core Logic --------

// FetchCart returns the cart with product details resolved. A session without
// a cart reads as an empty cart; reads never create one.
func FetchCart(db *gorm.DB, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").First(&cart, "cart_id = ?", cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Cart{CartID: cartID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// CartTotal sums price*quantity over resolvable items. Items whose product
// has since been deleted contribute nothing rather than failing the read.
func CartTotal(db *gorm.DB, cartID string) (int64, error) {
	cart, err := FetchCart(db, cartID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, item := range cart.Items {
		if item.Product != nil {
			total += item.Product.Price * int64(item.Quantity)
		}
	}
	return total, nil
}

// AddItem merges the quantity into an existing line item, or appends a new
// one. The cart record is created lazily on the session's first add. Adding
// is cumulative: clicking "add" twice for the same product increases the
// quantity, it does not replace it.
func AddItem(db *gorm.DB, cartID string, productID uint, quantity int) (*models.Cart, error) {
	if productID == 0 {
		return nil, ErrProductRequired
	}
	if quantity <= 0 {
		quantity = 1
	}

	var cart models.Cart
	err := db.First(&cart, "cart_id = ?", cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{CartID: cartID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		item.Quantity += quantity
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
	}

	if err := touchCart(db, cartID); err != nil {
		return nil, err
	}
	return FetchCart(db, cartID)
}

// SetItemQuantity sets the exact quantity for a product already in the cart.
// No merge and no clamping; the storefront stepper enforces its own minimum.
func SetItemQuantity(db *gorm.DB, cartID string, productID uint, quantity int) (*models.Cart, error) {
	var cart models.Cart
	if err := db.First(&cart, "cart_id = ?", cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	if err := touchCart(db, cartID); err != nil {
		return nil, err
	}
	return FetchCart(db, cartID)
}

// RemoveItem drops a product from the cart. Unlike SetItemQuantity, removing
// a product that is not present succeeds and returns the cart unchanged.
func RemoveItem(db *gorm.DB, cartID string, productID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := db.First(&cart, "cart_id = ?", cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	if err := db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}
	if err := touchCart(db, cartID); err != nil {
		return nil, err
	}
	return FetchCart(db, cartID)
}

// ClearCart deletes the cart record entirely, items included. Clearing a cart
// that does not exist is a no-op.
func ClearCart(db *gorm.DB, cartID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cartID).Delete(&models.Cart{}).Error
	})
}

func touchCart(db *gorm.DB, cartID string) error {
	return db.Model(&models.Cart{}).Where("cart_id = ?", cartID).
		UpdateColumn("updated_at", time.Now()).Error
}

// -------- Handlers --------

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := FetchCart(db, middleware.CartID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /cart/total
func GetCartTotal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := CartTotal(db, middleware.CartID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": total})
	}
}

// POST /cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is required"})
			return
		}
		cart, err := AddItem(db, middleware.CartID(c), input.Product, input.Quantity)
		if err != nil {
			if errors.Is(err, ErrProductRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PUT /cart/:productId
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity is required"})
			return
		}
		cart, err := SetItemQuantity(db, middleware.CartID(c), productID, input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, ErrCartNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			case errors.Is(err, ErrItemNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			}
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/:productId
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		cart, err := RemoveItem(db, middleware.CartID(c), productID)
		if err != nil {
			if errors.Is(err, ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ClearCart(db, middleware.CartID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

func parseProductID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}
	return uint(id64), true
}
