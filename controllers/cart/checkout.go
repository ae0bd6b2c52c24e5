package cartControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/Rifaque/Bhatkal-Time-Luxe/middleware"
	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
)

// CheckoutResult is the summary both checkout paths return. WhatsAppURL is a
// deep link pre-filled with the order message, empty when no destination
// number is configured.
type CheckoutResult struct {
	Message          string `json:"message"`
	Total            int64  `json:"total"`
	GlobalOrderCount int64  `json:"globalOrderCount"`
	WhatsAppURL      string `json:"whatsappUrl"`
	OrderID          uint   `json:"orderId"`
}

// Price display in the direct-buy message uses Indian digit grouping.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// CheckoutCart converts the session's cart into an order snapshot. Items
// whose product no longer resolves are skipped; if nothing resolves the
// checkout fails before any side effect. Per-product order counters are
// bumped best-effort, then the order snapshot and the global counter are
// written in one transaction. The cart itself is left alone; clearing it is
// the caller's explicit action.
func CheckoutCart(db *gorm.DB, cartID, whatsappNumber string) (*CheckoutResult, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").First(&cart, "cart_id = ?", cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartEmpty
	}
	if err != nil {
		return nil, err
	}

	var resolvable []models.CartItem
	for _, item := range cart.Items {
		if item.Product != nil {
			resolvable = append(resolvable, item)
		}
	}
	if len(resolvable) == 0 {
		return nil, ErrCartEmpty
	}

	var msg strings.Builder
	msg.WriteString("Order Details:\n")
	var total int64
	var orderItems []models.OrderItem
	for _, item := range resolvable {
		itemTotal := item.Product.Price * int64(item.Quantity)
		total += itemTotal
		fmt.Fprintf(&msg, "%s - Quantity: %d, Price: %d, Subtotal: %d\n",
			item.Product.Name, item.Quantity, item.Product.Price, itemTotal)

		// Best-effort counter bump; a failure leaves the ledger and the
		// counter out of step, so say which product it was.
		if err := db.Model(&models.Product{}).Where("id = ?", item.ProductID).
			UpdateColumn("order_count", gorm.Expr("order_count + ?", item.Quantity)).Error; err != nil {
			log.Printf("checkout: order count bump failed for product %d: %v", item.ProductID, err)
		}

		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}
	fmt.Fprintf(&msg, "Total: %d", total)

	return recordOrder(db, cartID, orderItems, total, msg.String(), whatsappNumber)
}

// CheckoutDirect records a single-unit purchase of one product, bypassing any
// cart state. The order is marked with the direct-purchase sentinel cart id.
func CheckoutDirect(db *gorm.DB, productID uint, whatsappNumber, storefrontURL string) (*CheckoutResult, error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	const quantity = 1
	total := product.Price * quantity
	productPageURL := fmt.Sprintf("%s/product/%d", storefrontURL, product.ID)
	msg := fmt.Sprintf(
		"Order Details:\n%s\nColor: %s\nPrice: ~%s~ %s\n--------------------------------\nSubtotal: %d\n\nProduct: %s",
		product.Name, product.Color,
		inr.Sprintf("%d", product.MRP), inr.Sprintf("%d", product.Price),
		total, productPageURL,
	)

	items := []models.OrderItem{{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}}
	return recordOrder(db, models.DirectPurchaseCartID, items, total, msg, whatsappNumber)
}

// recordOrder persists the snapshot and bumps the global counter together, so
// the count in the response matches what a reader will see.
func recordOrder(db *gorm.DB, cartID string, items []models.OrderItem, total int64, messageText, whatsappNumber string) (*CheckoutResult, error) {
	var order models.Order
	var globalCount int64
	err := db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{CartID: cartID, Items: items, Total: total, Message: messageText}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		count, err := incrementGlobalOrders(tx)
		if err != nil {
			return err
		}
		globalCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Message:          messageText,
		Total:            total,
		GlobalOrderCount: globalCount,
		WhatsAppURL:      whatsAppLink(whatsappNumber, messageText),
		OrderID:          order.ID,
	}, nil
}

// incrementGlobalOrders upserts the singleton stats row and increments it
// with an atomic SQL expression, then reads the fresh value back.
func incrementGlobalOrders(tx *gorm.DB) (int64, error) {
	var stats models.Stats
	if err := tx.FirstOrCreate(&stats, models.Stats{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&models.Stats{}).Where("id = ?", stats.ID).
		UpdateColumn("global_order_count", gorm.Expr("global_order_count + ?", 1)).Error; err != nil {
		return 0, err
	}
	if err := tx.First(&stats, stats.ID).Error; err != nil {
		return 0, err
	}
	return stats.GlobalOrderCount, nil
}

func whatsAppLink(number, text string) string {
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}

// -------- Handlers --------

// GET /cart/checkout
func CheckoutCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := CheckoutCart(db, middleware.CartID(c), os.Getenv("WHATSAPP_NUMBER"))
		if err != nil {
			if errors.Is(err, ErrCartEmpty) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /product/:productId/checkout
func CheckoutDirectHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		result, err := CheckoutDirect(db, productID, os.Getenv("WHATSAPP_NUMBER"), storefrontURL())
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func storefrontURL() string {
	if u := os.Getenv("STOREFRONT_URL"); u != "" {
		return strings.TrimRight(u, "/")
	}
	return "https://btl.hubzero.in"
}
