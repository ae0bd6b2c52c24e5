package cartControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCartMissingCart(t *testing.T) {
	db := newTestDB(t)

	_, err := CheckoutCart(db, "no-such-cart", "")
	assert.ErrorIs(t, err, ErrCartEmpty)

	var orders, stats int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.Stats{}).Count(&stats).Error)
	assert.Zero(t, orders)
	assert.Zero(t, stats)
}

func TestCheckoutCartWithOnlyUnresolvableItems(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := AddItem(db, "cart-1", product.ID, 2)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)

	_, err = CheckoutCart(db, "cart-1", "")
	assert.ErrorIs(t, err, ErrCartEmpty)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestCheckoutCart(t *testing.T) {
	db := newTestDB(t)
	first := seedProduct(t, db, "Regal One", 100, 150)
	second := seedProduct(t, db, "Coastal Two", 50, 80)

	_, err := AddItem(db, "cart-1", first.ID, 2)
	require.NoError(t, err)
	_, err = AddItem(db, "cart-1", second.ID, 1)
	require.NoError(t, err)

	result, err := CheckoutCart(db, "cart-1", "911234567890")
	require.NoError(t, err)

	assert.EqualValues(t, 250, result.Total)
	assert.EqualValues(t, 1, result.GlobalOrderCount)
	wantMessage := "Order Details:\n" +
		"Regal One - Quantity: 2, Price: 100, Subtotal: 200\n" +
		"Coastal Two - Quantity: 1, Price: 50, Subtotal: 50\n" +
		"Total: 250"
	assert.Equal(t, wantMessage, result.Message)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/911234567890?text="))

	// Order snapshot persisted.
	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, result.OrderID).Error)
	assert.Equal(t, "cart-1", order.CartID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Regal One", order.Items[0].Name)
	assert.EqualValues(t, 100, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// Per-product counters bumped by ordered quantity.
	var updated models.Product
	require.NoError(t, db.First(&updated, first.ID).Error)
	assert.EqualValues(t, 2, updated.OrderCount)

	// Checkout does not clear the cart; that is the caller's explicit step.
	cart, err := FetchCart(db, "cart-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestCheckoutCartWithoutWhatsAppNumber(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := AddItem(db, "cart-1", product.ID, 1)
	require.NoError(t, err)

	result, err := CheckoutCart(db, "cart-1", "")
	require.NoError(t, err)
	assert.Empty(t, result.WhatsAppURL)
}

func TestCheckoutCartSnapshotSurvivesProductEdits(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 100, 150)

	_, err := AddItem(db, "cart-1", product.ID, 1)
	require.NoError(t, err)
	result, err := CheckoutCart(db, "cart-1", "")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", 9999).Error)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, result.OrderID).Error)
	require.Len(t, order.Items, 1)
	assert.EqualValues(t, 100, order.Items[0].Price)
}

func TestCheckoutDirect(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)
	product.Color = "Black"
	require.NoError(t, db.Save(&product).Error)

	// Existing cart state must not leak into a direct purchase.
	_, err := AddItem(db, "cart-1", product.ID, 7)
	require.NoError(t, err)

	result, err := CheckoutDirect(db, product.ID, "911234567890", "https://btl.hubzero.in")
	require.NoError(t, err)

	assert.EqualValues(t, 799, result.Total)
	assert.EqualValues(t, 1, result.GlobalOrderCount)
	wantMessage := fmt.Sprintf(
		"Order Details:\nRegal One\nColor: Black\nPrice: ~999~ 799\n--------------------------------\nSubtotal: 799\n\nProduct: https://btl.hubzero.in/product/%d",
		product.ID)
	assert.Equal(t, wantMessage, result.Message)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, result.OrderID).Error)
	assert.Equal(t, models.DirectPurchaseCartID, order.CartID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestCheckoutDirectMissingProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := CheckoutDirect(db, 12345, "", "https://btl.hubzero.in")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGlobalOrderCountAccumulates(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := AddItem(db, "cart-1", product.ID, 1)
	require.NoError(t, err)
	first, err := CheckoutCart(db, "cart-1", "")
	require.NoError(t, err)

	second, err := CheckoutDirect(db, product.ID, "", "https://btl.hubzero.in")
	require.NoError(t, err)

	assert.EqualValues(t, 1, first.GlobalOrderCount)
	assert.EqualValues(t, 2, second.GlobalOrderCount)

	// Still a single stats row.
	var count int64
	require.NoError(t, db.Model(&models.Stats{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
