package cartControllers

import (
	"fmt"
	"testing"

	"github.com/Rifaque/Bhatkal-Time-Luxe/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Brand{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Stats{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price, mrp int64) models.Product {
	t.Helper()
	brand := models.Brand{Name: fmt.Sprintf("%s brand", name), Logo: "logo.png"}
	require.NoError(t, db.Create(&brand).Error)
	product := models.Product{
		Name:    name,
		BrandID: brand.ID,
		MRP:     mrp,
		Price:   price,
		InStock: true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddItemMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := AddItem(db, "cart-1", product.ID, 2)
	require.NoError(t, err)
	cart, err := AddItem(db, "cart-1", product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	cart, err := AddItem(db, "cart-1", product.ID, 0)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItemRequiresProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := AddItem(db, "cart-1", 0, 1)
	assert.ErrorIs(t, err, ErrProductRequired)
}

func TestAddItemCreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	// Reads never create a cart record.
	cart, err := FetchCart(db, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = AddItem(db, "cart-1", product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCartTotal(t *testing.T) {
	db := newTestDB(t)
	first := seedProduct(t, db, "Regal One", 100, 150)
	second := seedProduct(t, db, "Coastal Two", 50, 80)

	_, err := AddItem(db, "cart-1", first.ID, 2)
	require.NoError(t, err)
	_, err = AddItem(db, "cart-1", second.ID, 1)
	require.NoError(t, err)

	total, err := CartTotal(db, "cart-1")
	require.NoError(t, err)
	assert.EqualValues(t, 250, total)
}

func TestCartTotalMissingCartIsZero(t *testing.T) {
	db := newTestDB(t)

	total, err := CartTotal(db, "no-such-cart")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCartTotalSkipsDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	kept := seedProduct(t, db, "Regal One", 100, 150)
	removed := seedProduct(t, db, "Coastal Two", 50, 80)

	_, err := AddItem(db, "cart-1", kept.ID, 2)
	require.NoError(t, err)
	_, err = AddItem(db, "cart-1", removed.ID, 4)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Product{}, removed.ID).Error)

	total, err := CartTotal(db, "cart-1")
	require.NoError(t, err)
	assert.EqualValues(t, 200, total)
}

func TestSetItemQuantityReplaces(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := AddItem(db, "cart-1", product.ID, 3)
	require.NoError(t, err)

	cart, err := SetItemQuantity(db, "cart-1", product.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestSetItemQuantityMissingCart(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := SetItemQuantity(db, "no-such-cart", product.ID, 2)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestSetItemQuantityMissingItem(t *testing.T) {
	db := newTestDB(t)
	inCart := seedProduct(t, db, "Regal One", 799, 999)
	absent := seedProduct(t, db, "Coastal Two", 50, 80)

	_, err := AddItem(db, "cart-1", inCart.ID, 1)
	require.NoError(t, err)

	_, err = SetItemQuantity(db, "cart-1", absent.ID, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemIdempotentForAbsentProduct(t *testing.T) {
	db := newTestDB(t)
	inCart := seedProduct(t, db, "Regal One", 799, 999)
	absent := seedProduct(t, db, "Coastal Two", 50, 80)

	_, err := AddItem(db, "cart-1", inCart.ID, 2)
	require.NoError(t, err)

	// Removing a product that was never added succeeds and leaves the cart
	// unchanged, unlike SetItemQuantity on the same product.
	cart, err := RemoveItem(db, "cart-1", absent.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveItemMissingCart(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := RemoveItem(db, "no-such-cart", product.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestRemoveItemDropsLine(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := AddItem(db, "cart-1", product.ID, 2)
	require.NoError(t, err)

	cart, err := RemoveItem(db, "cart-1", product.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearCartDeletesRecordAndIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Regal One", 799, 999)

	_, err := AddItem(db, "cart-1", product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, "cart-1"))

	var carts, items int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&carts).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Count(&items).Error)
	assert.Zero(t, carts)
	assert.Zero(t, items)

	// Clearing again (or clearing a cart that never existed) is fine.
	require.NoError(t, ClearCart(db, "cart-1"))
	require.NoError(t, ClearCart(db, "never-existed"))
}
