package orderControllers

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cartControllers "github.com/Prikus-01/Amazon-clone/controllers/cart"
	"github.com/Prikus-01/Amazon-clone/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Review{},
		&models.Category{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id uint, price string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Product{
		ID:                 id,
		Title:              "Phone",
		Price:              decimal.RequireFromString(price),
		DiscountPercentage: decimal.RequireFromString("10"),
		Stock:              5,
		Thumbnail:          "thumb.jpg",
	}).Error)
}

func validAddress() *models.ShippingAddress {
	return &models.ShippingAddress{
		FullName:     "Jane Doe",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		Country:      "USA",
	}
}

func validRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		Items: []OrderItemInput{{
			ID:                 1,
			Title:              "Phone",
			Price:              decimal.RequireFromString("100"),
			DiscountPercentage: decimal.RequireFromString("10"),
			Quantity:           2,
			Thumbnail:          "thumb.jpg",
		}},
		ShippingAddress: validAddress(),
		Subtotal:        decimal.RequireFromString("180"),
		Shipping:        decimal.Zero,
		Tax:             decimal.RequireFromString("14.4"),
		Total:           decimal.RequireFromString("194.4"),
	}
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, 1, "100")
	_, err := cartControllers.AddItem(db, "1", 1, 2)
	require.NoError(t, err)

	req := validRequest()
	req.Items = nil
	_, err = PlaceOrder(db, "1", req)
	assert.ErrorIs(t, err, ErrNoItems)

	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders, "a rejected order must perform no writes")
	assert.Zero(t, items)

	cart, err := cartControllers.GetCart(db, "1")
	require.NoError(t, err)
	assert.Len(t, cart, 1, "the cart must be unaffected by a rejected order")
}

func TestPlaceOrderAddressValidation(t *testing.T) {
	db := newTestDB(t)

	req := validRequest()
	req.ShippingAddress = nil
	_, err := PlaceOrder(db, "1", req)
	assert.ErrorIs(t, err, ErrNoAddress)

	for _, mutate := range []func(*models.ShippingAddress){
		func(a *models.ShippingAddress) { a.FullName = "" },
		func(a *models.ShippingAddress) { a.AddressLine1 = "" },
		func(a *models.ShippingAddress) { a.City = "" },
		func(a *models.ShippingAddress) { a.State = "" },
		func(a *models.ShippingAddress) { a.ZipCode = "" },
		func(a *models.ShippingAddress) { a.Country = "" },
	} {
		req := validRequest()
		mutate(req.ShippingAddress)
		_, err := PlaceOrder(db, "1", req)
		assert.ErrorIs(t, err, ErrIncompleteAddress)
	}

	// Line 2 and phone are optional.
	req = validRequest()
	req.ShippingAddress.AddressLine2 = ""
	req.ShippingAddress.Phone = ""
	_, err = PlaceOrder(db, "1", req)
	assert.NoError(t, err)
}

func TestPlaceOrderPersistsSnapshot(t *testing.T) {
	db := newTestDB(t)

	order, err := PlaceOrder(db, "1", validRequest())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("180")))
	assert.True(t, order.Shipping.Equal(decimal.Zero))
	assert.True(t, order.Tax.Equal(decimal.RequireFromString("14.4")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("194.4")))
	assert.Equal(t, "Jane Doe", order.ShippingAddress.FullName)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, uint(1), item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("100")))
	assert.True(t, item.DiscountPercentage.Equal(decimal.RequireFromString("10")))
}

func TestPlaceOrderFreezesPrices(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, 1, "100")

	order, err := PlaceOrder(db, "1", validRequest())
	require.NoError(t, err)

	// A later catalog price change must not leak into the placed order.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", 1).
		Update("price", decimal.RequireFromString("999")).Error)

	fetched, err := GetOrderByID(db, "1", order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.True(t, fetched.Items[0].Price.Equal(decimal.RequireFromString("100")))
}

func TestPlaceOrderRoundTrip(t *testing.T) {
	db := newTestDB(t)

	placed, err := PlaceOrder(db, "1", validRequest())
	require.NoError(t, err)

	fetched, err := GetOrderByID(db, "1", placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed, fetched)
}

func TestOrderIDsAreUnique(t *testing.T) {
	db := newTestDB(t)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		order, err := PlaceOrder(db, "1", validRequest())
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
	}
}

func TestGetOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)

	first, err := PlaceOrder(db, "1", validRequest())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := PlaceOrder(db, "1", validRequest())
	require.NoError(t, err)

	orders, err := GetOrders(db, "1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	require.Len(t, orders[0].Items, 1)
}

func TestOrdersAreScopedToUser(t *testing.T) {
	db := newTestDB(t)

	order, err := PlaceOrder(db, "1", validRequest())
	require.NoError(t, err)

	orders, err := GetOrders(db, "2")
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = GetOrderByID(db, "2", order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrderByIDUnknown(t *testing.T) {
	db := newTestDB(t)

	_, err := GetOrderByID(db, "1", "ORD-does-not-exist")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
