package wishlistControllers

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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

func seedProduct(t *testing.T, db *gorm.DB, id uint, title string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Product{
		ID:                 id,
		Title:              title,
		CategorySlug:       "beauty",
		Price:              decimal.RequireFromString("19.99"),
		DiscountPercentage: decimal.RequireFromString("5"),
		Rating:             4.5,
		Stock:              12,
		Thumbnail:          "thumb.jpg",
	}).Error)
}

func TestAddItemIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, 1, "Mascara")

	_, err := AddItem(db, "1", 1)
	require.NoError(t, err)
	wishlist, err := AddItem(db, "1", 1)
	require.NoError(t, err, "duplicate add is a successful no-op")

	require.Len(t, wishlist, 1)

	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := AddItem(db, "1", 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetWishlistJoinsLiveCatalogData(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, 1, "Mascara")

	wishlist, err := AddItem(db, "1", 1)
	require.NoError(t, err)

	require.Len(t, wishlist, 1)
	line := wishlist[0]
	assert.Equal(t, uint(1), line.ID)
	assert.Equal(t, "Mascara", line.Title)
	assert.True(t, line.Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 4.5, line.Rating)
	assert.Equal(t, 12, line.Stock)
	assert.Equal(t, "beauty", line.Category)
}

func TestRemoveItemAbsentNoop(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, 1, "Mascara")

	_, err := AddItem(db, "1", 1)
	require.NoError(t, err)

	wishlist, err := RemoveItem(db, "1", 99)
	require.NoError(t, err)
	assert.Len(t, wishlist, 1)

	wishlist, err = RemoveItem(db, "1", 1)
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestIsInWishlist(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, 1, "Mascara")

	member, err := IsInWishlist(db, "1", 1)
	require.NoError(t, err)
	assert.False(t, member)

	_, err = AddItem(db, "1", 1)
	require.NoError(t, err)

	member, err = IsInWishlist(db, "1", 1)
	require.NoError(t, err)
	assert.True(t, member)

	member, err = IsInWishlist(db, "2", 1)
	require.NoError(t, err)
	assert.False(t, member, "membership is per user")
}

func TestWishlistOrderedMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, 1, "Mascara")
	seedProduct(t, db, 2, "Lipstick")

	_, err := AddItem(db, "1", 1)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	wishlist, err := AddItem(db, "1", 2)
	require.NoError(t, err)

	require.Len(t, wishlist, 2)
	assert.Equal(t, uint(2), wishlist[0].ID)
	assert.Equal(t, uint(1), wishlist[1].ID)
}
