package dashboardControllers

import (
	"fmt"
	"testing"

	"github.com/aionsolution/storefront-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedSoldLine(t *testing.T, db *gorm.DB, userID string, cat models.Category, qty int, sellPrice float64, ordered bool) {
	t.Helper()
	item := models.Item{
		Title:    "Item",
		Slug:     fmt.Sprintf("item-%s-%d-%v", cat, qty, ordered),
		Price:    sellPrice,
		Category: cat,
	}
	require.NoError(t, db.Create(&item).Error)
	line := models.OrderItem{
		UserID:    userID,
		ItemID:    item.ID,
		Quantity:  qty,
		SellPrice: sellPrice,
		Ordered:   ordered,
	}
	require.NoError(t, db.Create(&line).Error)
}

func TestAggregateTotals(t *testing.T) {
	db := newTestDB(t)
	seedSoldLine(t, db, "seller", models.CategoryShirt, 2, 10, true)
	seedSoldLine(t, db, "seller", models.CategorySportwear, 1, 5, true)

	report, err := Aggregate(db, "seller")
	require.NoError(t, err)

	require.Equal(t, []string{"Shirt", "Sport wear", "Outwear"}, report.Categories)
	require.Equal(t, []float64{20, 5, 0}, report.Price)
	require.Equal(t, []int{2, 1, 0}, report.Quant)
}

func TestAggregateSkipsOpenAndForeignLines(t *testing.T) {
	db := newTestDB(t)
	seedSoldLine(t, db, "seller", models.CategoryShirt, 2, 10, true)
	// still in a cart
	seedSoldLine(t, db, "seller", models.CategoryShirt, 3, 10, false)
	// someone else's sale
	seedSoldLine(t, db, "other", models.CategoryOutwear, 1, 50, true)

	report, err := Aggregate(db, "seller")
	require.NoError(t, err)

	require.Equal(t, []float64{20, 0, 0}, report.Price)
	require.Equal(t, []int{2, 0, 0}, report.Quant)
}

func TestAggregateNoSalesSeedsZeros(t *testing.T) {
	db := newTestDB(t)

	report, err := Aggregate(db, "seller")
	require.NoError(t, err)

	require.Equal(t, []string{"Shirt", "Sport wear", "Outwear"}, report.Categories)
	require.Equal(t, []float64{0, 0, 0}, report.Price)
	require.Equal(t, []int{0, 0, 0}, report.Quant)
}
