package dashboardControllers

import (
	"net/http"

	cartControllers "github.com/aionsolution/storefront-api/controllers/cart"
	"github.com/aionsolution/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// SalesReport holds per-category totals aligned to the fixed category order.
// Categories without sales stay at zero, so an empty report and no sales at
// all look the same.
type SalesReport struct {
	Categories []string  `json:"categories"`
	Price      []float64 `json:"price"`
	Quant      []int     `json:"quant"`
}

// Aggregate reduces the user's completed order lines into per-category price
// and quantity totals.
func Aggregate(db *gorm.DB, userID string) (SalesReport, error) {
	var lines []models.OrderItem
	if err := db.Preload("Item").
		Where("user_id = ? AND ordered = ?", userID, true).
		Find(&lines).Error; err != nil {
		return SalesReport{}, err
	}

	price := make(map[models.Category]float64, len(models.Categories))
	quant := make(map[models.Category]int, len(models.Categories))
	for _, cat := range models.Categories {
		price[cat] = 0
		quant[cat] = 0
	}

	for _, line := range lines {
		price[line.Item.Category] += line.SellPrice * float64(line.Quantity)
		quant[line.Item.Category] += line.Quantity
	}

	report := SalesReport{}
	for _, cat := range models.Categories {
		report.Categories = append(report.Categories, cat.Label())
		report.Price = append(report.Price, price[cat])
		report.Quant = append(report.Quant, quant[cat])
	}
	return report, nil
}

// GET /dashboard
func DashboardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.CurrentUser(c)
		if !ok {
			return
		}

		report, err := Aggregate(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate sales"})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// GET /dashboard/export
func ExportSalesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := cartControllers.CurrentUser(c)
		if !ok {
			return
		}

		report, err := Aggregate(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate sales"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sales")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"Category", "Quantity", "Sales"} {
			headerRow.AddCell().SetValue(h)
		}

		var totalQuant int
		var totalPrice float64
		for i, label := range report.Categories {
			row := sheet.AddRow()
			row.AddCell().SetValue(label)
			row.AddCell().SetValue(report.Quant[i])
			row.AddCell().SetValue(report.Price[i])
			totalQuant += report.Quant[i]
			totalPrice += report.Price[i]
		}
		totalRow := sheet.AddRow()
		totalRow.AddCell().SetValue("Total")
		totalRow.AddCell().SetValue(totalQuant)
		totalRow.AddCell().SetValue(totalPrice)

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="sales.xlsx"`)
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
