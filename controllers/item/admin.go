package itemControllers

import (
	"errors"
	"net/http"

	"github.com/aionsolution/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateItemInput struct {
	Title         string  `json:"title" binding:"required"`
	Slug          string  `json:"slug" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	DiscountPrice float64 `json:"discount_price"`
	Category      string  `json:"category" binding:"required"`
	Image         string  `json:"image"`
	Stock         int     `json:"stock" binding:"min=0"`
}

type UpdateItemInput struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	Image         *string  `json:"image"`
	Stock         *int     `json:"stock"`
}

// POST /admin/items
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, err := models.ParseCategory(input.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		item := models.Item{
			Title:         input.Title,
			Slug:          input.Slug,
			Description:   input.Description,
			Price:         input.Price,
			DiscountPrice: input.DiscountPrice,
			Category:      category,
			Image:         input.Image,
			Stock:         input.Stock,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /admin/items/:slug
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Item
		if err := db.Where("slug = ?", c.Param("slug")).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
			}
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Title != nil {
			item.Title = *input.Title
		}
		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Price != nil {
			item.Price = *input.Price
		}
		if input.DiscountPrice != nil {
			item.DiscountPrice = *input.DiscountPrice
		}
		if input.Image != nil {
			item.Image = *input.Image
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
				return
			}
			item.Stock = *input.Stock
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// GET /admin/orders
func GetPlacedOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items.Item").
			Preload("ShippingAddress").
			Where("ordered = ?", true).
			Order("ordered_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
