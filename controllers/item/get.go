package itemControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aionsolution/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pageSize = 10

// GetItems returns the catalog, 10 items per page.
// URL query: /?page=N
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}

		var total int64
		if err := db.Model(&models.Item{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}

		var items []models.Item
		if err := db.Order("created_at DESC").
			Limit(pageSize).
			Offset((page - 1) * pageSize).
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}

		totalPages := int((total + pageSize - 1) / pageSize)
		c.JSON(http.StatusOK, gin.H{
			"items":       items,
			"page":        page,
			"total_pages": totalPages,
		})
	}
}

// GetItemBySlug returns a single catalog item.
// URL param: /products/:slug
func GetItemBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var item models.Item
		if err := db.Where("slug = ?", slug).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
