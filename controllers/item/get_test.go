package itemControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aionsolution/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Item{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", GetItems(db))
	r.GET("/products/:slug", GetItemBySlug(db))
	return r
}

func TestGetItemsPagination(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 12; i++ {
		item := models.Item{
			Title:    fmt.Sprintf("Item %d", i),
			Slug:     fmt.Sprintf("item-%d", i),
			Price:    10,
			Category: models.CategoryShirt,
			Stock:    1,
		}
		require.NoError(t, db.Create(&item).Error)
	}
	r := newRouter(db)

	var page struct {
		Items      []models.Item `json:"items"`
		Page       int           `json:"page"`
		TotalPages int           `json:"total_pages"`
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 10)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 2, page.TotalPages)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 2)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?page=0", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetItemBySlug(t *testing.T) {
	db := newTestDB(t)
	item := models.Item{
		Title:    "Shirt",
		Slug:     "shirt-1",
		Price:    10,
		Category: models.CategoryShirt,
		Stock:    3,
	}
	require.NoError(t, db.Create(&item).Error)
	r := newRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/shirt-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, item.Slug, got.Slug)
	require.Equal(t, 3, got.Stock)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
