package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/choukseaaryan/seed-store/internal/domain"
	"github.com/choukseaaryan/seed-store/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, conn *gorm.DB, categoryID uint, code, name string, stock int) domain.Product {
	t.Helper()
	p := domain.Product{
		CategoryID:  categoryID,
		CompanyName: "AgroCorp",
		ItemCode:    code,
		ItemName:    name,
		StockQty:    stock,
	}
	require.NoError(t, conn.Create(&p).Error)
	return p
}

func TestProductCRUD(t *testing.T) {
	r, conn := setupRouter(t)
	category := domain.ProductCategory{Name: "Seeds"}
	require.NoError(t, conn.Create(&category).Error)

	w := doJSON(t, r, http.MethodPost, "/products", gin.H{
		"categoryId":    category.ID,
		"companyName":   "AgroCorp",
		"itemCode":      "WHT001",
		"itemName":      "Wheat Seeds",
		"technicalName": "Triticum aestivum",
		"stockQty":      1000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Product
	decode(t, w, &created)
	require.NotZero(t, created.ID)

	// findOne eagerly includes the category
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched domain.Product
	decode(t, w, &fetched)
	require.NotNil(t, fetched.Category)
	assert.Equal(t, "Seeds", fetched.Category.Name)

	// Partial update
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/products/%d", created.ID), gin.H{"companyName": "SeedCo"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &fetched)
	assert.Equal(t, "SeedCo", fetched.CompanyName)
	assert.Equal(t, "WHT001", fetched.ItemCode)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductsByCategory(t *testing.T) {
	r, conn := setupRouter(t)
	seeds := domain.ProductCategory{Name: "Seeds"}
	fertilizers := domain.ProductCategory{Name: "Fertilizers"}
	require.NoError(t, conn.Create(&seeds).Error)
	require.NoError(t, conn.Create(&fertilizers).Error)
	seedProduct(t, conn, seeds.ID, "WHT001", "Wheat Seeds", 100)
	seedProduct(t, conn, seeds.ID, "MZE001", "Maize Seeds", 100)
	seedProduct(t, conn, fertilizers.ID, "FRT001", "Urea", 100)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/category/%d", seeds.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res query.Result[domain.Product]
	decode(t, w, &res)
	assert.Len(t, res.Data, 2)
	assert.EqualValues(t, 2, res.Meta.Total)

	// Search composes with the category filter
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/products/category/%d?search=wheat", seeds.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &res)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Wheat Seeds", res.Data[0].ItemName)
}

func TestLowStockReport(t *testing.T) {
	r, conn := setupRouter(t)
	category := domain.ProductCategory{Name: "Seeds"}
	require.NoError(t, conn.Create(&category).Error)
	seedProduct(t, conn, category.ID, "ONE", "Nearly Gone", 2)
	seedProduct(t, conn, category.ID, "TWO", "Running Low", 9)
	seedProduct(t, conn, category.ID, "TEN", "At Threshold", 10) // Not low: < 10, not <=
	seedProduct(t, conn, category.ID, "BIG", "Plenty", 500)

	w := doJSON(t, r, http.MethodGet, "/products/low-stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res query.Result[domain.Product]
	decode(t, w, &res)
	require.Len(t, res.Data, 2)
	// Scarcest first by default
	assert.Equal(t, "Nearly Gone", res.Data[0].ItemName)
	assert.Equal(t, "Running Low", res.Data[1].ItemName)
}

func TestUpdateStockSetsQuantityDirectly(t *testing.T) {
	r, conn := setupRouter(t)
	category := domain.ProductCategory{Name: "Seeds"}
	require.NoError(t, conn.Create(&category).Error)
	p := seedProduct(t, conn, category.ID, "WHT001", "Wheat Seeds", 100)

	// The endpoint sets the absolute quantity, it does not adjust
	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/products/%d/stock", p.ID), gin.H{"quantity": 7})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded domain.Product
	require.NoError(t, conn.First(&reloaded, p.ID).Error)
	assert.Equal(t, 7, reloaded.StockQty)

	// Zero is an accepted explicit value
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/products/%d/stock", p.ID), gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, conn.First(&reloaded, p.ID).Error)
	assert.Equal(t, 0, reloaded.StockQty)

	// Missing body field fails validation
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/products/%d/stock", p.ID), gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
