package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"github.com/choukseaaryan/seed-store/internal/domain" // Domain models
	"github.com/choukseaaryan/seed-store/internal/query"  // Pagination contract
	"github.com/choukseaaryan/seed-store/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/gorm"                 // GORM ORM library
)

var productFields = query.Fields{
	Searchable: []string{"item_name", "item_code", "company_name", "technical_name"},
	Sortable: map[string]string{
		"itemName":    "item_name",
		"itemCode":    "item_code",
		"companyName": "company_name",
		"stockQty":    "stock_qty",
		"createdAt":   "created_at",
	},
	DefaultSort: "item_name asc",
}

// Cache key for the first page of the low-stock report
const lowStockKey = "products:low-stock:first"

type CreateProductRequest struct {
	CategoryID       uint   `json:"categoryId" binding:"required"`
	CompanyName      string `json:"companyName" binding:"required"`
	ItemCode         string `json:"itemCode" binding:"required"`
	ItemName         string `json:"itemName" binding:"required"`
	TechnicalName    string `json:"technicalName"`
	StockQty         *int   `json:"stockQty" binding:"required"`
	SubItemContainer bool   `json:"subItemContainer"`
}

type UpdateProductRequest struct {
	CategoryID       *uint   `json:"categoryId"`
	CompanyName      *string `json:"companyName"`
	ItemCode         *string `json:"itemCode"`
	ItemName         *string `json:"itemName"`
	TechnicalName    *string `json:"technicalName"`
	StockQty         *int    `json:"stockQty"`
	SubItemContainer *bool   `json:"subItemContainer"`
}

// invalidateProductCache drops the cached low-stock report after any
// product write
func invalidateProductCache(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, lowStockKey)
}

// CreateProductHandler persists a new product
func CreateProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product := domain.Product{
			CategoryID:       req.CategoryID,
			CompanyName:      req.CompanyName,
			ItemCode:         req.ItemCode,
			ItemName:         req.ItemName,
			TechnicalName:    req.TechnicalName,
			StockQty:         *req.StockQty,
			SubItemContainer: req.SubItemContainer,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		invalidateProductCache(rdb)
		c.JSON(http.StatusCreated, product)
	}
}

// ListProductsHandler returns products under the pagination contract
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := query.Bind(c)
		base := db.Model(&domain.Product{}).Preload("Category")
		res, err := query.Paginate[domain.Product](base, p, productFields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetProductHandler returns one product with its first-level relations
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var product domain.Product
		if err := db.Preload("Category").Preload("BillItems").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// UpdateProductHandler applies a partial field update
func UpdateProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var product domain.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates := map[string]any{}
		if req.CategoryID != nil {
			updates["category_id"] = *req.CategoryID
		}
		if req.CompanyName != nil {
			updates["company_name"] = *req.CompanyName
		}
		if req.ItemCode != nil {
			updates["item_code"] = *req.ItemCode
		}
		if req.ItemName != nil {
			updates["item_name"] = *req.ItemName
		}
		if req.TechnicalName != nil {
			updates["technical_name"] = *req.TechnicalName
		}
		if req.StockQty != nil {
			updates["stock_qty"] = *req.StockQty
		}
		if req.SubItemContainer != nil {
			updates["sub_item_container"] = *req.SubItemContainer
		}
		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
			invalidateProductCache(rdb)
		}
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler hard-deletes a product
func DeleteProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var product domain.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		invalidateProductCache(rdb)
		logrus.WithFields(logrus.Fields{"product_id": id}).Info("Product deleted")
		c.JSON(http.StatusOK, product)
	}
}

// ProductsByCategoryHandler returns one category's products under the
// pagination contract
func ProductsByCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		p := query.Bind(c)
		base := db.Model(&domain.Product{}).Where("category_id = ?", id).Preload("Category")
		res, err := query.Paginate[domain.Product](base, p, productFields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// LowStockHandler reports products whose stock fell under the threshold,
// scarcest first. The default first page is the dashboard view, so that
// page is cached in Redis and dropped on every product write.
func LowStockHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := query.Bind(c)
		ctx := context.Background()
		firstPage := p.Page == 1 && p.Limit == query.DefaultLimit && p.Search == "" && p.SortBy == ""
		if firstPage {
			var cached query.Result[domain.Product]
			if found, err := utils.GetCache(ctx, rdb, lowStockKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		base := db.Model(&domain.Product{}).Where("stock_qty < ?", domain.LowStockThreshold).Preload("Category")
		res, err := query.Paginate[domain.Product](base, p, query.Fields{
			Sortable:    productFields.Sortable,
			DefaultSort: "stock_qty asc",
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch low stock products"})
			return
		}
		if firstPage {
			_ = utils.SetCache(ctx, rdb, lowStockKey, res, 60*time.Second)
		}
		c.JSON(http.StatusOK, res)
	}
}

// UpdateStockHandler sets a product's stock quantity directly
func UpdateStockHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var product domain.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		var req struct {
			Quantity *int `json:"quantity" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&product).Update("stock_qty", *req.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
		invalidateProductCache(rdb)
		logrus.WithFields(logrus.Fields{"product_id": id, "stock_qty": *req.Quantity}).Info("Stock updated")
		c.JSON(http.StatusOK, product)
	}
}
