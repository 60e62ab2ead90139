package api

import (
	"net/http" // HTTP status codes

	"github.com/choukseaaryan/seed-store/internal/domain" // Domain models
	"github.com/choukseaaryan/seed-store/internal/query"  // Pagination contract

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Bill items carry no text fields, so search is a no-op on this resource
var billItemFields = query.Fields{
	Sortable: map[string]string{
		"quantity":  "quantity",
		"price":     "price",
		"total":     "total",
		"billId":    "bill_id",
		"productId": "product_id",
	},
	DefaultSort: "id asc",
}

type CreateBillItemRequest struct {
	BillID    uint    `json:"billId" binding:"required"`
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required"`
	Total     float64 `json:"total"`
}

type UpdateBillItemRequest struct {
	ProductID *uint    `json:"productId"`
	Quantity  *int     `json:"quantity" binding:"omitempty,gt=0"`
	Price     *float64 `json:"price"`
	Total     *float64 `json:"total"`
}

// CreateBillItemHandler appends one line to an existing bill
func CreateBillItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBillItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item := domain.BillItem{
			BillID:    req.BillID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Price:     req.Price,
			Total:     req.Total,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// ListBillItemsHandler returns bill items under the pagination contract
func ListBillItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := query.Bind(c)
		base := db.Model(&domain.BillItem{}).Preload("Product").Preload("Bill")
		res, err := query.Paginate[domain.BillItem](base, p, billItemFields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bill items"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetBillItemHandler returns one bill item with its product and bill
func GetBillItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var item domain.BillItem
		if err := db.Preload("Product").Preload("Bill").First(&item, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// UpdateBillItemHandler applies a partial field update
func UpdateBillItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var item domain.BillItem
		if err := db.First(&item, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill item not found"})
			return
		}
		var req UpdateBillItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates := map[string]any{}
		if req.ProductID != nil {
			updates["product_id"] = *req.ProductID
		}
		if req.Quantity != nil {
			updates["quantity"] = *req.Quantity
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Total != nil {
			updates["total"] = *req.Total
		}
		if len(updates) > 0 {
			if err := db.Model(&item).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bill item"})
				return
			}
		}
		c.JSON(http.StatusOK, item)
	}
}

// DeleteBillItemHandler removes one line from a bill
func DeleteBillItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var item domain.BillItem
		if err := db.First(&item, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill item not found"})
			return
		}
		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bill item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
