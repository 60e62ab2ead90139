package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Bill dates

	"github.com/choukseaaryan/seed-store/internal/domain" // Domain models
	"github.com/choukseaaryan/seed-store/internal/query"  // Pagination contract
	"github.com/choukseaaryan/seed-store/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/gorm"                 // GORM ORM library
)

// Bill list sorting allowlist. Columns are qualified because the bill list
// joins customers for relation-level search.
var billFields = query.Fields{
	Searchable: []string{"bills.invoice_no", "customers.name"},
	Sortable: map[string]string{
		"invoiceNo":   "bills.invoice_no",
		"date":        "bills.date",
		"totalAmount": "bills.total_amount",
		"saleStatus":  "bills.sale_status",
		"createdAt":   "bills.created_at",
	},
	DefaultSort: "bills.date desc", // Most recent sale first
}

// One line of an aggregate bill payload. Total arrives client-computed and
// is stored verbatim.
type BillItemInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required"`
	Total     float64 `json:"total"`
}

// Request struct for the aggregate bill create
type CreateBillRequest struct {
	InvoiceNo     string          `json:"invoiceNo" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	CustomerID    *uint           `json:"customerId"` // Optional, cash sales need no customer
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=CASH CREDIT"`
	SaleStatus    string          `json:"saleStatus" binding:"required,oneof=PAID VOID REFUND"`
	SyncStatus    string          `json:"syncStatus" binding:"omitempty,oneof=PENDING SUCCESS FAILED"`
	TotalAmount   float64         `json:"totalAmount" binding:"required"`
	BillItems     []BillItemInput `json:"billItems" binding:"required,dive"`
}

// Request struct for partial bill updates. A present BillItems array
// replaces the full item set.
type UpdateBillRequest struct {
	InvoiceNo     *string          `json:"invoiceNo"`
	Date          *time.Time       `json:"date"`
	CustomerID    *uint            `json:"customerId"`
	PaymentMethod *string          `json:"paymentMethod" binding:"omitempty,oneof=CASH CREDIT"`
	SaleStatus    *string          `json:"saleStatus" binding:"omitempty,oneof=PAID VOID REFUND"`
	SyncStatus    *string          `json:"syncStatus" binding:"omitempty,oneof=PENDING SUCCESS FAILED"`
	TotalAmount   *float64         `json:"totalAmount"`
	BillItems     *[]BillItemInput `json:"billItems"`
}

// invalidateBillCache drops the cached top-customers report after any
// bill write
func invalidateBillCache(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, topCustomersKey)
}

func toBillItems(inputs []BillItemInput) []domain.BillItem {
	items := make([]domain.BillItem, len(inputs))
	for i, in := range inputs {
		items[i] = domain.BillItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     in.Price,
			Total:     in.Total, // Trusted as-given, no quantity x price recomputation
		}
	}
	return items
}

// loadBill fetches a bill with its first-level relations
func loadBill(db *gorm.DB, id uint) (*domain.Bill, error) {
	var bill domain.Bill
	err := db.Preload("Customer").Preload("BillItems").Preload("BillItems.Product").First(&bill, id).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// CreateBillHandler writes the bill and all its items in one nested create.
// No stock check or decrement happens here; referential integrity is left
// to the foreign keys.
func CreateBillHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		syncStatus := req.SyncStatus
		if syncStatus == "" {
			syncStatus = domain.SyncPending
		}
		bill := domain.Bill{
			InvoiceNo:     req.InvoiceNo,
			Date:          req.Date,
			CustomerID:    req.CustomerID,
			PaymentMethod: req.PaymentMethod,
			SaleStatus:    req.SaleStatus,
			SyncStatus:    syncStatus,
			TotalAmount:   req.TotalAmount, // Stored verbatim
			BillItems:     toBillItems(req.BillItems),
		}
		// Create saves the bill and its items in a single transaction
		if err := db.Create(&bill).Error; err != nil {
			logrus.WithFields(logrus.Fields{"invoice_no": req.InvoiceNo, "error": err.Error()}).Error("Bill create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill"})
			return
		}
		invalidateBillCache(rdb)
		logrus.WithFields(logrus.Fields{
			"bill_id":    bill.ID,
			"invoice_no": bill.InvoiceNo,
			"items":      len(bill.BillItems),
			"total":      bill.TotalAmount,
		}).Info("Bill created")
		created, err := loadBill(db, bill.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bill"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// ListBillsHandler returns bills under the pagination contract. Search
// matches the invoice number or the customer name, so the query joins
// customers (left, to keep customer-less cash sales).
func ListBillsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := query.Bind(c)
		base := db.Model(&domain.Bill{}).
			Joins("LEFT JOIN customers ON customers.id = bills.customer_id").
			Preload("Customer").Preload("BillItems").Preload("BillItems.Product")
		res, err := query.Paginate[domain.Bill](base, p, billFields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetBillHandler returns one bill with customer and items preloaded
func GetBillHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		bill, err := loadBill(db, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		c.JSON(http.StatusOK, bill)
	}
}

// UpdateBillHandler applies a partial field update. When the payload
// carries billItems, every existing item of the bill is deleted and the
// set is recreated from the payload: a destructive replace, not a merge.
func UpdateBillHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var bill domain.Bill
		if err := db.First(&bill, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		var req UpdateBillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates := map[string]any{}
		if req.InvoiceNo != nil {
			updates["invoice_no"] = *req.InvoiceNo
		}
		if req.Date != nil {
			updates["date"] = *req.Date
		}
		if req.CustomerID != nil {
			updates["customer_id"] = *req.CustomerID
		}
		if req.PaymentMethod != nil {
			updates["payment_method"] = *req.PaymentMethod
		}
		if req.SaleStatus != nil {
			updates["sale_status"] = *req.SaleStatus
		}
		if req.SyncStatus != nil {
			updates["sync_status"] = *req.SyncStatus
		}
		if req.TotalAmount != nil {
			updates["total_amount"] = *req.TotalAmount
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if len(updates) > 0 {
				if err := tx.Model(&bill).Updates(updates).Error; err != nil {
					return err
				}
			}
			if req.BillItems != nil {
				// Destructive replace of the whole item set
				if err := tx.Where("bill_id = ?", id).Delete(&domain.BillItem{}).Error; err != nil {
					return err
				}
				items := toBillItems(*req.BillItems)
				for i := range items {
					items[i].BillID = id
				}
				if len(items) > 0 {
					if err := tx.Create(&items).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{"bill_id": id, "error": err.Error()}).Error("Bill update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bill"})
			return
		}
		invalidateBillCache(rdb)
		updated, err := loadBill(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bill"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteBillHandler removes a bill together with its owned items
func DeleteBillHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var bill domain.Bill
		if err := db.First(&bill, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("bill_id = ?", id).Delete(&domain.BillItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&bill).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bill"})
			return
		}
		invalidateBillCache(rdb)
		logrus.WithFields(logrus.Fields{"bill_id": id, "invoice_no": bill.InvoiceNo}).Info("Bill deleted")
		c.JSON(http.StatusOK, bill)
	}
}
