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

// Search and sort allowlist for customer list endpoints
var customerFields = query.Fields{
	Searchable: []string{"name", "address", "contact_number"},
	Sortable: map[string]string{
		"name":          "name",
		"contactNumber": "contact_number",
		"pinCode":       "pin_code",
		"createdAt":     "created_at",
	},
	DefaultSort: "name asc",
}

// Request struct for creating a customer
type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	PinCode       string `json:"pinCode"`
	ContactNumber string `json:"contactNumber" binding:"required"`
}

// Request struct for partial customer updates
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	PinCode       *string `json:"pinCode"`
	ContactNumber *string `json:"contactNumber"`
}

// CreateCustomerHandler persists a new customer
func CreateCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		customer := domain.Customer{
			Name:          req.Name,
			Address:       req.Address,
			PinCode:       req.PinCode,
			ContactNumber: req.ContactNumber,
		}
		if err := db.Create(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

// ListCustomersHandler returns customers under the pagination contract
func ListCustomersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := query.Bind(c)
		res, err := query.Paginate[domain.Customer](db.Model(&domain.Customer{}), p, customerFields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetCustomerHandler returns one customer with their bills preloaded
func GetCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var customer domain.Customer
		if err := db.Preload("Bills").First(&customer, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// UpdateCustomerHandler applies a partial field update after verifying
// the customer exists
func UpdateCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var customer domain.Customer
		if err := db.First(&customer, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		var req UpdateCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates := map[string]any{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Address != nil {
			updates["address"] = *req.Address
		}
		if req.PinCode != nil {
			updates["pin_code"] = *req.PinCode
		}
		if req.ContactNumber != nil {
			updates["contact_number"] = *req.ContactNumber
		}
		if len(updates) > 0 {
			if err := db.Model(&customer).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
				return
			}
		}
		c.JSON(http.StatusOK, customer)
	}
}

// DeleteCustomerHandler hard-deletes a customer after verifying existence
func DeleteCustomerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var customer domain.Customer
		if err := db.First(&customer, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if err := db.Delete(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
			return
		}
		logrus.WithFields(logrus.Fields{"customer_id": id}).Info("Customer deleted")
		c.JSON(http.StatusOK, customer)
	}
}

// CustomerBillsHandler returns one customer's bills under the pagination
// contract, most recent first
func CustomerBillsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var customer domain.Customer
		if err := db.First(&customer, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		p := query.Bind(c)
		base := db.Model(&domain.Bill{}).Where("customer_id = ?", id).Preload("BillItems")
		res, err := query.Paginate[domain.Bill](base, p, query.Fields{
			Searchable:  []string{"invoice_no"},
			Sortable:    billFields.Sortable,
			DefaultSort: "date desc",
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// TopCustomer is one row of the top-customers report
type TopCustomer struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	ContactNumber string  `json:"contactNumber"`
	BillCount     int64   `json:"billCount"`
	TotalSpent    float64 `json:"totalSpent"`
}

const topCustomersKey = "customers:top"

// TopCustomersHandler ranks customers by their summed bill amounts. The
// report is served from Redis when a fresh copy exists; bill writes
// invalidate it.
func TopCustomersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var cached []TopCustomer
		if found, err := utils.GetCache(ctx, rdb, topCustomersKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"data": cached})
			return
		}
		var rows []TopCustomer
		err := db.Model(&domain.Bill{}).
			Select("customers.id, customers.name, customers.contact_number, COUNT(bills.id) AS bill_count, SUM(bills.total_amount) AS total_spent").
			Joins("JOIN customers ON customers.id = bills.customer_id").
			Group("customers.id, customers.name, customers.contact_number").
			Order("total_spent DESC").
			Limit(10).
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top customers"})
			return
		}
		_ = utils.SetCache(ctx, rdb, topCustomersKey, rows, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"data": rows})
	}
}
