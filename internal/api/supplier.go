package api

import (
	"net/http" // HTTP status codes

	"github.com/choukseaaryan/seed-store/internal/domain" // Domain models
	"github.com/choukseaaryan/seed-store/internal/query"  // Pagination contract

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

var supplierFields = query.Fields{
	Searchable: []string{"name", "address", "contact_person", "contact_number"},
	Sortable: map[string]string{
		"name":          "name",
		"contactPerson": "contact_person",
		"contactNumber": "contact_number",
		"pinCode":       "pin_code",
		"createdAt":     "created_at",
	},
	DefaultSort: "name asc",
}

type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	PinCode       string `json:"pinCode"`
	ContactPerson string `json:"contactPerson"`
	ContactNumber string `json:"contactNumber" binding:"required"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	PinCode       *string `json:"pinCode"`
	ContactPerson *string `json:"contactPerson"`
	ContactNumber *string `json:"contactNumber"`
}

// CreateSupplierHandler persists a new supplier
func CreateSupplierHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSupplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		supplier := domain.Supplier{
			Name:          req.Name,
			Address:       req.Address,
			PinCode:       req.PinCode,
			ContactPerson: req.ContactPerson,
			ContactNumber: req.ContactNumber,
		}
		if err := db.Create(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
			return
		}
		c.JSON(http.StatusCreated, supplier)
	}
}

// ListSuppliersHandler returns suppliers under the pagination contract
func ListSuppliersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := query.Bind(c)
		res, err := query.Paginate[domain.Supplier](db.Model(&domain.Supplier{}), p, supplierFields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetSupplierHandler returns one supplier by id
func GetSupplierHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var supplier domain.Supplier
		if err := db.First(&supplier, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusOK, supplier)
	}
}

// UpdateSupplierHandler applies a partial field update
func UpdateSupplierHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var supplier domain.Supplier
		if err := db.First(&supplier, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		var req UpdateSupplierRequest
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
		if req.ContactPerson != nil {
			updates["contact_person"] = *req.ContactPerson
		}
		if req.ContactNumber != nil {
			updates["contact_number"] = *req.ContactNumber
		}
		if len(updates) > 0 {
			if err := db.Model(&supplier).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
				return
			}
		}
		c.JSON(http.StatusOK, supplier)
	}
}

// DeleteSupplierHandler hard-deletes a supplier
func DeleteSupplierHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var supplier domain.Supplier
		if err := db.First(&supplier, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		if err := db.Delete(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
			return
		}
		c.JSON(http.StatusOK, supplier)
	}
}
