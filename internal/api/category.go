package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"github.com/choukseaaryan/seed-store/internal/domain" // Domain models
	"github.com/choukseaaryan/seed-store/internal/query"  // Pagination contract

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

var categoryFields = query.Fields{
	Searchable: []string{"name"},
	Sortable: map[string]string{
		"name":      "name",
		"createdAt": "created_at",
	},
	DefaultSort: "name asc",
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// categoryNameTaken reports whether another category already carries the
// name. Uniqueness lives here, not in a database constraint.
func categoryNameTaken(db *gorm.DB, name string, excludeID uint) (bool, error) {
	var existing domain.ProductCategory
	q := db.Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// CreateCategoryHandler persists a new product category, rejecting
// duplicate names with 409
func CreateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		taken, err := categoryNameTaken(db, req.Name, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category name"})
			return
		}
		if taken {
			c.JSON(http.StatusConflict, gin.H{"error": "Category name already exists"})
			return
		}
		category := domain.ProductCategory{Name: req.Name}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// ListCategoriesHandler returns categories under the pagination contract
func ListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := query.Bind(c)
		base := db.Model(&domain.ProductCategory{}).Preload("Products")
		res, err := query.Paginate[domain.ProductCategory](base, p, categoryFields)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// GetCategoryHandler returns one category with its products preloaded
func GetCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var category domain.ProductCategory
		if err := db.Preload("Products").First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// UpdateCategoryHandler renames a category, keeping names unique
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var category domain.ProductCategory
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product category not found"})
			return
		}
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		taken, err := categoryNameTaken(db, req.Name, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category name"})
			return
		}
		if taken {
			c.JSON(http.StatusConflict, gin.H{"error": "Category name already exists"})
			return
		}
		if err := db.Model(&category).Update("name", req.Name).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategoryHandler hard-deletes a category
func DeleteCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		var category domain.ProductCategory
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product category not found"})
			return
		}
		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
