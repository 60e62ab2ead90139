package api

import (
	"github.com/choukseaaryan/seed-store/internal/config"     // Application configuration
	"github.com/choukseaaryan/seed-store/internal/middleware" // Auth guard

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// RegisterRoutes wires every resource onto the router. PATCH is the
// canonical partial-update verb; PUT aliases the same handler because the
// stock client's generic CRUD helper issues PUT.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// Auth routes; only /auth/me sits behind the session guard
	auth := r.Group("/auth")
	auth.POST("/register", RegisterHandler(db))
	auth.POST("/login", LoginHandler(db, cfg.JWTSecret, cfg.IsProd))
	auth.GET("/me", middleware.CookieAuth(cfg.JWTSecret), MeHandler(db))
	auth.POST("/logout", LogoutHandler(cfg.IsProd))

	// Customer routes
	customers := r.Group("/customers")
	customers.POST("", CreateCustomerHandler(db))
	customers.GET("", ListCustomersHandler(db))
	customers.GET("/top", TopCustomersHandler(db, rdb))
	customers.GET("/:id", GetCustomerHandler(db))
	customers.GET("/:id/bills", CustomerBillsHandler(db))
	customers.PATCH("/:id", UpdateCustomerHandler(db))
	customers.PUT("/:id", UpdateCustomerHandler(db))
	customers.DELETE("/:id", DeleteCustomerHandler(db))

	// Supplier routes
	suppliers := r.Group("/suppliers")
	suppliers.POST("", CreateSupplierHandler(db))
	suppliers.GET("", ListSuppliersHandler(db))
	suppliers.GET("/:id", GetSupplierHandler(db))
	suppliers.PATCH("/:id", UpdateSupplierHandler(db))
	suppliers.PUT("/:id", UpdateSupplierHandler(db))
	suppliers.DELETE("/:id", DeleteSupplierHandler(db))

	// Product category routes
	categories := r.Group("/product-categories")
	categories.POST("", CreateCategoryHandler(db))
	categories.GET("", ListCategoriesHandler(db))
	categories.GET("/:id", GetCategoryHandler(db))
	categories.PATCH("/:id", UpdateCategoryHandler(db))
	categories.PUT("/:id", UpdateCategoryHandler(db))
	categories.DELETE("/:id", DeleteCategoryHandler(db))

	// Product routes
	products := r.Group("/products")
	products.POST("", CreateProductHandler(db, rdb))
	products.GET("", ListProductsHandler(db))
	products.GET("/low-stock", LowStockHandler(db, rdb))
	products.GET("/category/:id", ProductsByCategoryHandler(db))
	products.GET("/:id", GetProductHandler(db))
	products.PATCH("/:id", UpdateProductHandler(db, rdb))
	products.PUT("/:id", UpdateProductHandler(db, rdb))
	products.PATCH("/:id/stock", UpdateStockHandler(db, rdb))
	products.DELETE("/:id", DeleteProductHandler(db, rdb))

	// Bill routes (aggregate create, destructive item replace on update)
	bills := r.Group("/bills")
	bills.POST("", CreateBillHandler(db, rdb))
	bills.GET("", ListBillsHandler(db))
	bills.GET("/:id", GetBillHandler(db))
	bills.PATCH("/:id", UpdateBillHandler(db, rdb))
	bills.PUT("/:id", UpdateBillHandler(db, rdb))
	bills.DELETE("/:id", DeleteBillHandler(db, rdb))

	// Bill item routes
	billItems := r.Group("/bill-items")
	billItems.POST("", CreateBillItemHandler(db))
	billItems.GET("", ListBillItemsHandler(db))
	billItems.GET("/:id", GetBillItemHandler(db))
	billItems.PATCH("/:id", UpdateBillItemHandler(db))
	billItems.PUT("/:id", UpdateBillItemHandler(db))
	billItems.DELETE("/:id", DeleteBillItemHandler(db))
}
