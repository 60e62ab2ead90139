package db

import (
	"errors" // Error matching
	"time"   // Bill dates

	"github.com/choukseaaryan/seed-store/internal/domain" // Domain models

	"github.com/sirupsen/logrus"   // Structured logging
	"golang.org/x/crypto/bcrypt"   // Password hashing
	"gorm.io/gorm"                 // GORM ORM library
)

// Default admin credentials created by SeedAdmin
const (
	adminEmail    = "admin@seedstore.com"
	adminPassword = "admin123"
)

// SeedAdmin creates the default admin user if it doesn't exist
func SeedAdmin(db *gorm.DB) error {
	var existing domain.User
	err := db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		logrus.Info("Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		Email:    adminEmail,
		Password: string(hash),
		Name:     "Admin User",
		Role:     domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.Info("Admin user created successfully")
	return nil
}

// Seed loads the sample dataset: two categories, two products, a customer,
// a supplier and one paid bill with two items.
func Seed(db *gorm.DB) error {
	seeds := domain.ProductCategory{Name: "Seeds"}
	if err := db.Create(&seeds).Error; err != nil {
		return err
	}
	fertilizers := domain.ProductCategory{Name: "Fertilizers"}
	if err := db.Create(&fertilizers).Error; err != nil {
		return err
	}

	wheat := domain.Product{
		CategoryID:    seeds.ID,
		CompanyName:   "AgroCorp",
		ItemCode:      "WHT001",
		ItemName:      "Wheat Seeds",
		TechnicalName: "Triticum aestivum",
		StockQty:      1000,
	}
	if err := db.Create(&wheat).Error; err != nil {
		return err
	}
	urea := domain.Product{
		CategoryID:    fertilizers.ID,
		CompanyName:   "FertiBest",
		ItemCode:      "FRT001",
		ItemName:      "Urea",
		TechnicalName: "Carbamide",
		StockQty:      500,
	}
	if err := db.Create(&urea).Error; err != nil {
		return err
	}

	customer := domain.Customer{
		Name:          "John Doe",
		Address:       "123 Main St",
		PinCode:       "123456",
		ContactNumber: "9876543210",
	}
	if err := db.Create(&customer).Error; err != nil {
		return err
	}
	supplier := domain.Supplier{
		Name:          "Supplier One",
		Address:       "456 Supplier Rd",
		PinCode:       "654321",
		ContactPerson: "Jane Smith",
		ContactNumber: "9123456780",
	}
	if err := db.Create(&supplier).Error; err != nil {
		return err
	}

	bill := domain.Bill{
		InvoiceNo:     "INV-1001",
		Date:          time.Now(),
		CustomerID:    &customer.ID,
		PaymentMethod: domain.PaymentCash,
		SaleStatus:    domain.SalePaid,
		SyncStatus:    domain.SyncPending,
		TotalAmount:   1200.00,
		BillItems: []domain.BillItem{
			{ProductID: wheat.ID, Quantity: 10, Price: 100.00, Total: 1000.00},
			{ProductID: urea.ID, Quantity: 2, Price: 100.00, Total: 200.00},
		},
	}
	if err := db.Create(&bill).Error; err != nil {
		return err
	}
	logrus.Info("Sample data seeded.")
	return nil
}
