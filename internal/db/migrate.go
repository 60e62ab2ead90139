package db

import (
	"github.com/choukseaaryan/seed-store/internal/domain" // Domain models

	"github.com/sirupsen/logrus" // Structured logging

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Supplier{},
		&domain.ProductCategory{},
		&domain.Product{},
		&domain.Bill{},
		&domain.BillItem{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
