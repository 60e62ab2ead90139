package main

import (
	"flag" // Command line flags

	"github.com/choukseaaryan/seed-store/internal/config" // Custom import path (Config)
	"github.com/choukseaaryan/seed-store/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for migration and seeding
func main() {
	seed := flag.Bool("seed", false, "load the sample dataset after migrating")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration

	conn, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	db.Migrate(conn)

	// The default admin is always ensured; sample data only on request
	if err := db.SeedAdmin(conn); err != nil {
		logrus.Fatalf("admin seed failed: %v", err)
	}
	if *seed {
		if err := db.Seed(conn); err != nil {
			logrus.Fatalf("seed failed: %v", err)
		}
	}
}
