package database

import (
	"log"

	"honeyworks-backend/internal/config"
	"honeyworks-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	Migrate(DB)

	log.Println("Database connection established, migration complete.")
}

// Migrate runs AutoMigrate for every model; also used by the integration tests
// against their own database.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Customer{},
		&models.RawMaterial{},
		&models.Product{},
		&models.BOMEntry{},
		&models.ProductionRecord{},
		&models.ProductionMaterial{},
		&models.SaleRecord{},
		&models.CustomerTransaction{},
		&models.SupplierTransaction{},
		&models.StockMovement{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
