package stock

import (
	"os"
	"strings"
	"testing"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires postgres)")
	}
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=honeyworks_test port=5432 sslmode=disable"
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.Migrate(db)

	for _, table := range []string{
		"stock_movements", "customer_transactions", "supplier_transactions",
		"production_materials", "production_records", "sale_records",
		"bom_entries", "raw_materials", "products", "customers", "suppliers",
	} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
	return db
}

func TestAdjustMaterialStockGuard(t *testing.T) {
	db := setupTestDB(t)

	material := models.RawMaterial{Name: "Mountain Honey", NameAr: "عسل جبلي", Unit: models.UnitKg, CurrentStock: 10}
	require.NoError(t, db.Create(&material).Error)

	ledger := NewLedger(db)
	require.NoError(t, ledger.AdjustMaterialStock(material.ID, Adjustment{Delta: -4, ReferenceType: models.MovementRefProduction}))

	var got models.RawMaterial
	require.NoError(t, db.First(&got, material.ID).Error)
	assert.Equal(t, 6.0, got.CurrentStock)

	// 6 left, consuming 7 must fail and leave the stock untouched.
	err := ledger.AdjustMaterialStock(material.ID, Adjustment{Delta: -7, ReferenceType: models.MovementRefProduction})
	require.ErrorIs(t, err, apperr.ErrInsufficientStock)
	require.NoError(t, db.First(&got, material.ID).Error)
	assert.Equal(t, 6.0, got.CurrentStock)

	// Draining to exactly zero is allowed.
	require.NoError(t, ledger.AdjustMaterialStock(material.ID, Adjustment{Delta: -6, ReferenceType: models.MovementRefCorrection}))
	require.NoError(t, db.First(&got, material.ID).Error)
	assert.Equal(t, 0.0, got.CurrentStock)
}

func TestAdjustMaterialStockUnknownID(t *testing.T) {
	db := setupTestDB(t)

	err := NewLedger(db).AdjustMaterialStock(9999, Adjustment{Delta: 5, ReferenceType: models.MovementRefReceipt})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAdjustProductStockGuard(t *testing.T) {
	db := setupTestDB(t)

	product := models.Product{Name: "Honey Jar 500g", NameAr: "برطمان عسل ٥٠٠ جم", Size: models.Size500g, CurrentStock: 3}
	require.NoError(t, db.Create(&product).Error)

	ledger := NewLedger(db)
	err := ledger.AdjustProductStock(product.ID, Adjustment{Delta: -5, ReferenceType: models.MovementRefSale})
	require.ErrorIs(t, err, apperr.ErrInsufficientStock)

	require.NoError(t, ledger.AdjustProductStock(product.ID, Adjustment{Delta: 7, ReferenceType: models.MovementRefProduction}))

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, 10.0, got.CurrentStock)
}

func TestMovementTrail(t *testing.T) {
	db := setupTestDB(t)

	material := models.RawMaterial{Name: "Glass Jar", NameAr: "برطمان زجاجي", Unit: models.UnitPieces, CurrentStock: 100}
	require.NoError(t, db.Create(&material).Error)

	ledger := NewLedger(db)
	refID := uint(42)
	require.NoError(t, ledger.AdjustMaterialStock(material.ID, Adjustment{Delta: -30, ReferenceType: models.MovementRefProduction, ReferenceID: &refID}))
	require.NoError(t, ledger.AdjustMaterialStock(material.ID, Adjustment{Delta: 50, ReferenceType: models.MovementRefReceipt}))

	var movements []models.StockMovement
	require.NoError(t, db.Order("id asc").Find(&movements).Error)
	require.Len(t, movements, 2)

	out := movements[0]
	assert.Equal(t, models.MovementOut, out.MovementType)
	assert.Equal(t, 30.0, out.Quantity, "movement quantity is stored as magnitude")
	require.NotNil(t, out.MaterialID)
	assert.Equal(t, material.ID, *out.MaterialID)
	assert.Nil(t, out.ProductID)
	require.NotNil(t, out.ReferenceID)
	assert.Equal(t, refID, *out.ReferenceID)

	in := movements[1]
	assert.Equal(t, models.MovementIn, in.MovementType)
	assert.Equal(t, 50.0, in.Quantity)
}

func TestZeroDeltaWritesNoMovement(t *testing.T) {
	db := setupTestDB(t)

	material := models.RawMaterial{Name: "Thyme", NameAr: "زعتر", Unit: models.UnitKg, CurrentStock: 5}
	require.NoError(t, db.Create(&material).Error)

	require.NoError(t, NewLedger(db).AdjustMaterialStock(material.ID, Adjustment{Delta: 0, ReferenceType: models.MovementRefCorrection}))

	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).Count(&movements).Error)
	assert.Zero(t, movements)
}
