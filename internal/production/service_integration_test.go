package production

import (
	"os"
	"strings"
	"testing"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/models"

	"github.com/shopspring/decimal"
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

func seedHoneyJars(t *testing.T, db *gorm.DB, honeyStock, jarStock float64) (models.Product, models.RawMaterial, models.RawMaterial) {
	t.Helper()

	honeyCost := decimal.NewFromInt(10)
	jarCost := decimal.RequireFromString("0.50")
	honey := models.RawMaterial{Name: "Mountain Honey", NameAr: "عسل جبلي", Unit: models.UnitKg, CurrentStock: honeyStock, CostPerUnit: &honeyCost}
	jars := models.RawMaterial{Name: "Glass Jar", NameAr: "برطمان زجاجي", Unit: models.UnitPieces, CurrentStock: jarStock, CostPerUnit: &jarCost}
	require.NoError(t, db.Create(&honey).Error)
	require.NoError(t, db.Create(&jars).Error)

	product := models.Product{Name: "Honey Jar 500g", NameAr: "برطمان عسل ٥٠٠ جم", Size: models.Size500g}
	require.NoError(t, db.Create(&product).Error)

	require.NoError(t, db.Create(&models.BOMEntry{ProductID: product.ID, MaterialID: honey.ID, QuantityPerUnit: 0.5}).Error)
	require.NoError(t, db.Create(&models.BOMEntry{ProductID: product.ID, MaterialID: jars.ID, QuantityPerUnit: 1}).Error)

	return product, honey, jars
}

func TestRecordConsumesMaterialsAndCreditsProduct(t *testing.T) {
	db := setupTestDB(t)
	product, honey, jars := seedHoneyJars(t, db, 50, 100)

	record, err := NewService(db).Record(RecordInput{ProductID: product.ID, Quantity: 40})
	require.NoError(t, err)
	require.NotZero(t, record.ID)
	require.Len(t, record.Materials, 2)

	var gotHoney, gotJars models.RawMaterial
	require.NoError(t, db.First(&gotHoney, honey.ID).Error)
	require.NoError(t, db.First(&gotJars, jars.ID).Error)
	assert.Equal(t, 30.0, gotHoney.CurrentStock)
	assert.Equal(t, 60.0, gotJars.CurrentStock)

	var gotProduct models.Product
	require.NoError(t, db.First(&gotProduct, product.ID).Error)
	assert.Equal(t, 40.0, gotProduct.CurrentStock)

	// 20 kg honey at 10.00 plus 40 jars at 0.50
	require.NotNil(t, record.TotalCost)
	assert.True(t, record.TotalCost.Equal(decimal.NewFromInt(220)))

	var movements []models.StockMovement
	require.NoError(t, db.Where("reference_type = ? AND reference_id = ?", models.MovementRefProduction, record.ID).Find(&movements).Error)
	assert.Len(t, movements, 3, "two material outs and one product in")
}

func TestRecordInsufficientStockLeavesNothingBehind(t *testing.T) {
	db := setupTestDB(t)
	product, honey, _ := seedHoneyJars(t, db, 50, 100)

	_, err := NewService(db).Record(RecordInput{ProductID: product.ID, Quantity: 120})
	require.ErrorIs(t, err, apperr.ErrInsufficientStock)

	var gotHoney models.RawMaterial
	require.NoError(t, db.First(&gotHoney, honey.ID).Error)
	assert.Equal(t, 50.0, gotHoney.CurrentStock)

	var records int64
	require.NoError(t, db.Model(&models.ProductionRecord{}).Count(&records).Error)
	assert.Zero(t, records)

	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).Count(&movements).Error)
	assert.Zero(t, movements)
}

func TestRecordWithoutRecipe(t *testing.T) {
	db := setupTestDB(t)

	product := models.Product{Name: "Dried Thyme 100g", NameAr: "زعتر مجفف ١٠٠ جم", Size: models.Size100g}
	require.NoError(t, db.Create(&product).Error)

	_, err := NewService(db).Record(RecordInput{ProductID: product.ID, Quantity: 10})
	assert.ErrorIs(t, err, apperr.ErrNoRecipe)
}

func TestRecordUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewService(db).Record(RecordInput{ProductID: 9999, Quantity: 10})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRecordRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	product, _, _ := seedHoneyJars(t, db, 50, 100)

	for _, qty := range []float64{0, -5} {
		_, err := NewService(db).Record(RecordInput{ProductID: product.ID, Quantity: qty})
		assert.ErrorIs(t, err, apperr.ErrValidation, "quantity %g", qty)
	}
}
