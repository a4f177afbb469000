package bom

import (
	"testing"

	"honeyworks-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func honeyJarRecipe(honeyStock, jarStock float64) []models.BOMEntry {
	honeyCost := decimal.NewFromInt(10)
	return []models.BOMEntry{
		{
			ProductID:       1,
			MaterialID:      1,
			QuantityPerUnit: 0.5,
			Material: models.RawMaterial{
				ID:           1,
				Name:         "Mountain Honey",
				Unit:         models.UnitKg,
				CurrentStock: honeyStock,
				CostPerUnit:  &honeyCost,
			},
		},
		{
			ProductID:       1,
			MaterialID:      2,
			QuantityPerUnit: 1,
			Material: models.RawMaterial{
				ID:           2,
				Name:         "Glass Jar",
				Unit:         models.UnitPieces,
				CurrentStock: jarStock,
			},
		},
	}
}

func TestResolveSufficientStock(t *testing.T) {
	res := Resolve(1, honeyJarRecipe(50, 100), 40)

	require.Len(t, res.Requirements, 2)
	assert.True(t, res.HasRecipe())
	assert.True(t, res.AllSufficient)

	honey := res.Requirements[0]
	assert.Equal(t, uint(1), honey.MaterialID)
	assert.Equal(t, 20.0, honey.QuantityRequired)
	assert.Equal(t, 50.0, honey.Available)
	assert.True(t, honey.Sufficient)
	assert.True(t, honey.CostPerUnit.Equal(decimal.NewFromInt(10)))

	jars := res.Requirements[1]
	assert.Equal(t, 40.0, jars.QuantityRequired)
	assert.True(t, jars.Sufficient)
	assert.True(t, jars.CostPerUnit.Equal(decimal.Zero), "nil cost resolves to zero")
}

func TestResolveInsufficientStock(t *testing.T) {
	res := Resolve(1, honeyJarRecipe(50, 100), 120)

	assert.True(t, res.HasRecipe())
	assert.False(t, res.AllSufficient)

	honey := res.Requirements[0]
	assert.Equal(t, 60.0, honey.QuantityRequired)
	assert.False(t, honey.Sufficient)

	// Only one short line is enough to fail the whole resolution.
	jars := res.Requirements[1]
	assert.False(t, jars.Sufficient)
}

func TestResolveOneLineShort(t *testing.T) {
	res := Resolve(1, honeyJarRecipe(50, 10), 40)

	assert.False(t, res.AllSufficient)
	assert.True(t, res.Requirements[0].Sufficient)
	assert.False(t, res.Requirements[1].Sufficient)
}

func TestResolveEmptyRecipe(t *testing.T) {
	res := Resolve(7, nil, 10)

	assert.False(t, res.HasRecipe())
	assert.False(t, res.AllSufficient, "an empty recipe never reports sufficient")
	assert.Empty(t, res.Requirements)
}

func TestResolveIsIdempotent(t *testing.T) {
	entries := honeyJarRecipe(50, 100)

	first := Resolve(1, entries, 40)
	second := Resolve(1, entries, 40)

	assert.Equal(t, first, second)
}
