package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialUnitValid(t *testing.T) {
	for _, u := range []MaterialUnit{UnitKg, UnitPieces, UnitSacks, UnitLiters, UnitGrams} {
		assert.True(t, u.Valid(), "unit %q", u)
	}
	for _, u := range []MaterialUnit{"", "tons", "KG", "piece"} {
		assert.False(t, u.Valid(), "unit %q", u)
	}
}

func TestProductSizeValid(t *testing.T) {
	for _, s := range []ProductSize{Size100g, Size250g, Size500g, Size1kg, Size2kg} {
		assert.True(t, s.Valid(), "size %q", s)
	}
	for _, s := range []ProductSize{"", "5kg", "100", "1KG"} {
		assert.False(t, s.Valid(), "size %q", s)
	}
}
