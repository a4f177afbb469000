package models

// MaterialUnit - raw material unit of measure
type MaterialUnit string

const (
	UnitKg     MaterialUnit = "kg"
	UnitPieces MaterialUnit = "pieces"
	UnitSacks  MaterialUnit = "sacks"
	UnitLiters MaterialUnit = "liters"
	UnitGrams  MaterialUnit = "grams"
)

func (u MaterialUnit) Valid() bool {
	switch u {
	case UnitKg, UnitPieces, UnitSacks, UnitLiters, UnitGrams:
		return true
	}
	return false
}

// ProductSize - packaging size of a finished product
type ProductSize string

const (
	Size100g ProductSize = "100g"
	Size250g ProductSize = "250g"
	Size500g ProductSize = "500g"
	Size1kg  ProductSize = "1kg"
	Size2kg  ProductSize = "2kg"
)

func (s ProductSize) Valid() bool {
	switch s {
	case Size100g, Size250g, Size500g, Size1kg, Size2kg:
		return true
	}
	return false
}
