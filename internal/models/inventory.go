package models

import (
	"fmt"
	"time"
)

type InventoryCategory string

const (
	InventoryCategoryMeat      InventoryCategory = "meat"
	InventoryCategoryVegetable InventoryCategory = "vegetable"
	InventoryCategorySeasoning InventoryCategory = "seasoning"
	InventoryCategoryBeverage  InventoryCategory = "beverage"
	InventoryCategorySupplies  InventoryCategory = "supplies"
)

var InventoryCategories = []InventoryCategory{
	InventoryCategoryMeat,
	InventoryCategoryVegetable,
	InventoryCategorySeasoning,
	InventoryCategoryBeverage,
	InventoryCategorySupplies,
}

func ParseInventoryCategory(s string) (InventoryCategory, error) {
	for _, c := range InventoryCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown inventory category %q", s)
}

// StockStatus classifies an item's quantity against its minimum stock
// threshold. It is derived on every read, never stored on the record.
type StockStatus string

const (
	StockStatusCritical StockStatus = "critical"
	StockStatusLow      StockStatus = "low"
	StockStatusGood     StockStatus = "good"
)

type InventoryItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    InventoryCategory `json:"category"`
	Quantity    float64           `json:"quantity"`
	Unit        string            `json:"unit"`
	MinStock    float64           `json:"min_stock"`
	Supplier    string            `json:"supplier"`
	Price       float64           `json:"price"`
	ExpiryDate  *time.Time        `json:"expiry_date,omitempty"`
	LastUpdated time.Time         `json:"last_updated"`
}

// ParseDate parses a calendar date in ISO form (2024-01-15). Malformed
// dates are rejected here so the derivation layer never sees one.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}
