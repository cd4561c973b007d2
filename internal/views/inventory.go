package views

import (
	"math"
	"time"

	"github.com/dineflow/backoffice/internal/models"
)

// FilterInventory searches item name and supplier, case-insensitive, and
// filters by category with the "all" sentinel.
func FilterInventory(items []models.InventoryItem, term, category string) []models.InventoryItem {
	out := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if !matchesTerm(term, item.Name, item.Supplier) {
			continue
		}
		if category != FilterAll && category != string(item.Category) {
			continue
		}
		out = append(out, item)
	}
	return out
}

type InventoryCounts struct {
	All       int `json:"all"`
	Meat      int `json:"meat"`
	Vegetable int `json:"vegetable"`
	Seasoning int `json:"seasoning"`
	Beverage  int `json:"beverage"`
	Supplies  int `json:"supplies"`
}

func CountInventory(items []models.InventoryItem) InventoryCounts {
	counts := InventoryCounts{All: len(items)}
	for _, item := range items {
		switch item.Category {
		case models.InventoryCategoryMeat:
			counts.Meat++
		case models.InventoryCategoryVegetable:
			counts.Vegetable++
		case models.InventoryCategorySeasoning:
			counts.Seasoning++
		case models.InventoryCategoryBeverage:
			counts.Beverage++
		case models.InventoryCategorySupplies:
			counts.Supplies++
		}
	}
	return counts
}

// StockStatusOf classifies quantity against the minimum stock threshold.
// Both boundaries are inclusive and critical wins when both hold:
// quantity <= minStock*0.5 is critical, else quantity <= minStock is low.
func StockStatusOf(item models.InventoryItem) models.StockStatus {
	switch {
	case item.Quantity <= item.MinStock*0.5:
		return models.StockStatusCritical
	case item.Quantity <= item.MinStock:
		return models.StockStatusLow
	default:
		return models.StockStatusGood
	}
}

// DaysUntilExpiry returns the ceiling whole-day difference between the
// item's expiry date and now. The second result is false when the item has
// no expiry date.
func DaysUntilExpiry(item models.InventoryItem, now time.Time) (int, bool) {
	if item.ExpiryDate == nil {
		return 0, false
	}
	diff := item.ExpiryDate.Sub(now)
	return int(math.Ceil(diff.Hours() / 24)), true
}

// IsExpiringSoon reports whether the item expires within the next three
// days, today included. Items without an expiry date never flag.
func IsExpiringSoon(item models.InventoryItem, now time.Time) bool {
	days, ok := DaysUntilExpiry(item, now)
	return ok && days >= 0 && days <= 3
}

// InventoryStats are the headline numbers above the inventory table. Low
// stock counts every item at or below its threshold, critical items
// included.
type InventoryStats struct {
	Total        int `json:"total"`
	LowStock     int `json:"low_stock"`
	Critical     int `json:"critical"`
	ExpiringSoon int `json:"expiring_soon"`
}

func ComputeInventoryStats(items []models.InventoryItem, now time.Time) InventoryStats {
	stats := InventoryStats{Total: len(items)}
	for _, item := range items {
		if item.Quantity <= item.MinStock {
			stats.LowStock++
		}
		if item.Quantity <= item.MinStock*0.5 {
			stats.Critical++
		}
		if IsExpiringSoon(item, now) {
			stats.ExpiringSoon++
		}
	}
	return stats
}
