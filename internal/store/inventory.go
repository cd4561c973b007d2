package store

import (
	"time"

	"github.com/dineflow/backoffice/internal/models"
)

// InventoryInput carries the form-editable fields of an inventory item.
// The last-updated stamp is system-assigned.
type InventoryInput struct {
	Name       string
	Category   models.InventoryCategory
	Quantity   float64
	Unit       string
	MinStock   float64
	Supplier   string
	Price      float64
	ExpiryDate *time.Time
}

func AddInventoryItem(items []models.InventoryItem, in InventoryInput, now time.Time) []models.InventoryItem {
	newItem := models.InventoryItem{
		ID:          nextID(inventoryIDPrefix, len(items)),
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		MinStock:    in.MinStock,
		Supplier:    in.Supplier,
		Price:       in.Price,
		ExpiryDate:  in.ExpiryDate,
		LastUpdated: dateOf(now),
	}
	out := make([]models.InventoryItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, newItem)
}

// UpdateInventoryItem replaces the editable fields of the matching item and
// refreshes its last-updated stamp to the current date.
func UpdateInventoryItem(items []models.InventoryItem, id string, in InventoryInput, now time.Time) []models.InventoryItem {
	out := make([]models.InventoryItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Name = in.Name
			out[i].Category = in.Category
			out[i].Quantity = in.Quantity
			out[i].Unit = in.Unit
			out[i].MinStock = in.MinStock
			out[i].Supplier = in.Supplier
			out[i].Price = in.Price
			out[i].ExpiryDate = in.ExpiryDate
			out[i].LastUpdated = dateOf(now)
		}
	}
	return out
}

func DeleteInventoryItem(items []models.InventoryItem, id string) []models.InventoryItem {
	out := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// AdjustQuantity shifts the matching item's quantity by delta and refreshes
// its last-updated stamp. The handler applies any delta; the presentation
// layer only offers -10 when the current quantity exceeds 10, and no floor
// of zero is enforced here.
func AdjustQuantity(items []models.InventoryItem, id string, delta float64, now time.Time) []models.InventoryItem {
	out := make([]models.InventoryItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity += delta
			out[i].LastUpdated = dateOf(now)
		}
	}
	return out
}
