// Package store holds the five in-memory entity collections and the pure
// copy-on-write mutation handlers that operate on them. Handlers never
// mutate their input: every call builds and returns a fresh slice, the way
// the dashboard pages replace component state wholesale. A mutation that
// targets an id absent from its collection is a silent no-op, not an error.
package store

import (
	"fmt"
	"time"

	"github.com/dineflow/backoffice/internal/models"
)

const (
	orderIDPrefix     = "ORD"
	dishIDPrefix      = "DISH"
	inventoryIDPrefix = "INV"
	staffIDPrefix     = "STAFF"
	tableIDPrefix     = "TABLE"
)

// nextID derives a fresh id from the current collection length. Deleting a
// record and creating another can therefore collide with a surviving id;
// that is the documented behaviour of the id scheme, not an accident.
func nextID(prefix string, length int) string {
	return fmt.Sprintf("%s-%03d", prefix, length+1)
}

// dateOf truncates an instant to its UTC calendar date, the resolution at
// which last-updated stamps are kept.
func dateOf(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Store is the composition-root container owning one collection per entity
// kind. It carries no behaviour of its own; callers apply the package's
// mutation handlers and assign the returned collections back.
type Store struct {
	Orders    []models.Order
	Dishes    []models.Dish
	Inventory []models.InventoryItem
	Staff     []models.StaffMember
	Tables    []models.Table
}

func New() *Store {
	return &Store{}
}
