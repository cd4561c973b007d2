package factories

import (
	"fmt"
	"testing"
	"time"

	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/views"
)

var fixtureNow = time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC)

func TestFixtureStoreSizes(t *testing.T) {
	st := FixtureStore(fixtureNow)
	if got := len(st.Orders); got != 5 {
		t.Errorf("orders = %d, want 5", got)
	}
	if got := len(st.Dishes); got != 6 {
		t.Errorf("dishes = %d, want 6", got)
	}
	if got := len(st.Inventory); got != 6 {
		t.Errorf("inventory = %d, want 6", got)
	}
	if got := len(st.Staff); got != 5 {
		t.Errorf("staff = %d, want 5", got)
	}
	if got := len(st.Tables); got != 8 {
		t.Errorf("tables = %d, want 8", got)
	}
}

// Fixture ids must be dense sequences starting at 1, so the length-derived
// id scheme continues the numbering for records created afterwards.
func TestFixtureIDSequences(t *testing.T) {
	st := FixtureStore(fixtureNow)
	for i, o := range st.Orders {
		if want := fmt.Sprintf("ORD-%03d", i+1); o.ID != want {
			t.Errorf("order[%d].ID = %s, want %s", i, o.ID, want)
		}
	}
	for i, d := range st.Dishes {
		if want := fmt.Sprintf("DISH-%03d", i+1); d.ID != want {
			t.Errorf("dish[%d].ID = %s, want %s", i, d.ID, want)
		}
	}
	for i, item := range st.Inventory {
		if want := fmt.Sprintf("INV-%03d", i+1); item.ID != want {
			t.Errorf("inventory[%d].ID = %s, want %s", i, item.ID, want)
		}
	}
	for i, m := range st.Staff {
		if want := fmt.Sprintf("STAFF-%03d", i+1); m.ID != want {
			t.Errorf("staff[%d].ID = %s, want %s", i, m.ID, want)
		}
	}
	for i, tb := range st.Tables {
		if want := fmt.Sprintf("TABLE-%03d", i+1); tb.ID != want {
			t.Errorf("table[%d].ID = %s, want %s", i, tb.ID, want)
		}
	}
}

// The fixtures are built to light up the inventory alerts: one critical
// item, one low item, and one item expiring within the window.
func TestFixtureInventoryAlerts(t *testing.T) {
	items := FixtureInventory(fixtureNow)

	byID := make(map[string]models.InventoryItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	if got := views.StockStatusOf(byID["INV-006"]); got != models.StockStatusCritical {
		t.Errorf("beef stock status = %v, want critical", got)
	}
	if got := views.StockStatusOf(byID["INV-003"]); got != models.StockStatusLow {
		t.Errorf("soy sauce stock status = %v, want low", got)
	}
	if got := views.StockStatusOf(byID["INV-001"]); got != models.StockStatusGood {
		t.Errorf("chicken stock status = %v, want good", got)
	}
	if !views.IsExpiringSoon(byID["INV-006"], fixtureNow) {
		t.Error("beef expires in two days and should flag")
	}
	if views.IsExpiringSoon(byID["INV-001"], fixtureNow) {
		t.Error("chicken expires in five days and should not flag")
	}
	if views.IsExpiringSoon(byID["INV-002"], fixtureNow) {
		t.Error("potatoes have no expiry date and must never flag")
	}
}

func TestRandomStoreRespectsConfig(t *testing.T) {
	cfg := &models.Config{
		Seed:             42,
		InitialOrders:    12,
		InitialDishes:    9,
		InitialInventory: 7,
		InitialStaff:     4,
		InitialTables:    10,
	}
	st := RandomStore(cfg, fixtureNow)

	if len(st.Orders) != 12 || len(st.Dishes) != 9 || len(st.Inventory) != 7 ||
		len(st.Staff) != 4 || len(st.Tables) != 10 {
		t.Fatalf("sizes = %d/%d/%d/%d/%d", len(st.Orders), len(st.Dishes),
			len(st.Inventory), len(st.Staff), len(st.Tables))
	}
	for i, o := range st.Orders {
		if want := fmt.Sprintf("ORD-%03d", i+1); o.ID != want {
			t.Errorf("order[%d].ID = %s, want %s", i, o.ID, want)
		}
		if _, err := models.ParseOrderStatus(string(o.Status)); err != nil {
			t.Errorf("order %s has invalid status %q", o.ID, o.Status)
		}
		if len(o.Items) == 0 {
			t.Errorf("order %s has no items", o.ID)
		}
	}
	for _, d := range st.Dishes {
		if _, err := models.ParseDishCategory(string(d.Category)); err != nil {
			t.Errorf("dish %s has invalid category %q", d.ID, d.Category)
		}
	}
	for _, item := range st.Inventory {
		if _, err := models.ParseInventoryCategory(string(item.Category)); err != nil {
			t.Errorf("item %s has invalid category %q", item.ID, item.Category)
		}
		if item.Unit == "" {
			t.Errorf("item %s has no unit", item.ID)
		}
	}
}

func TestSeedStoreDispatch(t *testing.T) {
	fixture := SeedStore(&models.Config{SeedMode: "fixture"}, fixtureNow)
	if len(fixture.Orders) != 5 {
		t.Errorf("fixture seed produced %d orders, want 5", len(fixture.Orders))
	}

	random := SeedStore(&models.Config{SeedMode: "random", Seed: 1, InitialOrders: 3, InitialDishes: 2, InitialInventory: 2, InitialStaff: 2, InitialTables: 2}, fixtureNow)
	if len(random.Orders) != 3 {
		t.Errorf("random seed produced %d orders, want 3", len(random.Orders))
	}
}
