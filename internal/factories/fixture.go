package factories

import (
	"time"

	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/store"
)

// Fixture collections reproduce the demo data the dashboard pages start
// from. Dates are placed relative to now so the stock and expiry alerts
// stay meaningful.

func FixtureOrders() []models.Order {
	return []models.Order{
		{ID: "ORD-001", TableNumber: "Table 5", CustomerName: "Alex Chen", Items: []string{"Kung Pao Chicken", "Steamed Rice", "Cola"}, Total: 68, Status: models.OrderStatusPreparing, Time: "10 minutes ago", Waiter: "Li Ming"},
		{ID: "ORD-002", TableNumber: "Table 12", CustomerName: "Sarah Wang", Items: []string{"Braised Pork Belly", "Greens", "Rice"}, Total: 85, Status: models.OrderStatusReady, Time: "15 minutes ago", Waiter: "Zhang Li"},
		{ID: "ORD-003", TableNumber: "Table 3", CustomerName: "David Liu", Items: []string{"Mapo Tofu", "Seaweed Egg Soup"}, Total: 45, Status: models.OrderStatusServed, Time: "20 minutes ago", Waiter: "Li Ming"},
		{ID: "ORD-004", TableNumber: "Table 8", CustomerName: "Emma Chen", Items: []string{"Sweet and Sour Pork", "Steamed Egg"}, Total: 72, Status: models.OrderStatusConfirmed, Time: "25 minutes ago", Waiter: "Zhang Li"},
		{ID: "ORD-005", TableNumber: "Table 15", CustomerName: "Kevin Zhao", Items: []string{"Fish-Fragrant Eggplant", "Steamed Rice"}, Total: 38, Status: models.OrderStatusPending, Time: "30 minutes ago", Waiter: "Li Ming"},
	}
}

func FixtureDishes() []models.Dish {
	return []models.Dish{
		{ID: "DISH-001", Name: "Kung Pao Chicken", Category: models.DishCategoryMainCourse, Price: 38, Description: "Classic Sichuan stir-fry of diced chicken and peanuts", Image: "/dishes/gongbao.jpg", Available: true, Rating: 4.8, OrderCount: 156},
		{ID: "DISH-002", Name: "Braised Pork Belly", Category: models.DishCategoryMainCourse, Price: 48, Description: "Slow-braised pork belly, melt-in-the-mouth", Image: "/dishes/hongshaorou.jpg", Available: true, Rating: 4.9, OrderCount: 98},
		{ID: "DISH-003", Name: "Mapo Tofu", Category: models.DishCategoryMainCourse, Price: 28, Description: "Silken tofu in a numbing chili bean sauce", Image: "/dishes/mapo.jpg", Available: true, Rating: 4.7, OrderCount: 203},
		{ID: "DISH-004", Name: "Seaweed Egg Soup", Category: models.DishCategorySoup, Price: 16, Description: "Light seaweed and egg-drop soup", Image: "/dishes/soup.jpg", Available: true, Rating: 4.5, OrderCount: 87},
		{ID: "DISH-005", Name: "Spring Rolls", Category: models.DishCategoryAppetizer, Price: 18, Description: "Crispy vegetable spring rolls with dipping sauce", Image: "/dishes/springrolls.jpg", Available: false, Rating: 4.6, OrderCount: 64},
		{ID: "DISH-006", Name: "Mango Pudding", Category: models.DishCategoryDessert, Price: 22, Description: "Chilled mango pudding with fresh fruit", Image: "/dishes/mango.jpg", Available: true, Rating: 4.4, OrderCount: 45},
	}
}

func FixtureInventory(now time.Time) []models.InventoryItem {
	day := func(offset int) time.Time {
		y, m, d := now.UTC().AddDate(0, 0, offset).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	chickenExpiry := day(5)
	beefExpiry := day(2)
	return []models.InventoryItem{
		{ID: "INV-001", Name: "Chicken Breast", Category: models.InventoryCategoryMeat, Quantity: 25, Unit: "kg", MinStock: 10, Supplier: "Fresh Meat Wholesale", Price: 18.5, ExpiryDate: &chickenExpiry, LastUpdated: day(0)},
		{ID: "INV-002", Name: "Potatoes", Category: models.InventoryCategoryVegetable, Quantity: 50, Unit: "kg", MinStock: 20, Supplier: "Farm Direct Produce", Price: 3.2, LastUpdated: day(-1)},
		{ID: "INV-003", Name: "Light Soy Sauce", Category: models.InventoryCategorySeasoning, Quantity: 8, Unit: "bottle", MinStock: 15, Supplier: "Seasoning Specialist", Price: 12.8, LastUpdated: day(-2)},
		{ID: "INV-004", Name: "Cola", Category: models.InventoryCategoryBeverage, Quantity: 120, Unit: "bottle", MinStock: 50, Supplier: "Beverage Wholesaler", Price: 2.5, LastUpdated: day(0)},
		{ID: "INV-005", Name: "Tableware Sets", Category: models.InventoryCategorySupplies, Quantity: 200, Unit: "set", MinStock: 100, Supplier: "Tableware Supply Co", Price: 8.0, LastUpdated: day(-5)},
		{ID: "INV-006", Name: "Beef", Category: models.InventoryCategoryMeat, Quantity: 5, Unit: "kg", MinStock: 15, Supplier: "Fresh Meat Wholesale", Price: 45.0, ExpiryDate: &beefExpiry, LastUpdated: day(-3)},
	}
}

func FixtureStaff() []models.StaffMember {
	hire := func(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }
	return []models.StaffMember{
		{ID: "STAFF-001", Name: "Li Ming", Position: models.StaffPositionWaiter, Phone: "13800138001", Email: "liming@restaurant.com", Status: models.StaffStatusActive, HireDate: hire(2023, 3, 15), Salary: 4500},
		{ID: "STAFF-002", Name: "Zhang Li", Position: models.StaffPositionWaiter, Phone: "13800138002", Email: "zhangli@restaurant.com", Status: models.StaffStatusActive, HireDate: hire(2023, 6, 1), Salary: 4500},
		{ID: "STAFF-003", Name: "Wang Wei", Position: models.StaffPositionChef, Phone: "13800138003", Email: "wangwei@restaurant.com", Status: models.StaffStatusActive, HireDate: hire(2022, 1, 10), Salary: 8000},
		{ID: "STAFF-004", Name: "Chen Jing", Position: models.StaffPositionManager, Phone: "13800138004", Email: "chenjing@restaurant.com", Status: models.StaffStatusOnLeave, HireDate: hire(2021, 9, 20), Salary: 10000},
		{ID: "STAFF-005", Name: "Zhao Lei", Position: models.StaffPositionCashier, Phone: "13800138005", Email: "zhaolei@restaurant.com", Status: models.StaffStatusInactive, HireDate: hire(2023, 11, 5), Salary: 4000},
	}
}

func FixtureTables() []models.Table {
	return []models.Table{
		{ID: "TABLE-001", Number: "Table 1", Seats: 4, Status: models.TableStatusOccupied, CurrentOrder: "ORD-001", EstimatedTime: "15 minutes", Waiter: "Li Ming"},
		{ID: "TABLE-002", Number: "Table 2", Seats: 2, Status: models.TableStatusAvailable},
		{ID: "TABLE-003", Number: "Table 3", Seats: 6, Status: models.TableStatusReserved, EstimatedTime: "1 hour"},
		{ID: "TABLE-004", Number: "Table 4", Seats: 4, Status: models.TableStatusCleaning},
		{ID: "TABLE-005", Number: "Table 5", Seats: 4, Status: models.TableStatusOccupied, CurrentOrder: "ORD-002", EstimatedTime: "30 minutes", Waiter: "Zhang Li"},
		{ID: "TABLE-006", Number: "Table 6", Seats: 8, Status: models.TableStatusAvailable},
		{ID: "TABLE-007", Number: "Table 7", Seats: 2, Status: models.TableStatusMaintenance},
		{ID: "TABLE-008", Number: "Table 8", Seats: 4, Status: models.TableStatusOccupied, CurrentOrder: "ORD-004", EstimatedTime: "45 minutes", Waiter: "Zhang Li"},
	}
}

// FixtureStore assembles a store seeded with all five fixture collections.
func FixtureStore(now time.Time) *store.Store {
	return &store.Store{
		Orders:    FixtureOrders(),
		Dishes:    FixtureDishes(),
		Inventory: FixtureInventory(now),
		Staff:     FixtureStaff(),
		Tables:    FixtureTables(),
	}
}
