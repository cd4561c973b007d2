package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/store"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

var dishNamesByCategory = map[models.DishCategory][]string{
	models.DishCategoryAppetizer:  {"Spring Rolls", "Cucumber Salad", "Scallion Pancake", "Edamame"},
	models.DishCategorySoup:       {"Hot and Sour Soup", "Seaweed Egg Soup", "Wonton Soup", "Corn Chowder"},
	models.DishCategoryMainCourse: {"Kung Pao Chicken", "Braised Pork Belly", "Mapo Tofu", "Sweet and Sour Pork", "Fish-Fragrant Eggplant"},
	models.DishCategoryDessert:    {"Mango Pudding", "Sesame Balls", "Red Bean Cake", "Egg Tart"},
	models.DishCategoryBeverage:   {"Cola", "Jasmine Tea", "Fresh Lemonade", "Plum Juice"},
	models.DishCategorySpecial:    {"Chef's Tasting Platter", "Seasonal Stir-Fry", "House Hot Pot"},
}

var inventoryUnits = map[models.InventoryCategory]string{
	models.InventoryCategoryMeat:      "kg",
	models.InventoryCategoryVegetable: "kg",
	models.InventoryCategorySeasoning: "bottle",
	models.InventoryCategoryBeverage:  "bottle",
	models.InventoryCategorySupplies:  "set",
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// RandomStore builds collections of the configured sizes with generated
// records. Ids follow the same length-derived sequence the mutation
// handlers use, so created records continue the numbering.
func RandomStore(cfg *models.Config, now time.Time) *store.Store {
	rng := rand.New(rand.NewSource(cfg.Seed))
	st := &store.Store{
		Dishes:    randomDishes(rng, cfg.InitialDishes),
		Inventory: randomInventory(rng, cfg.InitialInventory, now),
		Staff:     randomStaff(rng, cfg.InitialStaff, now),
		Tables:    randomTables(rng, cfg.InitialTables),
	}
	st.Orders = randomOrders(rng, cfg.InitialOrders, st.Dishes, st.Staff)
	return st
}

func randomOrders(rng *rand.Rand, n int, dishes []models.Dish, staff []models.StaffMember) []models.Order {
	orders := make([]models.Order, n)
	for i := range orders {
		itemCount := rng.Intn(3) + 1
		items := make([]string, itemCount)
		var total float64
		for j := range items {
			if len(dishes) == 0 {
				items[j] = "Special of the Day"
				total += fake.Float64(0, 10, 60)
				continue
			}
			dish := pick(rng, dishes)
			items[j] = dish.Name
			total += dish.Price
		}
		waiter := "unassigned"
		if len(staff) > 0 {
			waiter = pick(rng, staff).Name
		}
		orders[i] = models.Order{
			ID:           fmt.Sprintf("ORD-%03d", i+1),
			TableNumber:  fmt.Sprintf("Table %d", rng.Intn(20)+1),
			CustomerName: fake.Person().Name(),
			Items:        items,
			Total:        total,
			Status:       pick(rng, models.OrderStatuses),
			Time:         fmt.Sprintf("%d minutes ago", rng.Intn(55)+5),
			Waiter:       waiter,
		}
	}
	return orders
}

func randomDishes(rng *rand.Rand, n int) []models.Dish {
	dishes := make([]models.Dish, n)
	for i := range dishes {
		category := pick(rng, models.DishCategories)
		dishes[i] = models.Dish{
			ID:          fmt.Sprintf("DISH-%03d", i+1),
			Name:        pick(rng, dishNamesByCategory[category]),
			Category:    category,
			Price:       fake.Float64(0, 10, 60),
			Description: fake.Lorem().Sentence(8),
			Image:       models.DefaultDishImage,
			Available:   rng.Intn(10) > 1, // most dishes are on the menu
			Rating:      fake.Float64(1, 3, 5),
			OrderCount:  rng.Intn(250),
		}
	}
	return dishes
}

func randomInventory(rng *rand.Rand, n int, now time.Time) []models.InventoryItem {
	items := make([]models.InventoryItem, n)
	for i := range items {
		category := pick(rng, models.InventoryCategories)
		minStock := float64(rng.Intn(40) + 10)
		item := models.InventoryItem{
			ID:          fmt.Sprintf("INV-%03d", i+1),
			Name:        fake.Food().Vegetable(),
			Category:    category,
			Quantity:    float64(rng.Intn(200)),
			Unit:        inventoryUnits[category],
			MinStock:    minStock,
			Supplier:    fake.Company().Name(),
			Price:       fake.Float64(1, 2, 50),
			LastUpdated: now.UTC().AddDate(0, 0, -rng.Intn(7)),
		}
		if category == models.InventoryCategoryMeat || category == models.InventoryCategoryVegetable {
			expiry := now.UTC().AddDate(0, 0, rng.Intn(10))
			item.ExpiryDate = &expiry
		}
		items[i] = item
	}
	return items
}

func randomStaff(rng *rand.Rand, n int, now time.Time) []models.StaffMember {
	staff := make([]models.StaffMember, n)
	for i := range staff {
		staff[i] = models.StaffMember{
			ID:       fmt.Sprintf("STAFF-%03d", i+1),
			Name:     fake.Person().Name(),
			Position: pick(rng, models.StaffPositions),
			Phone:    fake.Phone().Number(),
			Email:    fake.Internet().Email(),
			Status:   pick(rng, models.StaffStatuses),
			HireDate: fake.Time().TimeBetween(now.AddDate(-3, 0, 0), now),
			Salary:   float64(rng.Intn(8000) + 3500),
		}
	}
	return staff
}

func randomTables(rng *rand.Rand, n int) []models.Table {
	tables := make([]models.Table, n)
	for i := range tables {
		table := models.Table{
			ID:     fmt.Sprintf("TABLE-%03d", i+1),
			Number: fmt.Sprintf("Table %d", i+1),
			Seats:  pick(rng, []int{2, 2, 4, 4, 6, 8}),
			Status: pick(rng, models.TableStatuses),
		}
		if table.Status == models.TableStatusOccupied {
			table.CurrentOrder = fmt.Sprintf("ORD-%03d", rng.Intn(n)+1)
			table.EstimatedTime = fmt.Sprintf("%d minutes", (rng.Intn(4)+1)*15)
		}
		tables[i] = table
	}
	return tables
}

// SeedStore picks the seed source from config: the built-in fixtures by
// default, generated collections when seed_mode is "random".
func SeedStore(cfg *models.Config, now time.Time) *store.Store {
	if cfg.SeedMode == "random" {
		return RandomStore(cfg, now)
	}
	return FixtureStore(now)
}
