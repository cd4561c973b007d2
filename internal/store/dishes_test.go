package store

import (
	"testing"

	"github.com/dineflow/backoffice/internal/models"
)

func seedDishes(n int) []models.Dish {
	dishes := make([]models.Dish, n)
	for i := range dishes {
		dishes[i] = models.Dish{
			ID:        nextID(dishIDPrefix, i),
			Name:      "Dish",
			Category:  models.DishCategoryMainCourse,
			Price:     30,
			Available: true,
			Rating:    4.5,
		}
	}
	return dishes
}

func TestAddDishAppendsWithDefaults(t *testing.T) {
	dishes := seedDishes(5)
	got := AddDish(dishes, DishInput{Name: "Mango Pudding", Category: models.DishCategoryDessert, Price: 22, Description: "Chilled pudding", Available: true})

	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	created := got[5]
	if created.ID != "DISH-006" {
		t.Errorf("id = %q, want DISH-006", created.ID)
	}
	if created.Image != models.DefaultDishImage {
		t.Errorf("image = %q, want default", created.Image)
	}
	if created.Rating != 0 || created.OrderCount != 0 {
		t.Errorf("new dish should start with zero rating and order count, got %v/%d", created.Rating, created.OrderCount)
	}
}

func TestUpdateDishRetainsDisplayCounters(t *testing.T) {
	dishes := seedDishes(2)
	dishes[1].Rating = 4.9
	dishes[1].OrderCount = 98
	dishes[1].Image = "/dishes/hongshaorou.jpg"

	got := UpdateDish(dishes, "DISH-002", DishInput{Name: "Braised Pork Belly", Category: models.DishCategoryMainCourse, Price: 52, Description: "Slow braised", Available: false})
	updated := got[1]
	if updated.Price != 52 || updated.Available {
		t.Errorf("editable fields not replaced: %+v", updated)
	}
	if updated.Rating != 4.9 || updated.OrderCount != 98 || updated.Image != "/dishes/hongshaorou.jpg" {
		t.Errorf("display fields changed: %+v", updated)
	}
}

func TestToggleDishAvailability(t *testing.T) {
	dishes := seedDishes(2)

	got := ToggleDishAvailability(dishes, "DISH-001")
	if got[0].Available {
		t.Error("toggle should flip available to false")
	}
	got = ToggleDishAvailability(got, "DISH-001")
	if !got[0].Available {
		t.Error("second toggle should flip back to true")
	}
	if !got[1].Available {
		t.Error("other dishes must be untouched")
	}
}
