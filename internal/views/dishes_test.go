package views

import (
	"testing"

	"github.com/dineflow/backoffice/internal/models"
)

func testDishes() []models.Dish {
	return []models.Dish{
		{ID: "DISH-001", Name: "Crispy Spring Rolls", Description: "Hand rolled with fresh vegetables", Category: models.DishCategoryAppetizer, Price: 12, OrderCount: 156},
		{ID: "DISH-002", Name: "Tom Yum Soup", Description: "Hot and sour with prawns", Category: models.DishCategorySoup, Price: 14, OrderCount: 98},
		{ID: "DISH-003", Name: "Grilled Ribeye", Description: "Aged beef with roasted vegetables", Category: models.DishCategoryMainCourse, Price: 42, OrderCount: 203},
		{ID: "DISH-004", Name: "Mango Sticky Rice", Description: "Sweet coconut dessert", Category: models.DishCategoryDessert, Price: 9, OrderCount: 120},
	}
}

func TestFilterDishes(t *testing.T) {
	dishes := testDishes()

	tests := []struct {
		name     string
		term     string
		category string
		want     int
	}{
		{"name search", "soup", "all", 1},
		{"description search", "vegetables", "all", 2},
		{"category filter", "", "dessert", 1},
		{"description and category ANDed", "vegetables", "mainCourse", 1},
		{"no match", "pizza", "all", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterDishes(dishes, tt.term, tt.category); len(got) != tt.want {
				t.Errorf("got %d dishes, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCountDishes(t *testing.T) {
	counts := CountDishes(testDishes())
	if counts.All != 4 {
		t.Errorf("all = %d, want 4", counts.All)
	}
	sum := counts.Appetizer + counts.Soup + counts.MainCourse + counts.Dessert +
		counts.Beverage + counts.Special
	if sum != 4 {
		t.Errorf("category counts sum to %d, want 4", sum)
	}
}
