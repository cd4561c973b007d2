package views

import "github.com/dineflow/backoffice/internal/models"

// FilterDishes searches name and description, case-insensitive, and
// filters by category with the "all" sentinel.
func FilterDishes(dishes []models.Dish, term, category string) []models.Dish {
	out := make([]models.Dish, 0, len(dishes))
	for _, d := range dishes {
		if !matchesTerm(term, d.Name, d.Description) {
			continue
		}
		if category != FilterAll && category != string(d.Category) {
			continue
		}
		out = append(out, d)
	}
	return out
}

type DishCounts struct {
	All        int `json:"all"`
	Appetizer  int `json:"appetizer"`
	Soup       int `json:"soup"`
	MainCourse int `json:"mainCourse"`
	Dessert    int `json:"dessert"`
	Beverage   int `json:"beverage"`
	Special    int `json:"special"`
}

func CountDishes(dishes []models.Dish) DishCounts {
	counts := DishCounts{All: len(dishes)}
	for _, d := range dishes {
		switch d.Category {
		case models.DishCategoryAppetizer:
			counts.Appetizer++
		case models.DishCategorySoup:
			counts.Soup++
		case models.DishCategoryMainCourse:
			counts.MainCourse++
		case models.DishCategoryDessert:
			counts.Dessert++
		case models.DishCategoryBeverage:
			counts.Beverage++
		case models.DishCategorySpecial:
			counts.Special++
		}
	}
	return counts
}
