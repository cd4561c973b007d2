package models

import "fmt"

type DishCategory string

const (
	DishCategoryAppetizer  DishCategory = "appetizer"
	DishCategorySoup       DishCategory = "soup"
	DishCategoryMainCourse DishCategory = "mainCourse"
	DishCategoryDessert    DishCategory = "dessert"
	DishCategoryBeverage   DishCategory = "beverage"
	DishCategorySpecial    DishCategory = "special"
)

var DishCategories = []DishCategory{
	DishCategoryAppetizer,
	DishCategorySoup,
	DishCategoryMainCourse,
	DishCategoryDessert,
	DishCategoryBeverage,
	DishCategorySpecial,
}

func ParseDishCategory(s string) (DishCategory, error) {
	for _, c := range DishCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown dish category %q", s)
}

// DefaultDishImage is assigned to newly created dishes.
const DefaultDishImage = "/dishes/default.jpg"

type Dish struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    DishCategory `json:"category"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Available   bool         `json:"available"`
	// Rating and OrderCount are display-only; they are never recomputed
	// from the orders collection.
	Rating     float64 `json:"rating"`
	OrderCount int     `json:"order_count"`
}
