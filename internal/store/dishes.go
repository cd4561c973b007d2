package store

import "github.com/dineflow/backoffice/internal/models"

// DishInput carries the form-editable fields of a dish. Image, rating and
// order count are system-assigned on create and retained on update.
type DishInput struct {
	Name        string
	Category    models.DishCategory
	Price       float64
	Description string
	Available   bool
}

func AddDish(dishes []models.Dish, in DishInput) []models.Dish {
	newDish := models.Dish{
		ID:          nextID(dishIDPrefix, len(dishes)),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		Image:       models.DefaultDishImage,
		Available:   in.Available,
		Rating:      0,
		OrderCount:  0,
	}
	out := make([]models.Dish, 0, len(dishes)+1)
	out = append(out, dishes...)
	return append(out, newDish)
}

func UpdateDish(dishes []models.Dish, id string, in DishInput) []models.Dish {
	out := make([]models.Dish, len(dishes))
	copy(out, dishes)
	for i := range out {
		if out[i].ID == id {
			out[i].Name = in.Name
			out[i].Category = in.Category
			out[i].Price = in.Price
			out[i].Description = in.Description
			out[i].Available = in.Available
		}
	}
	return out
}

func DeleteDish(dishes []models.Dish, id string) []models.Dish {
	out := make([]models.Dish, 0, len(dishes))
	for _, d := range dishes {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

// ToggleDishAvailability flips the availability flag of the matching dish.
func ToggleDishAvailability(dishes []models.Dish, id string) []models.Dish {
	out := make([]models.Dish, len(dishes))
	copy(out, dishes)
	for i := range out {
		if out[i].ID == id {
			out[i].Available = !out[i].Available
		}
	}
	return out
}
