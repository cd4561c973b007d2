package views

import (
	"math"
	"sort"

	"github.com/dineflow/backoffice/internal/models"
)

// Revenue summarises the orders collection. Cancelled orders are excluded
// from the revenue figures but still counted.
func Revenue(orders []models.Order) models.RevenueSummary {
	summary := models.RevenueSummary{TotalOrders: len(orders)}
	billed := 0
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusCancelled:
			summary.CancelledOrders++
			continue
		case models.OrderStatusCompleted:
			summary.CompletedOrders++
		}
		summary.TotalRevenue += o.Total
		billed++
	}
	if billed > 0 {
		summary.AverageOrder = round2(summary.TotalRevenue / float64(billed))
	}
	return summary
}

// TopDishes ranks dishes by their display order counters, taking revenue
// as price times count. Percentage is each dish's share of the summed dish
// revenue, one decimal place. Ties keep the collection order.
func TopDishes(dishes []models.Dish, limit int) []models.DishSales {
	rows := make([]models.DishSales, 0, len(dishes))
	var total float64
	for _, d := range dishes {
		revenue := d.Price * float64(d.OrderCount)
		total += revenue
		rows = append(rows, models.DishSales{
			Name:    d.Name,
			Orders:  int32(d.OrderCount),
			Revenue: round2(revenue),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Orders > rows[j].Orders })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	if total > 0 {
		for i := range rows {
			rows[i].Percentage = math.Round(rows[i].Revenue/total*1000) / 10
		}
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
