package views

import "github.com/dineflow/backoffice/internal/models"

// FilterOrders returns the orders matching both the search term (against
// id, customer name and table label, case-insensitive) and the status
// filter, preserving the collection's order. The "all" sentinel matches
// every status; any other value must equal the status exactly.
func FilterOrders(orders []models.Order, term, status string) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !matchesTerm(term, o.ID, o.CustomerName, o.TableNumber) {
			continue
		}
		if status != FilterAll && status != string(o.Status) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// OrderCounts aggregates the unfiltered collection, one count per status
// plus the collection size. The counts ignore the current search term and
// status filter.
type OrderCounts struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Served    int `json:"served"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

func CountOrders(orders []models.Order) OrderCounts {
	counts := OrderCounts{All: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			counts.Pending++
		case models.OrderStatusConfirmed:
			counts.Confirmed++
		case models.OrderStatusPreparing:
			counts.Preparing++
		case models.OrderStatusReady:
			counts.Ready++
		case models.OrderStatusServed:
			counts.Served++
		case models.OrderStatusCompleted:
			counts.Completed++
		case models.OrderStatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}
