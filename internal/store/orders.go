package store

import "github.com/dineflow/backoffice/internal/models"

// OrderInput carries the fields collected by the new-order form. Status,
// time text and waiter are system-assigned on create.
type OrderInput struct {
	TableNumber  string
	CustomerName string
	Items        []string
	Total        float64
}

// AddOrder creates a pending order and prepends it, so the newest order
// renders first. Every other entity kind appends.
func AddOrder(orders []models.Order, in OrderInput) []models.Order {
	newOrder := models.Order{
		ID:           nextID(orderIDPrefix, len(orders)),
		TableNumber:  in.TableNumber,
		CustomerName: in.CustomerName,
		Items:        append([]string(nil), in.Items...),
		Total:        in.Total,
		Status:       models.OrderStatusPending,
		Time:         "just now",
		Waiter:       "unassigned",
	}
	out := make([]models.Order, 0, len(orders)+1)
	out = append(out, newOrder)
	return append(out, orders...)
}

// UpdateOrder replaces the form-editable fields of the matching order.
// Status, time text and waiter are retained from the existing record.
func UpdateOrder(orders []models.Order, id string, in OrderInput) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	for i := range out {
		if out[i].ID == id {
			out[i].TableNumber = in.TableNumber
			out[i].CustomerName = in.CustomerName
			out[i].Items = append([]string(nil), in.Items...)
			out[i].Total = in.Total
		}
	}
	return out
}

func DeleteOrder(orders []models.Order, id string) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}

// SetOrderStatus sets any of the seven statuses on the matching order.
// There is no transition table: pending can jump straight to completed.
func SetOrderStatus(orders []models.Order, id string, status models.OrderStatus) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}
