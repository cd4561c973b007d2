package models

import "fmt"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order. Transitions are not
// guarded: any status may be set from any other.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses {
		if s == string(st) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

type Order struct {
	ID           string      `json:"id"`
	TableNumber  string      `json:"table_number"`
	CustomerName string      `json:"customer_name"`
	Items        []string    `json:"items"` // dish name snapshots, not references
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Time         string      `json:"time"` // relative display text, e.g. "10 minutes ago"
	Waiter       string      `json:"waiter"`
}
