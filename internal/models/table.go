package models

import "fmt"

type TableStatus string

const (
	TableStatusAvailable   TableStatus = "available"
	TableStatusOccupied    TableStatus = "occupied"
	TableStatusReserved    TableStatus = "reserved"
	TableStatusCleaning    TableStatus = "cleaning"
	TableStatusMaintenance TableStatus = "maintenance"
)

var TableStatuses = []TableStatus{
	TableStatusAvailable,
	TableStatusOccupied,
	TableStatusReserved,
	TableStatusCleaning,
	TableStatusMaintenance,
}

func ParseTableStatus(s string) (TableStatus, error) {
	for _, st := range TableStatuses {
		if s == string(st) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown table status %q", s)
}

// Table's optional fields depend on its status: an occupied table carries
// the current order id, a reserved one usually an estimated time. Nothing
// enforces the pairing; CurrentOrder is a plain snapshot, not a reference
// into the orders collection.
type Table struct {
	ID            string      `json:"id"`
	Number        string      `json:"number"`
	Seats         int         `json:"seats"`
	Status        TableStatus `json:"status"`
	CurrentOrder  string      `json:"current_order,omitempty"`
	EstimatedTime string      `json:"estimated_time,omitempty"`
	Waiter        string      `json:"waiter,omitempty"`
}
