package store

import "github.com/dineflow/backoffice/internal/models"

// TableInput carries the form-editable fields of a table.
type TableInput struct {
	Number string
	Seats  int
	Status models.TableStatus
	Waiter string
}

func AddTable(tables []models.Table, in TableInput) []models.Table {
	newTable := models.Table{
		ID:     nextID(tableIDPrefix, len(tables)),
		Number: in.Number,
		Seats:  in.Seats,
		Status: in.Status,
		Waiter: in.Waiter,
	}
	out := make([]models.Table, 0, len(tables)+1)
	out = append(out, tables...)
	return append(out, newTable)
}

func UpdateTable(tables []models.Table, id string, in TableInput) []models.Table {
	out := make([]models.Table, len(tables))
	copy(out, tables)
	for i := range out {
		if out[i].ID == id {
			out[i].Number = in.Number
			out[i].Seats = in.Seats
			out[i].Status = in.Status
			out[i].Waiter = in.Waiter
		}
	}
	return out
}

func DeleteTable(tables []models.Table, id string) []models.Table {
	out := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// SetTableStatus sets any of the five statuses on the matching table.
// Like order statuses, transitions are unconstrained.
func SetTableStatus(tables []models.Table, id string, status models.TableStatus) []models.Table {
	out := make([]models.Table, len(tables))
	copy(out, tables)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

// AssignOrder marks the matching table occupied and records the order id
// as a plain snapshot; nothing checks the order exists.
func AssignOrder(tables []models.Table, id, orderID string) []models.Table {
	out := make([]models.Table, len(tables))
	copy(out, tables)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = models.TableStatusOccupied
			out[i].CurrentOrder = orderID
		}
	}
	return out
}

// ClearTable sends the matching table to cleaning and drops its current
// order and estimated time.
func ClearTable(tables []models.Table, id string) []models.Table {
	out := make([]models.Table, len(tables))
	copy(out, tables)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = models.TableStatusCleaning
			out[i].CurrentOrder = ""
			out[i].EstimatedTime = ""
		}
	}
	return out
}
