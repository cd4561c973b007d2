package views

import "github.com/dineflow/backoffice/internal/models"

// FilterTables filters by status with the "all" sentinel. The tables page
// has no search box, so there is no term predicate.
func FilterTables(tables []models.Table, status string) []models.Table {
	out := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if status != FilterAll && status != string(t.Status) {
			continue
		}
		out = append(out, t)
	}
	return out
}

type TableCounts struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Reserved    int `json:"reserved"`
	Cleaning    int `json:"cleaning"`
	Maintenance int `json:"maintenance"`
}

func CountTables(tables []models.Table) TableCounts {
	counts := TableCounts{Total: len(tables)}
	for _, t := range tables {
		switch t.Status {
		case models.TableStatusAvailable:
			counts.Available++
		case models.TableStatusOccupied:
			counts.Occupied++
		case models.TableStatusReserved:
			counts.Reserved++
		case models.TableStatusCleaning:
			counts.Cleaning++
		case models.TableStatusMaintenance:
			counts.Maintenance++
		}
	}
	return counts
}
