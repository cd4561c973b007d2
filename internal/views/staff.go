package views

import (
	"strings"

	"github.com/dineflow/backoffice/internal/models"
)

// FilterStaff searches name and email case-insensitively; the phone number
// is matched as an exact substring, no case folding, mirroring how the
// search box treats digits.
func FilterStaff(staff []models.StaffMember, term, position string) []models.StaffMember {
	out := make([]models.StaffMember, 0, len(staff))
	for _, m := range staff {
		if !matchesTerm(term, m.Name, m.Email) && !strings.Contains(m.Phone, term) {
			continue
		}
		if position != FilterAll && position != string(m.Position) {
			continue
		}
		out = append(out, m)
	}
	return out
}

type PositionCounts struct {
	All     int `json:"all"`
	Manager int `json:"manager"`
	Chef    int `json:"chef"`
	Waiter  int `json:"waiter"`
	Cashier int `json:"cashier"`
}

func CountPositions(staff []models.StaffMember) PositionCounts {
	counts := PositionCounts{All: len(staff)}
	for _, m := range staff {
		switch m.Position {
		case models.StaffPositionManager:
			counts.Manager++
		case models.StaffPositionChef:
			counts.Chef++
		case models.StaffPositionWaiter:
			counts.Waiter++
		case models.StaffPositionCashier:
			counts.Cashier++
		}
	}
	return counts
}

// StaffStatusCounts has no "all" entry: the status cards sit next to the
// position cards, which already carry the collection size.
type StaffStatusCounts struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	OnLeave  int `json:"onLeave"`
}

func CountStaffStatuses(staff []models.StaffMember) StaffStatusCounts {
	var counts StaffStatusCounts
	for _, m := range staff {
		switch m.Status {
		case models.StaffStatusActive:
			counts.Active++
		case models.StaffStatusInactive:
			counts.Inactive++
		case models.StaffStatusOnLeave:
			counts.OnLeave++
		}
	}
	return counts
}
