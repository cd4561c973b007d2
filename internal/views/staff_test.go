package views

import (
	"testing"

	"github.com/dineflow/backoffice/internal/models"
)

func testStaff() []models.StaffMember {
	return []models.StaffMember{
		{ID: "STAFF-001", Name: "Maria Gonzalez", Email: "maria@dineflow.io", Phone: "555-0134", Position: models.StaffPositionManager, Status: models.StaffStatusActive},
		{ID: "STAFF-002", Name: "James Park", Email: "james@dineflow.io", Phone: "555-0178", Position: models.StaffPositionChef, Status: models.StaffStatusActive},
		{ID: "STAFF-003", Name: "Lily Zhang", Email: "lily@dineflow.io", Phone: "555-0490", Position: models.StaffPositionWaiter, Status: models.StaffStatusOnLeave},
		{ID: "STAFF-004", Name: "Tom Weber", Email: "tom@dineflow.io", Phone: "555-0134", Position: models.StaffPositionWaiter, Status: models.StaffStatusInactive},
	}
}

func TestFilterStaff(t *testing.T) {
	staff := testStaff()

	tests := []struct {
		name     string
		term     string
		position string
		wantIDs  []string
	}{
		{"name search folds case", "MARIA", "all", []string{"STAFF-001"}},
		{"email search", "james@", "all", []string{"STAFF-002"}},
		{"phone search matches digits", "0134", "all", []string{"STAFF-001", "STAFF-004"}},
		{"position filter", "", "waiter", []string{"STAFF-003", "STAFF-004"}},
		{"term and position ANDed", "0134", "waiter", []string{"STAFF-004"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStaff(staff, tt.term, tt.position)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d members, want %d", len(got), len(tt.wantIDs))
			}
			for i, m := range got {
				if m.ID != tt.wantIDs[i] {
					t.Errorf("result[%d] = %s, want %s", i, m.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

// The phone field is searched as a literal substring without case folding.
func TestFilterStaffPhoneIsLiteral(t *testing.T) {
	staff := []models.StaffMember{
		{ID: "STAFF-001", Name: "Ana", Email: "ana@dineflow.io", Phone: "555-ABC"},
	}
	if got := FilterStaff(staff, "abc", "all"); len(got) != 0 {
		t.Errorf("lower-cased term matched upper-cased phone: %v", got)
	}
	if got := FilterStaff(staff, "ABC", "all"); len(got) != 1 {
		t.Errorf("literal phone substring did not match")
	}
}

func TestCountPositions(t *testing.T) {
	counts := CountPositions(testStaff())
	if counts.All != 4 {
		t.Errorf("all = %d, want 4", counts.All)
	}
	sum := counts.Manager + counts.Chef + counts.Waiter + counts.Cashier
	if sum != 4 {
		t.Errorf("position counts sum to %d, want 4", sum)
	}
	if counts.Waiter != 2 {
		t.Errorf("waiter = %d, want 2", counts.Waiter)
	}
}

func TestCountStaffStatuses(t *testing.T) {
	counts := CountStaffStatuses(testStaff())
	want := StaffStatusCounts{Active: 2, Inactive: 1, OnLeave: 1}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}
}
