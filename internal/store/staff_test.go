package store

import (
	"testing"
	"time"

	"github.com/dineflow/backoffice/internal/models"
)

func seedStaff() []models.StaffMember {
	hire := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	return []models.StaffMember{
		{ID: "STAFF-001", Name: "Li Ming", Position: models.StaffPositionWaiter, Phone: "13800138001", Email: "liming@restaurant.com", Status: models.StaffStatusActive, HireDate: hire, Salary: 4500},
		{ID: "STAFF-002", Name: "Chen Jing", Position: models.StaffPositionManager, Phone: "13800138004", Email: "chenjing@restaurant.com", Status: models.StaffStatusOnLeave, HireDate: hire, Salary: 10000},
		{ID: "STAFF-003", Name: "Zhao Lei", Position: models.StaffPositionCashier, Phone: "13800138005", Email: "zhaolei@restaurant.com", Status: models.StaffStatusInactive, HireDate: hire, Salary: 4000},
	}
}

func TestAddStaffMemberAppends(t *testing.T) {
	staff := seedStaff()
	got := AddStaffMember(staff, StaffInput{
		Name:     "Wang Wei",
		Position: models.StaffPositionChef,
		Phone:    "13800138003",
		Email:    "wangwei@restaurant.com",
		Status:   models.StaffStatusActive,
		HireDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Salary:   8000,
	})

	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[3].ID != "STAFF-004" {
		t.Errorf("id = %q, want STAFF-004", got[3].ID)
	}
}

func TestToggleStaffLeave(t *testing.T) {
	staff := seedStaff()

	got := ToggleStaffLeave(staff, "STAFF-001")
	if got[0].Status != models.StaffStatusOnLeave {
		t.Errorf("active should toggle to onLeave, got %q", got[0].Status)
	}

	got = ToggleStaffLeave(staff, "STAFF-002")
	if got[1].Status != models.StaffStatusActive {
		t.Errorf("onLeave should toggle to active, got %q", got[1].Status)
	}

	got = ToggleStaffLeave(staff, "STAFF-003")
	if got[2].Status != models.StaffStatusInactive {
		t.Errorf("inactive should not toggle, got %q", got[2].Status)
	}
}

func TestSetStaffStatus(t *testing.T) {
	staff := seedStaff()
	got := SetStaffStatus(staff, "STAFF-003", models.StaffStatusActive)
	if got[2].Status != models.StaffStatusActive {
		t.Errorf("status = %q, want active", got[2].Status)
	}
	if staff[2].Status != models.StaffStatusInactive {
		t.Error("input collection was mutated")
	}
}
