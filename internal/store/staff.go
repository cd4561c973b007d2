package store

import (
	"time"

	"github.com/dineflow/backoffice/internal/models"
)

// StaffInput carries the form-editable fields of a staff member, status
// included: the add-staff form lets the manager pick it.
type StaffInput struct {
	Name     string
	Position models.StaffPosition
	Phone    string
	Email    string
	Status   models.StaffStatus
	HireDate time.Time
	Salary   float64
}

func AddStaffMember(staff []models.StaffMember, in StaffInput) []models.StaffMember {
	newMember := models.StaffMember{
		ID:       nextID(staffIDPrefix, len(staff)),
		Name:     in.Name,
		Position: in.Position,
		Phone:    in.Phone,
		Email:    in.Email,
		Status:   in.Status,
		HireDate: in.HireDate,
		Salary:   in.Salary,
	}
	out := make([]models.StaffMember, 0, len(staff)+1)
	out = append(out, staff...)
	return append(out, newMember)
}

func UpdateStaffMember(staff []models.StaffMember, id string, in StaffInput) []models.StaffMember {
	out := make([]models.StaffMember, len(staff))
	copy(out, staff)
	for i := range out {
		if out[i].ID == id {
			out[i].Name = in.Name
			out[i].Position = in.Position
			out[i].Phone = in.Phone
			out[i].Email = in.Email
			out[i].Status = in.Status
			out[i].HireDate = in.HireDate
			out[i].Salary = in.Salary
		}
	}
	return out
}

func DeleteStaffMember(staff []models.StaffMember, id string) []models.StaffMember {
	out := make([]models.StaffMember, 0, len(staff))
	for _, m := range staff {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

func SetStaffStatus(staff []models.StaffMember, id string, status models.StaffStatus) []models.StaffMember {
	out := make([]models.StaffMember, len(staff))
	copy(out, staff)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

// ToggleStaffLeave flips the matching member between active and onLeave.
// Inactive members are left untouched.
func ToggleStaffLeave(staff []models.StaffMember, id string) []models.StaffMember {
	out := make([]models.StaffMember, len(staff))
	copy(out, staff)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		switch out[i].Status {
		case models.StaffStatusActive:
			out[i].Status = models.StaffStatusOnLeave
		case models.StaffStatusOnLeave:
			out[i].Status = models.StaffStatusActive
		}
	}
	return out
}
