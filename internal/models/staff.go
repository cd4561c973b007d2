package models

import (
	"fmt"
	"time"
)

type StaffPosition string

const (
	StaffPositionManager StaffPosition = "manager"
	StaffPositionWaiter  StaffPosition = "waiter"
	StaffPositionChef    StaffPosition = "chef"
	StaffPositionCashier StaffPosition = "cashier"
)

var StaffPositions = []StaffPosition{
	StaffPositionManager,
	StaffPositionWaiter,
	StaffPositionChef,
	StaffPositionCashier,
}

func ParseStaffPosition(s string) (StaffPosition, error) {
	for _, p := range StaffPositions {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown staff position %q", s)
}

type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
	StaffStatusOnLeave  StaffStatus = "onLeave"
)

var StaffStatuses = []StaffStatus{
	StaffStatusActive,
	StaffStatusInactive,
	StaffStatusOnLeave,
}

func ParseStaffStatus(s string) (StaffStatus, error) {
	for _, st := range StaffStatuses {
		if s == string(st) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown staff status %q", s)
}

type StaffMember struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Position StaffPosition `json:"position"`
	Phone    string        `json:"phone"`
	Email    string        `json:"email"`
	Status   StaffStatus   `json:"status"`
	HireDate time.Time     `json:"hire_date"`
	Salary   float64       `json:"salary"`
}
