package models

import (
	"testing"
	"time"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("preparing")
	if err != nil || status != OrderStatusPreparing {
		t.Errorf("ParseOrderStatus = %v, %v", status, err)
	}
	if _, err := ParseOrderStatus("Preparing"); err == nil {
		t.Error("status values are case-sensitive")
	}
	if _, err := ParseOrderStatus(""); err == nil {
		t.Error("empty status should not parse")
	}
}

func TestParseDishCategory(t *testing.T) {
	category, err := ParseDishCategory("mainCourse")
	if err != nil || category != DishCategoryMainCourse {
		t.Errorf("ParseDishCategory = %v, %v", category, err)
	}
	if _, err := ParseDishCategory("maincourse"); err == nil {
		t.Error("category values are case-sensitive")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}

	for _, bad := range []string{"15-01-2026", "2026/01/15", "tomorrow", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}
