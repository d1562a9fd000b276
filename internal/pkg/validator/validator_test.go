package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"123e4567-e89b-12d3-a456-426614174000", // v1
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // uppercase
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-02-28"); !ok {
		t.Error("IsValidDate(2026-02-28) = false, want true")
	}
	for _, s := range []string{"2026-02-30", "28-02-2026", "2026/02/28", "", "yesterday"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2026, 1, true},
		{2026, 12, true},
		{2026, 0, false},
		{2026, 13, false},
		{1999, 6, false},
		{2201, 6, false},
	}
	for _, c := range cases {
		if got := IsValidMonth(c.year, c.month); got != c.want {
			t.Errorf("IsValidMonth(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	if _, ok := IsValidAmount("125.50"); !ok {
		t.Error("IsValidAmount(125.50) = false, want true")
	}
	for _, s := range []string{"0", "-5", "abc", ""} {
		if _, ok := IsValidAmount(s); ok {
			t.Errorf("IsValidAmount(%q) = true, want false", s)
		}
	}
}

func TestIsValidRate(t *testing.T) {
	for _, s := range []string{"0", "0.10", "2.5"} {
		if _, ok := IsValidRate(s); !ok {
			t.Errorf("IsValidRate(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"-0.10", "abc", ""} {
		if _, ok := IsValidRate(s); ok {
			t.Errorf("IsValidRate(%q) = true, want false", s)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"john", "john.doe", "j_d-99", "abc"}
	invalid := []string{"jo", "", "john doe", "john@doe", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidRoleName(t *testing.T) {
	valid := []string{"operator", "night_supervisor", "qa2"}
	invalid := []string{"Operator", "night supervisor", "_lead", "a", ""}
	for _, n := range valid {
		if !IsValidRoleName(n) {
			t.Errorf("IsValidRoleName(%q) = false, want true", n)
		}
	}
	for _, n := range invalid {
		if IsValidRoleName(n) {
			t.Errorf("IsValidRoleName(%q) = true, want false", n)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "amount", Message: "amount must be positive"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["date"] != "date is required" {
		t.Errorf("ToMap()[date] = %q", m["date"])
	}
	if errs.Error() == "" {
		t.Error("Error() is empty")
	}
}
