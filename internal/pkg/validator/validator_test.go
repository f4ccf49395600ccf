package validator

import (
	"testing"

	"github.com/shopspring/decimal"
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
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-05-01", "2024-12-31", "2000-02-29"}
	invalid := []string{
		"2024-5-1",    // not zero-padded, breaks lexical ordering
		"2024-13-01",  // no such month
		"2024-02-30",  // no such day
		"01-05-2024",  // wrong field order
		"2024/05/01",  // wrong separator
		"2024-05-01T", // trailing garbage
		"",
	}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-05", "2024-12"}
	invalid := []string{"2024-5", "2024-13", "2024", "2024-05-01", ""}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"full", "half", "absent"}
	if !IsInSlice("half", statuses) {
		t.Error("IsInSlice(half) = false, want true")
	}
	if IsInSlice("present", statuses) {
		t.Error("IsInSlice(present) = true, want false")
	}
	if IsInSlice("full", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestAmountChecks(t *testing.T) {
	if !IsNonNegativeAmount(decimal.Zero) {
		t.Error("IsNonNegativeAmount(0) = false, want true")
	}
	if IsNonNegativeAmount(decimal.NewFromInt(-1)) {
		t.Error("IsNonNegativeAmount(-1) = true, want false")
	}
	if IsPositiveAmount(decimal.Zero) {
		t.Error("IsPositiveAmount(0) = true, want false")
	}
	if !IsPositiveAmount(decimal.NewFromFloat(0.5)) {
		t.Error("IsPositiveAmount(0.5) = false, want true")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "site_id", Message: "site_id is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["date"] != "date is required" {
		t.Errorf("ToMap()[date] = %q", m["date"])
	}
}
