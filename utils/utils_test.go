package utils

import (
	"testing"
	"time"
)

func TestFormatHumanDate(t *testing.T) {
	d := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatHumanDate(d); got != "February 01, 2026" {
		t.Fatalf("FormatHumanDate = %q", got)
	}
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := Today()
	h, m, s := today.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Fatalf("Today = %v, want midnight", today)
	}
	if today.Location() != time.UTC {
		t.Fatalf("Today location = %v, want UTC", today.Location())
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@acme.com", "orders@globalfabrics.example"}
	invalid := []string{"", "not-an-email", "a@b", "@acme.com"}

	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Fatalf("IsValidEmail(%q) = false", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Fatalf("IsValidEmail(%q) = true", e)
		}
	}
}
