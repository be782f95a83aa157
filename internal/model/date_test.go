package model

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "2024-02-30", "01/02/2024", "2024-1-2"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", s)
		}
	}
}

func TestDate_NextCrossesBoundaries(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-01", "2024-01-02"},
		{"2024-01-31", "2024-02-01"},
		{"2024-02-28", "2024-02-29"}, // leap year
		{"2023-02-28", "2023-03-01"},
		{"2024-12-31", "2025-01-01"},
	}
	for _, tt := range tests {
		got := mustDate(t, tt.in).Next()
		if got.String() != tt.want {
			t.Errorf("%s.Next() = %s, want %s", tt.in, got, tt.want)
		}
		if back := got.Prev(); back != mustDate(t, tt.in) {
			t.Errorf("%s.Prev() = %s, want %s", got, back, tt.in)
		}
	}
}

func TestDate_DaysUntil(t *testing.T) {
	a := mustDate(t, "2024-02-27")
	b := mustDate(t, "2024-03-02")
	if got := a.DaysUntil(b); got != 4 {
		t.Fatalf("DaysUntil = %d, want 4", got)
	}
	if got := b.DaysUntil(a); got != -4 {
		t.Fatalf("DaysUntil reversed = %d, want -4", got)
	}
}

func TestDateOf_UsesTimeLocation(t *testing.T) {
	// 23:30 on Jan 1 in UTC-5 is already Jan 2 in UTC.
	loc := time.FixedZone("EST", -5*3600)
	tm := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)
	if got := DateOf(tm).String(); got != "2024-01-01" {
		t.Fatalf("DateOf = %s, want 2024-01-01", got)
	}
}

func TestDate_Compare(t *testing.T) {
	a := mustDate(t, "2023-12-31")
	b := mustDate(t, "2024-01-01")
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Fatal("ordering between 2023-12-31 and 2024-01-01 is wrong")
	}
	if a.Compare(a) != 0 {
		t.Fatal("date does not compare equal to itself")
	}
	if !(Date{}).IsZero() || a.IsZero() {
		t.Fatal("IsZero mismatch")
	}
}
