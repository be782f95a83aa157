package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Errorf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(1200); got != "1,200 days" {
		t.Errorf("FormatDays(1200) = %q", got)
	}
}

func TestAbbrev(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Writing", 10, "Writing"},
		{"Healthy Eating", 8, "Healthy…"},
		{"Walking", 1, "…"},
		{"Walking", 0, ""},
	}
	for _, tt := range tests {
		if got := Abbrev(tt.in, tt.n); got != tt.want {
			t.Errorf("Abbrev(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
