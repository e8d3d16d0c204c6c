package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		str       string
		want      Date
		expectErr bool
	}{
		{"Canonical", "2025-08-25", New(2025, time.August, 25), false},
		{"Permissive", "2025-8-5", New(2025, time.August, 5), false},
		{"Garbage", "yesterday", Date{}, true},
		{"Empty", "", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.str)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("Parse(%q) returned error: %v, want error: %v", tc.str, err, tc.expectErr)
			}
			if !tc.expectErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.str, got, tc.want)
			}
		})
	}
}

func TestAddNormalizes(t *testing.T) {
	d := New(2025, time.January, 31).AddMonths(1)
	// time.Date normalization: Jan 31 + 1 month overflows into March.
	if got, want := d.String(), "2025-03-03"; got != want {
		t.Errorf("AddMonths = %s, want %s", got, want)
	}

	if got, want := New(2025, time.December, 31).Add(1).String(), "2026-01-01"; got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
}

func TestStartOfYear(t *testing.T) {
	d := New(2025, time.August, 25)
	if got, want := d.StartOfYear(), New(2025, time.January, 1); got != want {
		t.Errorf("StartOfYear = %v, want %v", got, want)
	}
}
