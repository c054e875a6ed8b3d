package timesheets

import (
	"testing"
	"time"
)

func dur(h, m, s int) *time.Duration {
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	return &d
}

func TestTotalHours(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  *time.Duration
		checkOut *time.Duration
		want     float64
	}{
		{name: "full day", checkIn: dur(9, 0, 0), checkOut: dur(17, 0, 0), want: 8},
		{name: "open shift", checkIn: dur(9, 0, 0), want: 0},
		{name: "half hour", checkIn: dur(9, 15, 0), checkOut: dur(9, 45, 0), want: 0.5},
		{name: "overnight stays negative", checkIn: dur(22, 0, 0), checkOut: dur(6, 0, 0), want: -16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalHours(*tc.checkIn, tc.checkOut); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(*dur(7, 5, 9)); got != "07:05:09" {
		t.Fatalf("unexpected clock %q", got)
	}
}

func TestClockOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	instant := time.Date(2025, 6, 30, 22, 30, 15, 0, time.UTC)

	date, clock := clockOf(instant, loc)
	if !date.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected next calendar day in UTC+3, got %v", date)
	}
	if FormatClock(clock) != "01:30:15" {
		t.Fatalf("unexpected clock %s", FormatClock(clock))
	}
}
