package timesheets

import (
	"fmt"
	"time"
)

// TotalHours is the elapsed time between two time-of-day values in hours.
// Without a check-out it is zero. A check-out earlier than the check-in
// (an overnight shift) yields a negative value; it is not wrapped.
func TotalHours(checkIn time.Duration, checkOut *time.Duration) float64 {
	if checkOut == nil {
		return 0
	}
	return (*checkOut - checkIn).Seconds() / 3600
}

// FormatClock renders a time-of-day offset as HH:MM:SS.
func FormatClock(d time.Duration) string {
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// clockOf returns the calendar date (midnight UTC) and the time of day of t
// as observed in loc.
func clockOf(t time.Time, loc *time.Location) (time.Time, time.Duration) {
	local := t.In(loc)
	y, m, d := local.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	clock := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second
	return date, clock
}
