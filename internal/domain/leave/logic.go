package leave

import (
	"errors"
	"time"
)

// CalculateDays returns the inclusive day count between start and end.
func CalculateDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// daysOrZero is used for display only; stored rows may predate range checks.
func daysOrZero(start, end time.Time) float64 {
	days, err := CalculateDays(start, end)
	if err != nil {
		return 0
	}
	return days
}
