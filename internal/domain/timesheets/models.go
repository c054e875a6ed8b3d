package timesheets

import "time"

type Timesheet struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	FullName   string  `json:"full_name"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	TotalHours float64 `json:"total_hours"`
}

type Filter struct {
	UserID *int64
}

// Workday identifies a (user, calendar date) slot. Date is midnight UTC.
type Workday struct {
	UserID int64
	Date   time.Time
}
