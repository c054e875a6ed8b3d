package leave

import "time"

const (
	StatusPending = "pending"
	dateLayout    = "2006-01-02"
)

// Request is a leave or time-off request. Days is derived from the period.
type Request struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id"`
	Type        string    `json:"type"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   string    `json:"period_end"`
	Days        float64   `json:"days"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewRequest struct {
	UserID      *int64
	Type        string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Notes       *string
}

type Patch struct {
	UserID      *int64
	Type        *string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Status      *string
	Notes       *string
}

type Filter struct {
	UserID *int64
}

type Deleted struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
