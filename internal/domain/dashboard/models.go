package dashboard

import "time"

const recentLimit = 5

type Stats struct {
	TotalEmployees      int64            `json:"totalEmployees"`
	ActiveEmployees     int64            `json:"activeEmployees"`
	PendingApplications int64            `json:"pendingApplications"`
	PendingRequests     int64            `json:"pendingRequests"`
	TotalPayroll        float64          `json:"totalPayroll"`
	RecentActivities    []RecentActivity `json:"recentActivities"`
	RecentRequests      []RecentRequest  `json:"recentRequests"`
}

type RecentActivity struct {
	FullName    string    `json:"full_name"`
	Position    string    `json:"position"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type RecentRequest struct {
	Type        string  `json:"type"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
}
