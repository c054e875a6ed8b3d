package applications

import "time"

const (
	StatusPending = "pending"
	StatusOnHold  = "onhold"
)

type Application struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Position       string    `json:"position"`
	Department     string    `json:"department"`
	WorkLocation   string    `json:"work_location"`
	Classification string    `json:"classification"`
	ResumeURL      string    `json:"resume_url"`
	Status         string    `json:"status"`
	UserID         *int64    `json:"user_id"`
	HireDate       *string   `json:"hire_date"`
	Documents      *string   `json:"documents"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// Submission is what an anonymous applicant may send.
type Submission struct {
	FullName       string
	Email          string
	Phone          string
	Position       string
	Department     string
	WorkLocation   string
	Classification string
	ResumeURL      string
}

type Patch struct {
	Status         *string
	FullName       *string
	Position       *string
	Department     *string
	WorkLocation   *string
	Classification *string
}

type Filter struct {
	UserID *int64
}

type Deleted struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
