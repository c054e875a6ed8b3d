package users

import "time"

const (
	RoleEmployee = "employee"
	StatusActive = "Active"
)

// User is the persisted employee row. The password hash is never part of it.
type User struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	JobTitle   string    `json:"job_title"`
	Department string    `json:"department"`
	HireDate   *string   `json:"hire_date"`
	Status     string    `json:"status"`
	BaseSalary float64   `json:"base_salary"`
	Bonus      float64   `json:"bonus"`
	Deductions float64   `json:"deductions"`
	NetSalary  float64   `json:"net_salary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NewUser struct {
	FullName   string
	Email      string
	Phone      string
	Password   string
	Role       string
	JobTitle   string
	Department string
	HireDate   *time.Time
	Status     string
	BaseSalary float64
	Bonus      float64
	Deductions float64
}

// Patch carries the columns supplied by a partial update; nil means keep.
type Patch struct {
	FullName   *string
	Email      *string
	Phone      *string
	Password   *string
	Role       *string
	JobTitle   *string
	Department *string
	HireDate   *time.Time
	Status     *string
	BaseSalary *float64
	Bonus      *float64
	Deductions *float64
}

type Deleted struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
