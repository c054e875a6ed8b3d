package payroll

import "time"

// Entry is the payroll projection of a user row.
type Entry struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name"`
	BaseSalary float64   `json:"base_salary"`
	Bonus      float64   `json:"bonus"`
	Deductions float64   `json:"deductions"`
	NetSalary  float64   `json:"net_salary"`
	CreatedAt  time.Time `json:"created_at"`
}
