package users

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is an employee account. The payroll columns mirror payroll.Profile.
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Role               string    `json:"role"`
	PayrollCountry     string    `json:"payrollCountry"`
	ContractType       string    `json:"contractType,omitempty"`
	HourlyRate         *float64  `json:"hourlyRate,omitempty"`
	MonthlySalary      *float64  `json:"monthlySalary,omitempty"`
	NormalWorkingHours float64   `json:"normalWorkingHours"`
	CreatedAt          time.Time `json:"createdAt"`
}

// PayrollProfileUpdate carries the mutable payroll fields of a user.
type PayrollProfileUpdate struct {
	PayrollCountry     string   `json:"payrollCountry"`
	ContractType       string   `json:"contractType"`
	HourlyRate         *float64 `json:"hourlyRate"`
	MonthlySalary      *float64 `json:"monthlySalary"`
	NormalWorkingHours float64  `json:"normalWorkingHours"`
}
