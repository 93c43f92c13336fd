package domain

import "github.com/shopspring/decimal"

// Employee is the directory record used for foreign-key validation and name
// resolution. Employee CRUD lives outside this service; rows are read-only here.
type Employee struct {
	EmployeeID  string          `json:"employeeID"`
	DisplayName string          `json:"displayName"`
	BranchID    string          `json:"branchID"`
	BasicSalary decimal.Decimal `json:"basicSalary"`
	IsActive    bool            `json:"isActive"`
}

// WorkTime is a work-time shift definition referenced by schedule submissions.
type WorkTime struct {
	WorkTimeID string `json:"workTimeID"`
	Name       string `json:"name"`
	StartsAt   string `json:"startsAt"` // HH:MM, informational only.
	EndsAt     string `json:"endsAt"`
	IsActive   bool   `json:"isActive"`
}
