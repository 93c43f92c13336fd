package models

import "github.com/shopspring/decimal"

// Employee represents a row in the employees directory table. Read-only here.
type Employee struct {
	EmployeeID  string          `db:"employee_id"`
	DisplayName string          `db:"display_name"`
	BranchID    string          `db:"branch_id"`
	BasicSalary decimal.Decimal `db:"basic_salary"`
	IsActive    bool            `db:"is_active"`
}

// WorkTime represents a row in the work_times table. Read-only here.
type WorkTime struct {
	WorkTimeID string `db:"work_time_id"`
	Name       string `db:"name"`
	StartsAt   string `db:"starts_at"`
	EndsAt     string `db:"ends_at"`
	IsActive   bool   `db:"is_active"`
}
