package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission is a commission header for one employee over a date range. Total is
// always the sum of the daily entries; any entry mutation re-derives it from the
// detail table rather than applying deltas.
type Commission struct {
	CommissionID string          `json:"commissionID"`
	EmployeeID   string          `json:"employeeID"`
	BasicSalary  decimal.Decimal `json:"basicSalary"` // Reference only, never feeds Total.
	Total        decimal.Decimal `json:"total"`
	DateFrom     time.Time       `json:"dateFrom"`
	DateUntil    time.Time       `json:"dateUntil"`
	AuditFields
}

// CommissionEntry is one daily commission row. At most one entry exists per
// commission and date.
type CommissionEntry struct {
	EntryID      string          `json:"entryID"`
	CommissionID string          `json:"commissionID"`
	EntryDate    time.Time       `json:"entryDate"`
	Amount       decimal.Decimal `json:"amount"`
	AuditFields
}

// SalaryClass compares a commission total against the employee's basic salary.
type SalaryClass string

const (
	AboveBasic SalaryClass = "ABOVE_BASIC"
	BelowBasic SalaryClass = "BELOW_BASIC"
)

// Classify reports whether the commission total meets or exceeds the basic salary.
func (c Commission) Classify() SalaryClass {
	if c.Total.GreaterThanOrEqual(c.BasicSalary) {
		return AboveBasic
	}
	return BelowBasic
}
