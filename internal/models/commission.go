package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission represents a row in the commissions table.
type Commission struct {
	CommissionID string          `db:"commission_id"`
	EmployeeID   string          `db:"employee_id"`
	BasicSalary  decimal.Decimal `db:"basic_salary"`
	Total        decimal.Decimal `db:"total"`
	DateFrom     time.Time       `db:"date_from"`
	DateUntil    time.Time       `db:"date_until"`
	AuditFields
}

// CommissionEntry represents a row in the commission_entries table.
// (commission_id, entry_date) is unique.
type CommissionEntry struct {
	EntryID      string          `db:"entry_id"`
	CommissionID string          `db:"commission_id"`
	EntryDate    time.Time       `db:"entry_date"`
	Amount       decimal.Decimal `db:"amount"`
	AuditFields
}
