package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus mirrors domain.LoanStatus at the storage layer.
type LoanStatus string

const (
	LoanActive LoanStatus = "ACTIVE"
	LoanClosed LoanStatus = "CLOSED"
)

// EntryType mirrors domain.EntryType at the storage layer.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// Loan represents a row in the loans table.
type Loan struct {
	LoanID     string          `db:"loan_id"`
	EmployeeID string          `db:"employee_id"`
	LoanAmount decimal.Decimal `db:"loan_amount"`
	Balance    decimal.Decimal `db:"balance"`
	Status     LoanStatus      `db:"status"`
	IssuedDate time.Time       `db:"issued_date"`
	Notes      string          `db:"notes"`
	AuditFields
}

// LoanEntry represents a row in the loan_entries table.
type LoanEntry struct {
	EntryID   string          `db:"entry_id"`
	LoanID    string          `db:"loan_id"`
	EntryType EntryType       `db:"entry_type"`
	Amount    decimal.Decimal `db:"amount"`
	EntryDate time.Time       `db:"entry_date"`
	Notes     string          `db:"notes"`
	AuditFields
}
