package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus indicates whether a loan still carries an outstanding balance.
type LoanStatus string

const (
	LoanActive LoanStatus = "ACTIVE"
	LoanClosed LoanStatus = "CLOSED"
)

// EntryType classifies a loan journal entry.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// Loan represents an employee loan whose balance is derived from its journal entries.
// Balance and Status are owned by the reconciliation in the loan service; they are
// never written directly by any other path.
type Loan struct {
	LoanID     string          `json:"loanID"`
	EmployeeID string          `json:"employeeID"`
	LoanAmount decimal.Decimal `json:"loanAmount"` // Principal; debits increase it.
	Balance    decimal.Decimal `json:"balance"`    // Outstanding amount still owed.
	Status     LoanStatus      `json:"status"`
	IssuedDate time.Time       `json:"issuedDate"`
	Notes      string          `json:"notes"`
	AuditFields
}

// LoanEntry is a single journal row against a loan. Entries are never updated in
// place by callers; an edit reverses the recorded effect and applies the new one.
type LoanEntry struct {
	EntryID   string          `json:"entryID"`
	LoanID    string          `json:"loanID"`
	EntryType EntryType       `json:"entryType"`
	Amount    decimal.Decimal `json:"amount"`
	EntryDate time.Time       `json:"entryDate"`
	Notes     string          `json:"notes"`
	AuditFields
}
