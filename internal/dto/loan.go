package dto

import (
	"time"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanEntryRequest appends a journal entry to a loan. EntryDate stays a
// string so the service owns date validation.
type CreateLoanEntryRequest struct {
	EntryType string          `json:"entryType" binding:"required,oneof=DEBIT CREDIT"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	EntryDate string          `json:"entryDate" binding:"required"`
	Notes     string          `json:"notes"`
}

// UpdateLoanEntryRequest edits an existing entry. Nil fields are left as-is.
// LoanID moves the entry to another loan.
type UpdateLoanEntryRequest struct {
	LoanID    *string          `json:"loanID"`
	EntryType *string          `json:"entryType" binding:"omitempty,oneof=DEBIT CREDIT"`
	Amount    *decimal.Decimal `json:"amount"`
	EntryDate *string          `json:"entryDate"`
	Notes     *string          `json:"notes"`
}

// ListLoanEntriesParams filters an entry listing by an inclusive date range.
type ListLoanEntriesParams struct {
	DateFrom  string `form:"dateFrom"`
	DateUntil string `form:"dateUntil"`
}

// LoanResponse is the read model for a loan account.
type LoanResponse struct {
	LoanID     string          `json:"loanID"`
	EmployeeID string          `json:"employeeID"`
	LoanAmount decimal.Decimal `json:"loanAmount"`
	Balance    decimal.Decimal `json:"balance"`
	Status     string          `json:"status"`
	IssuedDate time.Time       `json:"issuedDate"`
	Notes      string          `json:"notes,omitempty"`
}

// LoanEntryResponse is the read model for a journal entry.
type LoanEntryResponse struct {
	EntryID   string          `json:"entryID"`
	LoanID    string          `json:"loanID"`
	EntryType string          `json:"entryType"`
	Amount    decimal.Decimal `json:"amount"`
	EntryDate time.Time       `json:"entryDate"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"`
}

// ToLoanResponse converts a domain Loan to its read model.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:     l.LoanID,
		EmployeeID: l.EmployeeID,
		LoanAmount: l.LoanAmount,
		Balance:    l.Balance,
		Status:     string(l.Status),
		IssuedDate: l.IssuedDate,
		Notes:      l.Notes,
	}
}

// ToLoanEntryResponse converts a domain LoanEntry to its read model.
func ToLoanEntryResponse(e *domain.LoanEntry) LoanEntryResponse {
	return LoanEntryResponse{
		EntryID:   e.EntryID,
		LoanID:    e.LoanID,
		EntryType: string(e.EntryType),
		Amount:    e.Amount,
		EntryDate: e.EntryDate,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		CreatedBy: e.CreatedBy,
	}
}

// ToLoanEntryResponses converts a slice of domain entries to read models.
func ToLoanEntryResponses(entries []domain.LoanEntry) []LoanEntryResponse {
	responses := make([]LoanEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLoanEntryResponse(&entries[i])
	}
	return responses
}
