package dto

import (
	"time"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCommissionEntryRequest appends one daily commission row.
type CreateCommissionEntryRequest struct {
	EntryDate string          `json:"entryDate" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateCommissionEntryRequest edits an existing daily row. Nil fields are left as-is.
type UpdateCommissionEntryRequest struct {
	EntryDate *string          `json:"entryDate"`
	Amount    *decimal.Decimal `json:"amount"`
}

// UpdateCommissionRangeRequest changes a commission's date range and total,
// regenerating its daily entries.
type UpdateCommissionRangeRequest struct {
	DateFrom  string          `json:"dateFrom" binding:"required"`
	DateUntil string          `json:"dateUntil" binding:"required"`
	Total     decimal.Decimal `json:"total" binding:"required"`
}

// CommissionResponse is the read model for a commission header.
type CommissionResponse struct {
	CommissionID   string          `json:"commissionID"`
	EmployeeID     string          `json:"employeeID"`
	BasicSalary    decimal.Decimal `json:"basicSalary"`
	Total          decimal.Decimal `json:"total"`
	DateFrom       time.Time       `json:"dateFrom"`
	DateUntil      time.Time       `json:"dateUntil"`
	Classification string          `json:"classification"`
}

// CommissionEntryResponse is the read model for one daily row.
type CommissionEntryResponse struct {
	EntryID      string          `json:"entryID"`
	CommissionID string          `json:"commissionID"`
	EntryDate    time.Time       `json:"entryDate"`
	Amount       decimal.Decimal `json:"amount"`
}

// ToCommissionResponse converts a domain Commission to its read model.
func ToCommissionResponse(c *domain.Commission) CommissionResponse {
	return CommissionResponse{
		CommissionID:   c.CommissionID,
		EmployeeID:     c.EmployeeID,
		BasicSalary:    c.BasicSalary,
		Total:          c.Total,
		DateFrom:       c.DateFrom,
		DateUntil:      c.DateUntil,
		Classification: string(c.Classify()),
	}
}

// ToCommissionEntryResponse converts a domain CommissionEntry to its read model.
func ToCommissionEntryResponse(e *domain.CommissionEntry) CommissionEntryResponse {
	return CommissionEntryResponse{
		EntryID:      e.EntryID,
		CommissionID: e.CommissionID,
		EntryDate:    e.EntryDate,
		Amount:       e.Amount,
	}
}

// ToCommissionEntryResponses converts a slice of domain entries to read models.
func ToCommissionEntryResponses(entries []domain.CommissionEntry) []CommissionEntryResponse {
	responses := make([]CommissionEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToCommissionEntryResponse(&entries[i])
	}
	return responses
}
