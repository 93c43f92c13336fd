package services

import (
	"context"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/hraxis/hr_payroll_app/internal/dto"
)

// CommissionSvcFacade exposes the commission ledger operations. The header
// total is re-derived from the daily entries after every mutation.
type CommissionSvcFacade interface {
	// GetCommission retrieves a commission header with its derived total.
	GetCommission(ctx context.Context, commissionID string) (*domain.Commission, error)

	// ListCommissionEntries retrieves the daily entries of a commission.
	ListCommissionEntries(ctx context.Context, commissionID string) ([]domain.CommissionEntry, error)

	// AppendCommissionEntry records one daily entry and resums the total.
	AppendCommissionEntry(ctx context.Context, commissionID string, req dto.CreateCommissionEntryRequest, userID string) (*domain.CommissionEntry, error)

	// EditCommissionEntry updates a daily entry and resums the total.
	EditCommissionEntry(ctx context.Context, entryID string, req dto.UpdateCommissionEntryRequest, userID string) (*domain.CommissionEntry, error)

	// DeleteCommissionEntry removes a daily entry and resums the total.
	DeleteCommissionEntry(ctx context.Context, entryID string, userID string) error

	// UpdateCommissionRange replaces the date range and total, regenerating the
	// daily entries deterministically.
	UpdateCommissionRange(ctx context.Context, commissionID string, req dto.UpdateCommissionRangeRequest, userID string) (*domain.Commission, error)
}
