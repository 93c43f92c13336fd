package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/hraxis/hr_payroll_app/internal/core/ports/services"
	"github.com/hraxis/hr_payroll_app/internal/dto"
	"github.com/hraxis/hr_payroll_app/internal/middleware"
	"github.com/hraxis/hr_payroll_app/internal/utils/allocation"
)

// commissionService maintains commission headers whose Total is always the sum
// of the daily entry rows. Every mutation resums the detail table inside the
// same transaction instead of applying a delta to the stored total, so a header
// can never drift from its entries.
type commissionService struct {
	commissionRepo portsrepo.CommissionRepositoryFacade
	employeeReader portsrepo.EmployeeReader
}

// NewCommissionService creates a new commission ledger service.
func NewCommissionService(commissionRepo portsrepo.CommissionRepositoryFacade, employeeReader portsrepo.EmployeeReader) portssvc.CommissionSvcFacade {
	return &commissionService{commissionRepo: commissionRepo, employeeReader: employeeReader}
}

var _ portssvc.CommissionSvcFacade = (*commissionService)(nil)

// GetCommission retrieves a commission header. BasicSalary is refreshed from
// the employee record so the classification reflects the current salary.
func (s *commissionService) GetCommission(ctx context.Context, commissionID string) (*domain.Commission, error) {
	commission, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find commission %s: %w", commissionID, err)
	}

	employee, err := s.employeeReader.FindEmployeeByID(ctx, commission.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", commission.EmployeeID, err)
	}
	commission.BasicSalary = employee.BasicSalary

	return commission, nil
}

// ListCommissionEntries retrieves the daily entries of a commission in date order.
func (s *commissionService) ListCommissionEntries(ctx context.Context, commissionID string) ([]domain.CommissionEntry, error) {
	if _, err := s.commissionRepo.FindCommissionByID(ctx, commissionID); err != nil {
		return nil, fmt.Errorf("failed to find commission %s: %w", commissionID, err)
	}
	entries, err := s.commissionRepo.ListCommissionEntries(ctx, commissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for commission %s: %w", commissionID, err)
	}
	return entries, nil
}

// AppendCommissionEntry records one daily row and resums the header total.
func (s *commissionService) AppendCommissionEntry(ctx context.Context, commissionID string, req dto.CreateCommissionEntryRequest, userID string) (*domain.CommissionEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requireNonNegative("amount", req.Amount); err != nil {
		return nil, err
	}
	entryDate, err := parseDate("entryDate", req.EntryDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.CommissionEntry{
		EntryID:      uuid.NewString(),
		CommissionID: commissionID,
		EntryDate:    entryDate,
		Amount:       req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	tx, err := s.commissionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.commissionRepo.Rollback(ctx, tx)

	commission, err := s.commissionRepo.FindCommissionForUpdate(ctx, tx, commissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock commission %s: %w", commissionID, err)
	}
	if err := requireWithinRange(entryDate, commission.DateFrom, commission.DateUntil); err != nil {
		return nil, err
	}

	if err := s.commissionRepo.InsertCommissionEntry(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to insert entry for commission %s: %w", commissionID, err)
	}
	if err := s.resumTotal(ctx, tx, commission, userID, now); err != nil {
		return nil, err
	}

	if err := s.commissionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Commission entry appended",
		slog.String("commission_id", commissionID),
		slog.String("entry_id", entry.EntryID),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// EditCommissionEntry updates a daily row and resums the header total.
func (s *commissionService) EditCommissionEntry(ctx context.Context, entryID string, req dto.UpdateCommissionEntryRequest, userID string) (*domain.CommissionEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount != nil {
		if err := requireNonNegative("amount", *req.Amount); err != nil {
			return nil, err
		}
	}
	var newDate *time.Time
	if req.EntryDate != nil {
		t, err := parseDate("entryDate", *req.EntryDate)
		if err != nil {
			return nil, err
		}
		newDate = &t
	}

	now := time.Now().UTC()

	tx, err := s.commissionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.commissionRepo.Rollback(ctx, tx)

	entry, err := s.commissionRepo.FindCommissionEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	commission, err := s.commissionRepo.FindCommissionForUpdate(ctx, tx, entry.CommissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock commission %s: %w", entry.CommissionID, err)
	}

	updated := *entry
	if newDate != nil {
		if err := requireWithinRange(*newDate, commission.DateFrom, commission.DateUntil); err != nil {
			return nil, err
		}
		updated.EntryDate = *newDate
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.commissionRepo.UpdateCommissionEntry(ctx, tx, updated); err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}
	if err := s.resumTotal(ctx, tx, commission, userID, now); err != nil {
		return nil, err
	}

	if err := s.commissionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Commission entry edited",
		slog.String("commission_id", commission.CommissionID),
		slog.String("entry_id", entryID))
	return &updated, nil
}

// DeleteCommissionEntry removes a daily row and resums the header total.
func (s *commissionService) DeleteCommissionEntry(ctx context.Context, entryID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()

	tx, err := s.commissionRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.commissionRepo.Rollback(ctx, tx)

	entry, err := s.commissionRepo.FindCommissionEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	commission, err := s.commissionRepo.FindCommissionForUpdate(ctx, tx, entry.CommissionID)
	if err != nil {
		return fmt.Errorf("failed to lock commission %s: %w", entry.CommissionID, err)
	}

	if err := s.commissionRepo.DeleteCommissionEntry(ctx, tx, entryID); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if err := s.resumTotal(ctx, tx, commission, userID, now); err != nil {
		return err
	}

	if err := s.commissionRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Commission entry deleted",
		slog.String("commission_id", commission.CommissionID),
		slog.String("entry_id", entryID))
	return nil
}

// UpdateCommissionRange replaces the commission's date range and total. The
// existing daily entries are discarded and regenerated as an even per-day
// spread, with the rounding remainder carried by the last day. Regeneration and
// the aggregate update happen in one transaction.
func (s *commissionService) UpdateCommissionRange(ctx context.Context, commissionID string, req dto.UpdateCommissionRangeRequest, userID string) (*domain.Commission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	dateFrom, err := parseDate("dateFrom", req.DateFrom)
	if err != nil {
		return nil, err
	}
	dateUntil, err := parseDate("dateUntil", req.DateUntil)
	if err != nil {
		return nil, err
	}
	if dateUntil.Before(dateFrom) {
		return nil, fmt.Errorf("%w: dateUntil precedes dateFrom", apperrors.ErrValidation)
	}
	if err := requireNonNegative("total", req.Total); err != nil {
		return nil, err
	}

	days, err := allocation.SpreadOverRange(req.Total, dateFrom, dateUntil)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	tx, err := s.commissionRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.commissionRepo.Rollback(ctx, tx)

	commission, err := s.commissionRepo.FindCommissionForUpdate(ctx, tx, commissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock commission %s: %w", commissionID, err)
	}

	if err := s.commissionRepo.DeleteCommissionEntriesByCommission(ctx, tx, commissionID); err != nil {
		return nil, fmt.Errorf("failed to clear entries for commission %s: %w", commissionID, err)
	}

	entries := make([]domain.CommissionEntry, len(days))
	for i, day := range days {
		entries[i] = domain.CommissionEntry{
			EntryID:      uuid.NewString(),
			CommissionID: commissionID,
			EntryDate:    day.Date,
			Amount:       day.Amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	if err := s.commissionRepo.InsertCommissionEntries(ctx, tx, entries); err != nil {
		return nil, fmt.Errorf("failed to insert entries for commission %s: %w", commissionID, err)
	}

	total, err := s.commissionRepo.SumCommissionEntries(ctx, tx, commissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum entries for commission %s: %w", commissionID, err)
	}
	if err := s.commissionRepo.UpdateCommissionAggregates(ctx, tx, commissionID, total, dateFrom, dateUntil, userID, now); err != nil {
		return nil, fmt.Errorf("failed to update commission %s: %w", commissionID, err)
	}

	if err := s.commissionRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	commission.Total = total
	commission.DateFrom = dateFrom
	commission.DateUntil = dateUntil
	commission.LastUpdatedAt = now
	commission.LastUpdatedBy = userID

	logger.Info("Commission range updated",
		slog.String("commission_id", commissionID),
		slog.String("total", total.String()),
		slog.Int("days", len(entries)))
	return commission, nil
}

// resumTotal re-derives the header total from the entry rows as visible to tx
// and writes it back, keeping the commission's stored date range.
func (s *commissionService) resumTotal(ctx context.Context, tx pgx.Tx, commission *domain.Commission, userID string, now time.Time) error {
	total, err := s.commissionRepo.SumCommissionEntries(ctx, tx, commission.CommissionID)
	if err != nil {
		return fmt.Errorf("failed to sum entries for commission %s: %w", commission.CommissionID, err)
	}
	if err := s.commissionRepo.UpdateCommissionAggregates(ctx, tx, commission.CommissionID, total, commission.DateFrom, commission.DateUntil, userID, now); err != nil {
		return fmt.Errorf("failed to update commission %s: %w", commission.CommissionID, err)
	}
	return nil
}

// requireWithinRange validates that a daily entry date falls inside the
// commission's inclusive date range.
func requireWithinRange(date, from, until time.Time) error {
	if date.Before(from) || date.After(until) {
		return fmt.Errorf("%w: entryDate %s outside commission range %s..%s",
			apperrors.ErrValidation,
			date.Format(dto.DateLayout), from.Format(dto.DateLayout), until.Format(dto.DateLayout))
	}
	return nil
}
