package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/hraxis/hr_payroll_app/internal/core/ports/services"
	"github.com/hraxis/hr_payroll_app/internal/dto"
	"github.com/hraxis/hr_payroll_app/internal/middleware"
)

// loanService keeps a loan's derived balance reconciled with its journal
// entries. Effects are computed as pure functions over the locked snapshot and
// written back in a single aggregate update per loan row, inside one
// transaction with the entry write.
type loanService struct {
	loanRepo portsrepo.LoanRepositoryFacade
}

// NewLoanService creates a new loan ledger service.
func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: loanRepo}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// loanState is the immutable snapshot the effect functions operate on.
type loanState struct {
	LoanAmount decimal.Decimal
	Balance    decimal.Decimal
}

// applyEntry returns the state after recording the entry. A credit pays the
// balance down, clamped at zero; a debit raises both principal and balance.
func applyEntry(s loanState, e domain.LoanEntry) loanState {
	switch e.EntryType {
	case domain.Credit:
		s.Balance = s.Balance.Sub(e.Amount)
		if s.Balance.IsNegative() {
			s.Balance = decimal.Zero
		}
	case domain.Debit:
		s.LoanAmount = s.LoanAmount.Add(e.Amount)
		s.Balance = s.Balance.Add(e.Amount)
	}
	return s
}

// reverseEntry returns the state with the entry's recorded effect undone.
// Reversing a credit restores the full amount uncapped; the clamp on apply
// discards overshoot, so a reversal can restore more than the credit removed.
// Reversing a debit clamps both figures at zero.
func reverseEntry(s loanState, e domain.LoanEntry) loanState {
	switch e.EntryType {
	case domain.Credit:
		s.Balance = s.Balance.Add(e.Amount)
	case domain.Debit:
		s.LoanAmount = s.LoanAmount.Sub(e.Amount)
		if s.LoanAmount.IsNegative() {
			s.LoanAmount = decimal.Zero
		}
		s.Balance = s.Balance.Sub(e.Amount)
		if s.Balance.IsNegative() {
			s.Balance = decimal.Zero
		}
	}
	return s
}

// deriveStatus owns the loan status: closed exactly while the balance is zero.
func deriveStatus(s loanState) domain.LoanStatus {
	if s.Balance.IsZero() {
		return domain.LoanClosed
	}
	return domain.LoanActive
}

// GetLoan retrieves a loan with its current derived balance.
func (s *loanService) GetLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	return loan, nil
}

// ListLoanEntries retrieves the journal entries of a loan, optionally bounded
// by an inclusive date range.
func (s *loanService) ListLoanEntries(ctx context.Context, loanID string, params dto.ListLoanEntriesParams) ([]domain.LoanEntry, error) {
	if _, err := s.loanRepo.FindLoanByID(ctx, loanID); err != nil {
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}

	var from, until *time.Time
	if params.DateFrom != "" {
		t, err := parseDate("dateFrom", params.DateFrom)
		if err != nil {
			return nil, err
		}
		from = &t
	}
	if params.DateUntil != "" {
		t, err := parseDate("dateUntil", params.DateUntil)
		if err != nil {
			return nil, err
		}
		until = &t
	}

	entries, err := s.loanRepo.ListLoanEntries(ctx, loanID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for loan %s: %w", loanID, err)
	}
	return entries, nil
}

// AppendLoanEntry records a new journal entry and reconciles the loan within
// one transaction.
func (s *loanService) AppendLoanEntry(ctx context.Context, loanID string, req dto.CreateLoanEntryRequest, userID string) (*domain.LoanEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requireNonNegative("amount", req.Amount); err != nil {
		return nil, err
	}
	entryDate, err := parseDate("entryDate", req.EntryDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.LoanEntry{
		EntryID:   uuid.NewString(),
		LoanID:    loanID,
		EntryType: domain.EntryType(req.EntryType),
		Amount:    req.Amount,
		EntryDate: entryDate,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	tx, err := s.loanRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.loanRepo.Rollback(ctx, tx)

	loan, err := s.loanRepo.FindLoanForUpdate(ctx, tx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock loan %s: %w", loanID, err)
	}

	state := applyEntry(loanState{LoanAmount: loan.LoanAmount, Balance: loan.Balance}, entry)

	if err := s.loanRepo.InsertLoanEntry(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to insert entry for loan %s: %w", loanID, err)
	}
	if err := s.loanRepo.UpdateLoanAggregates(ctx, tx, loanID, state.LoanAmount, state.Balance, deriveStatus(state), userID, now); err != nil {
		return nil, fmt.Errorf("failed to reconcile loan %s: %w", loanID, err)
	}

	if err := s.loanRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Loan entry appended",
		slog.String("loan_id", loanID),
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_type", string(entry.EntryType)),
		slog.String("balance", state.Balance.String()))
	return &entry, nil
}

// EditLoanEntry reverses the entry's recorded effect and applies the new one.
// Both effects are computed over the locked snapshots and written back as one
// aggregate update per affected loan, so concurrent edits cannot interleave
// between the reversal and the reapply.
func (s *loanService) EditLoanEntry(ctx context.Context, entryID string, req dto.UpdateLoanEntryRequest, userID string) (*domain.LoanEntry, error) {
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

	tx, err := s.loanRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.loanRepo.Rollback(ctx, tx)

	oldEntry, err := s.loanRepo.FindLoanEntryForUpdate(ctx, tx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock entry %s: %w", entryID, err)
	}

	newEntry := *oldEntry
	if req.LoanID != nil {
		newEntry.LoanID = *req.LoanID
	}
	if req.EntryType != nil {
		newEntry.EntryType = domain.EntryType(*req.EntryType)
	}
	if req.Amount != nil {
		newEntry.Amount = *req.Amount
	}
	if newDate != nil {
		newEntry.EntryDate = *newDate
	}
	if req.Notes != nil {
		newEntry.Notes = *req.Notes
	}
	newEntry.LastUpdatedAt = now
	newEntry.LastUpdatedBy = userID

	loans, err := s.lockLoans(ctx, tx, oldEntry.LoanID, newEntry.LoanID)
	if err != nil {
		return nil, err
	}

	if oldEntry.LoanID == newEntry.LoanID {
		loan := loans[oldEntry.LoanID]
		state := loanState{LoanAmount: loan.LoanAmount, Balance: loan.Balance}
		state = reverseEntry(state, *oldEntry)
		state = applyEntry(state, newEntry)
		if err := s.loanRepo.UpdateLoanAggregates(ctx, tx, loan.LoanID, state.LoanAmount, state.Balance, deriveStatus(state), userID, now); err != nil {
			return nil, fmt.Errorf("failed to reconcile loan %s: %w", loan.LoanID, err)
		}
	} else {
		oldLoan := loans[oldEntry.LoanID]
		oldState := reverseEntry(loanState{LoanAmount: oldLoan.LoanAmount, Balance: oldLoan.Balance}, *oldEntry)
		if err := s.loanRepo.UpdateLoanAggregates(ctx, tx, oldLoan.LoanID, oldState.LoanAmount, oldState.Balance, deriveStatus(oldState), userID, now); err != nil {
			return nil, fmt.Errorf("failed to reconcile loan %s: %w", oldLoan.LoanID, err)
		}

		newLoan := loans[newEntry.LoanID]
		newState := applyEntry(loanState{LoanAmount: newLoan.LoanAmount, Balance: newLoan.Balance}, newEntry)
		if err := s.loanRepo.UpdateLoanAggregates(ctx, tx, newLoan.LoanID, newState.LoanAmount, newState.Balance, deriveStatus(newState), userID, now); err != nil {
			return nil, fmt.Errorf("failed to reconcile loan %s: %w", newLoan.LoanID, err)
		}
	}

	if err := s.loanRepo.UpdateLoanEntry(ctx, tx, newEntry); err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}

	if err := s.loanRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Loan entry edited", slog.String("entry_id", entryID), slog.String("loan_id", newEntry.LoanID))
	return &newEntry, nil
}

// DeleteLoanEntry removes an entry, reversing its recorded effect on the loan.
func (s *loanService) DeleteLoanEntry(ctx context.Context, entryID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()

	tx, err := s.loanRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.loanRepo.Rollback(ctx, tx)

	entry, err := s.loanRepo.FindLoanEntryForUpdate(ctx, tx, entryID)
	if err != nil {
		return fmt.Errorf("failed to lock entry %s: %w", entryID, err)
	}

	loan, err := s.loanRepo.FindLoanForUpdate(ctx, tx, entry.LoanID)
	if err != nil {
		return fmt.Errorf("failed to lock loan %s: %w", entry.LoanID, err)
	}

	state := reverseEntry(loanState{LoanAmount: loan.LoanAmount, Balance: loan.Balance}, *entry)

	if err := s.loanRepo.DeleteLoanEntry(ctx, tx, entryID); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if err := s.loanRepo.UpdateLoanAggregates(ctx, tx, loan.LoanID, state.LoanAmount, state.Balance, deriveStatus(state), userID, now); err != nil {
		return fmt.Errorf("failed to reconcile loan %s: %w", loan.LoanID, err)
	}

	if err := s.loanRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Loan entry deleted",
		slog.String("entry_id", entryID),
		slog.String("loan_id", loan.LoanID),
		slog.String("balance", state.Balance.String()))
	return nil
}

// lockLoans locks one or two loan rows in a deterministic order so two edits
// moving entries between the same pair of loans cannot deadlock.
func (s *loanService) lockLoans(ctx context.Context, tx pgx.Tx, loanIDs ...string) (map[string]*domain.Loan, error) {
	unique := make([]string, 0, len(loanIDs))
	seen := make(map[string]struct{}, len(loanIDs))
	for _, id := range loanIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}
	sort.Strings(unique)

	loans := make(map[string]*domain.Loan, len(unique))
	for _, id := range unique {
		loan, err := s.loanRepo.FindLoanForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, id)
			}
			return nil, fmt.Errorf("failed to lock loan %s: %w", id, err)
		}
		loans[id] = loan
	}
	return loans, nil
}
