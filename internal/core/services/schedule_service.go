package services

import (
	"context"
	"errors"
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
)

// scheduleService drives the two-level approval workflow for schedule changes.
// Every status move funnels through transition, which consults the domain
// transition table under a row lock; a final approval materializes the
// assignment in the same transaction that flips the status.
type scheduleService struct {
	scheduleRepo   portsrepo.ScheduleRepositoryFacade
	employeeReader portsrepo.EmployeeReader
	workTimeReader portsrepo.WorkTimeReader
}

// NewScheduleService creates a new schedule approval service.
func NewScheduleService(
	scheduleRepo portsrepo.ScheduleRepositoryFacade,
	employeeReader portsrepo.EmployeeReader,
	workTimeReader portsrepo.WorkTimeReader,
) portssvc.ScheduleSvcFacade {
	return &scheduleService{
		scheduleRepo:   scheduleRepo,
		employeeReader: employeeReader,
		workTimeReader: workTimeReader,
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

// SubmitChange proposes a schedule change. When a non-terminal submission
// already exists for the same employee and effective date it is updated in
// place and its approval progress resets to pending, so resubmitting is
// idempotent rather than a duplicate.
func (s *scheduleService) SubmitChange(ctx context.Context, req dto.SubmitScheduleChangeRequest, userID string) (*domain.ScheduleSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	effectiveDate, err := parseDate("effectiveDate", req.EffectiveDate)
	if err != nil {
		return nil, err
	}
	var endDate *time.Time
	if req.EndDate != nil {
		t, err := parseDate("endDate", *req.EndDate)
		if err != nil {
			return nil, err
		}
		if t.Before(effectiveDate) {
			return nil, fmt.Errorf("%w: endDate precedes effectiveDate", apperrors.ErrValidation)
		}
		endDate = &t
	}
	repeatType := domain.RepeatType(req.RepeatType)
	if repeatType == "" {
		repeatType = domain.RepeatNone
	}
	if repeatType == domain.RepeatWeekly && req.RepeatDays == "" {
		return nil, fmt.Errorf("%w: repeatDays is required for WEEKLY repeat", apperrors.ErrValidation)
	}

	employee, err := s.employeeReader.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", req.EmployeeID, err)
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("%w: employee %s is inactive", apperrors.ErrValidation, req.EmployeeID)
	}
	if req.WorkTimeID != nil {
		workTime, err := s.workTimeReader.FindWorkTimeByID(ctx, *req.WorkTimeID)
		if err != nil {
			return nil, fmt.Errorf("failed to find work time %s: %w", *req.WorkTimeID, err)
		}
		if !workTime.IsActive {
			return nil, fmt.Errorf("%w: work time %s is inactive", apperrors.ErrValidation, *req.WorkTimeID)
		}
	}

	now := time.Now().UTC()

	existing, err := s.scheduleRepo.FindOpenSubmission(ctx, req.EmployeeID, effectiveDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up open submission: %w", err)
	}

	if existing != nil {
		var patch portsrepo.SubmissionPatch
		if sameShift(existing.WorkTimeID, req.WorkTimeID) {
			// Same proposal again: refresh who asked and why, but keep
			// whatever approval progress the submission already made.
			patch = portsrepo.SubmissionPatch{
				Comment:     &req.Comment,
				SubmittedBy: &userID,
				RefreshOnly: true,
			}
		} else {
			patch = portsrepo.SubmissionPatch{
				WorkTimeID:  &req.WorkTimeID,
				EndDate:     &endDate,
				RepeatType:  &repeatType,
				RepeatDays:  &req.RepeatDays,
				Priority:    &req.Priority,
				Comment:     &req.Comment,
				SubmittedBy: &userID,
			}
		}
		if err := s.scheduleRepo.PatchSubmission(ctx, existing.SubmissionID, patch, now); err != nil {
			return nil, fmt.Errorf("failed to update submission %s: %w", existing.SubmissionID, err)
		}

		updated, err := s.scheduleRepo.FindSubmissionByID(ctx, existing.SubmissionID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload submission %s: %w", existing.SubmissionID, err)
		}

		logger.Info("Schedule submission updated",
			slog.String("submission_id", updated.SubmissionID),
			slog.String("employee_id", req.EmployeeID))
		return updated, nil
	}

	submission := domain.ScheduleSubmission{
		SubmissionID:  uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		WorkTimeID:    req.WorkTimeID,
		EffectiveDate: effectiveDate,
		EndDate:       endDate,
		RepeatType:    repeatType,
		RepeatDays:    req.RepeatDays,
		Priority:      req.Priority,
		Status:        domain.SubmissionPending,
		Comment:       req.Comment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.scheduleRepo.InsertSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to insert submission: %w", err)
	}

	logger.Info("Schedule submission created",
		slog.String("submission_id", submission.SubmissionID),
		slog.String("employee_id", req.EmployeeID))
	return &submission, nil
}

// sameShift reports whether two shift proposals name the same work time,
// treating nil as "clear the shift".
func sameShift(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ApproveLevel1 moves a pending submission to first-level approved.
func (s *scheduleService) ApproveLevel1(ctx context.Context, submissionID string, approverID string) (*domain.ScheduleSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	tx, err := s.scheduleRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.scheduleRepo.Rollback(ctx, tx)

	submission, err := s.scheduleRepo.FindSubmissionForUpdate(ctx, tx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock submission %s: %w", submissionID, err)
	}

	if err := transition(submission, domain.SubmissionLvl1Approved); err != nil {
		return nil, err
	}
	submission.Lvl1ApproverID = &approverID
	submission.Lvl1ApprovedAt = &now
	submission.LastUpdatedAt = now
	submission.LastUpdatedBy = approverID

	if err := s.scheduleRepo.UpdateSubmissionStatus(ctx, tx, *submission); err != nil {
		return nil, fmt.Errorf("failed to update submission %s: %w", submissionID, err)
	}
	if err := s.scheduleRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Submission approved at level 1",
		slog.String("submission_id", submissionID),
		slog.String("approver_id", approverID))
	return submission, nil
}

// ApproveLevel2 applies a submission: the status flip and the assignment
// materialization commit together or not at all.
func (s *scheduleService) ApproveLevel2(ctx context.Context, submissionID string, approverID string) (*domain.ScheduleSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	tx, err := s.scheduleRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.scheduleRepo.Rollback(ctx, tx)

	submission, err := s.scheduleRepo.FindSubmissionForUpdate(ctx, tx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock submission %s: %w", submissionID, err)
	}

	if err := s.applyLocked(ctx, tx, submission, approverID, now); err != nil {
		return nil, err
	}
	if err := s.scheduleRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Submission applied",
		slog.String("submission_id", submissionID),
		slog.String("approver_id", approverID))
	return submission, nil
}

// Reject moves a non-terminal submission to rejected, recording the comment.
func (s *scheduleService) Reject(ctx context.Context, submissionID string, approverID string, comment string) (*domain.ScheduleSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	tx, err := s.scheduleRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.scheduleRepo.Rollback(ctx, tx)

	submission, err := s.scheduleRepo.FindSubmissionForUpdate(ctx, tx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock submission %s: %w", submissionID, err)
	}

	if err := transition(submission, domain.SubmissionRejected); err != nil {
		return nil, err
	}
	if comment != "" {
		submission.Comment = comment
	}
	submission.LastUpdatedAt = now
	submission.LastUpdatedBy = approverID

	if err := s.scheduleRepo.UpdateSubmissionStatus(ctx, tx, *submission); err != nil {
		return nil, fmt.Errorf("failed to update submission %s: %w", submissionID, err)
	}
	if err := s.scheduleRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Submission rejected",
		slog.String("submission_id", submissionID),
		slog.String("approver_id", approverID))
	return submission, nil
}

// ApproveLevel2Bulk applies a batch of submissions in one transaction. The
// rows are locked together in a deterministic order; the first failure rolls
// back every item.
func (s *scheduleService) ApproveLevel2Bulk(ctx context.Context, submissionIDs []string, approverID string) ([]domain.ScheduleSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	tx, err := s.scheduleRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.scheduleRepo.Rollback(ctx, tx)

	locked, err := s.scheduleRepo.FindSubmissionsForUpdate(ctx, tx, submissionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock submissions: %w", err)
	}

	applied := make([]domain.ScheduleSubmission, 0, len(submissionIDs))
	keys := make([]portsrepo.AssignmentKey, 0, len(submissionIDs))
	for _, id := range submissionIDs {
		submission, ok := locked[id]
		if !ok {
			return nil, fmt.Errorf("%w: submission %s", apperrors.ErrNotFound, id)
		}
		if err := markApplied(&submission, approverID, now); err != nil {
			return nil, fmt.Errorf("submission %s: %w", id, err)
		}
		keys = append(keys, portsrepo.AssignmentKey{
			EmployeeID:    submission.EmployeeID,
			EffectiveDate: submission.EffectiveDate,
		})
		applied = append(applied, submission)
	}

	// One deactivation pass over every affected slot, then the per-row writes.
	if err := s.scheduleRepo.DeactivateAssignments(ctx, tx, keys, approverID, now); err != nil {
		return nil, fmt.Errorf("failed to retire assignments: %w", err)
	}
	for i := range applied {
		if err := s.materialize(ctx, tx, &applied[i], approverID, now); err != nil {
			return nil, err
		}
	}
	for i := range applied {
		if err := s.scheduleRepo.UpdateSubmissionStatus(ctx, tx, applied[i]); err != nil {
			return nil, fmt.Errorf("failed to update submission %s: %w", applied[i].SubmissionID, err)
		}
	}

	if err := s.scheduleRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Submissions applied in bulk",
		slog.Int("count", len(applied)),
		slog.String("approver_id", approverID))
	return applied, nil
}

// RejectBulk rejects each submission independently; one item's failure leaves
// the others' outcomes standing.
func (s *scheduleService) RejectBulk(ctx context.Context, submissionIDs []string, approverID string, comment string) []dto.BulkRejectResult {
	results := make([]dto.BulkRejectResult, 0, len(submissionIDs))
	for _, id := range submissionIDs {
		result := dto.BulkRejectResult{SubmissionID: id, Success: true}
		if _, err := s.Reject(ctx, id, approverID, comment); err != nil {
			result.Success = false
			result.Message = clientMessage(err)
		}
		results = append(results, result)
	}
	return results
}

// ListSubmissions retrieves submissions matching the filter, newest first.
func (s *scheduleService) ListSubmissions(ctx context.Context, params dto.ListSubmissionsParams) ([]domain.ScheduleSubmission, error) {
	filter := portsrepo.ListSubmissionsFilter{Limit: params.Limit}
	if params.EmployeeID != "" {
		filter.EmployeeID = &params.EmployeeID
	}
	if params.BranchID != "" {
		filter.BranchID = &params.BranchID
	}
	if params.Status != "" {
		status := domain.SubmissionStatus(params.Status)
		filter.Status = &status
	}
	if params.DateFrom != "" {
		t, err := parseDate("dateFrom", params.DateFrom)
		if err != nil {
			return nil, err
		}
		filter.DateFrom = &t
	}
	if params.DateUntil != "" {
		t, err := parseDate("dateUntil", params.DateUntil)
		if err != nil {
			return nil, err
		}
		filter.DateUntil = &t
	}

	submissions, err := s.scheduleRepo.ListSubmissions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// applyLocked finalizes one locked submission: validates the transition, flips
// the status, retires the previous active assignment for the slot, and
// materializes the new one when a shift is proposed. A nil WorkTimeID applies
// as a clearing of the slot and produces no new assignment.
func (s *scheduleService) applyLocked(ctx context.Context, tx pgx.Tx, submission *domain.ScheduleSubmission, approverID string, now time.Time) error {
	if err := markApplied(submission, approverID, now); err != nil {
		return err
	}

	if err := s.scheduleRepo.UpdateSubmissionStatus(ctx, tx, *submission); err != nil {
		return fmt.Errorf("failed to update submission %s: %w", submission.SubmissionID, err)
	}

	key := portsrepo.AssignmentKey{EmployeeID: submission.EmployeeID, EffectiveDate: submission.EffectiveDate}
	if err := s.scheduleRepo.DeactivateAssignments(ctx, tx, []portsrepo.AssignmentKey{key}, approverID, now); err != nil {
		return fmt.Errorf("failed to retire assignments for employee %s: %w", submission.EmployeeID, err)
	}

	return s.materialize(ctx, tx, submission, approverID, now)
}

// markApplied validates the move to applied and stamps the approver trail.
func markApplied(submission *domain.ScheduleSubmission, approverID string, now time.Time) error {
	if err := transition(submission, domain.SubmissionApplied); err != nil {
		return err
	}
	submission.Lvl2ApproverID = &approverID
	submission.AppliedAt = &now
	submission.LastUpdatedAt = now
	submission.LastUpdatedBy = approverID
	return nil
}

// materialize inserts the assignment an applied submission proposes. A nil
// WorkTimeID clears the slot, so there is nothing to insert.
func (s *scheduleService) materialize(ctx context.Context, tx pgx.Tx, submission *domain.ScheduleSubmission, approverID string, now time.Time) error {
	if submission.WorkTimeID == nil {
		return nil
	}

	assignment := domain.ScheduleAssignment{
		AssignmentID:  uuid.NewString(),
		EmployeeID:    submission.EmployeeID,
		WorkTimeID:    *submission.WorkTimeID,
		EffectiveDate: submission.EffectiveDate,
		EndDate:       submission.EndDate,
		RepeatType:    submission.RepeatType,
		RepeatDays:    submission.RepeatDays,
		Priority:      submission.Priority,
		IsActive:      true,
		SubmissionID:  submission.SubmissionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     approverID,
			LastUpdatedAt: now,
			LastUpdatedBy: approverID,
		},
	}
	if err := s.scheduleRepo.InsertAssignment(ctx, tx, assignment); err != nil {
		return fmt.Errorf("failed to insert assignment for submission %s: %w", submission.SubmissionID, err)
	}
	return nil
}

// transition is the single place a submission status changes. An illegal move
// surfaces as a conflict naming both states.
func transition(submission *domain.ScheduleSubmission, next domain.SubmissionStatus) error {
	if !submission.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move submission %s from %s to %s",
			apperrors.ErrConflict, submission.SubmissionID, submission.Status, next)
	}
	submission.Status = next
	return nil
}
