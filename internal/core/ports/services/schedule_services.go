package services

import (
	"context"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/hraxis/hr_payroll_app/internal/dto"
)

// ScheduleSvcFacade drives the schedule-change approval workflow.
type ScheduleSvcFacade interface {
	// SubmitChange creates a new pending submission, or updates the existing
	// non-terminal submission for the same employee and effective date.
	SubmitChange(ctx context.Context, req dto.SubmitScheduleChangeRequest, userID string) (*domain.ScheduleSubmission, error)

	// ApproveLevel1 moves a pending submission to first-level approved.
	ApproveLevel1(ctx context.Context, submissionID string, approverID string) (*domain.ScheduleSubmission, error)

	// ApproveLevel2 applies a submission: materializes the schedule assignment
	// and marks the submission applied, atomically.
	ApproveLevel2(ctx context.Context, submissionID string, approverID string) (*domain.ScheduleSubmission, error)

	// Reject moves a non-terminal submission to rejected.
	Reject(ctx context.Context, submissionID string, approverID string, comment string) (*domain.ScheduleSubmission, error)

	// ApproveLevel2Bulk applies several submissions in one transaction; any
	// failure rolls back the entire batch.
	ApproveLevel2Bulk(ctx context.Context, submissionIDs []string, approverID string) ([]domain.ScheduleSubmission, error)

	// RejectBulk rejects submissions independently, reporting per-item outcomes.
	RejectBulk(ctx context.Context, submissionIDs []string, approverID string, comment string) []dto.BulkRejectResult

	// ListSubmissions retrieves submissions matching the filter.
	ListSubmissions(ctx context.Context, params dto.ListSubmissionsParams) ([]domain.ScheduleSubmission, error)
}
