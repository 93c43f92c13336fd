package repositories

import (
	"context"
	"time"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ListSubmissionsFilter narrows a submission listing. Nil fields are ignored.
type ListSubmissionsFilter struct {
	EmployeeID *string
	BranchID   *string
	Status     *domain.SubmissionStatus
	DateFrom   *time.Time
	DateUntil  *time.Time
	Limit      int
}

// SubmissionPatch carries the fields a create/replace may overwrite on an
// existing non-terminal submission. Only known fields exist; nothing else can
// reach the generated UPDATE statement.
type SubmissionPatch struct {
	WorkTimeID  **string // Outer nil: untouched. Inner nil: clear shift.
	EndDate     **time.Time
	RepeatType  *domain.RepeatType
	RepeatDays  *string
	Priority    *int
	Comment     *string
	SubmittedBy *string

	// RefreshOnly keeps the approval trail intact. Set when the resubmission
	// proposes the same shift the open submission already carries.
	RefreshOnly bool
}

// AssignmentKey identifies the active schedule assignment slot for one
// employee on one effective date.
type AssignmentKey struct {
	EmployeeID    string
	EffectiveDate time.Time
}

// ScheduleReader defines read operations for submissions.
type ScheduleReader interface {
	// FindSubmissionByID retrieves a submission by its unique identifier.
	FindSubmissionByID(ctx context.Context, submissionID string) (*domain.ScheduleSubmission, error)

	// FindOpenSubmission retrieves the single non-terminal submission for an
	// employee and effective date, if one exists.
	FindOpenSubmission(ctx context.Context, employeeID string, effectiveDate time.Time) (*domain.ScheduleSubmission, error)

	// ListSubmissions retrieves submissions matching the filter, newest first.
	ListSubmissions(ctx context.Context, filter ListSubmissionsFilter) ([]domain.ScheduleSubmission, error)
}

// ScheduleWriter defines the transaction-scoped write operations for the
// approval workflow and its materialized assignments.
type ScheduleWriter interface {
	// FindSubmissionForUpdate loads a submission row and locks it for the duration of tx.
	FindSubmissionForUpdate(ctx context.Context, tx pgx.Tx, submissionID string) (*domain.ScheduleSubmission, error)

	// FindSubmissionsForUpdate loads and locks several submissions in one read,
	// in a deterministic order. Missing ids surface as not-found.
	FindSubmissionsForUpdate(ctx context.Context, tx pgx.Tx, submissionIDs []string) (map[string]domain.ScheduleSubmission, error)

	// InsertSubmission persists a new pending submission.
	InsertSubmission(ctx context.Context, submission domain.ScheduleSubmission) error

	// PatchSubmission updates an existing submission in place from the typed patch.
	PatchSubmission(ctx context.Context, submissionID string, patch SubmissionPatch, now time.Time) error

	// UpdateSubmissionStatus moves a locked submission to its next status,
	// recording the acting approver and timestamps for the level reached.
	UpdateSubmissionStatus(ctx context.Context, tx pgx.Tx, submission domain.ScheduleSubmission) error

	// DeactivateAssignments clears the active assignment for every given key.
	DeactivateAssignments(ctx context.Context, tx pgx.Tx, keys []AssignmentKey, userID string, now time.Time) error

	// InsertAssignment materializes one schedule assignment.
	InsertAssignment(ctx context.Context, tx pgx.Tx, assignment domain.ScheduleAssignment) error
}

// ScheduleRepositoryFacade combines all schedule repository capabilities.
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
	TransactionManager
}
