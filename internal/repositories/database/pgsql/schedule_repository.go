package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
	"github.com/hraxis/hr_payroll_app/internal/models"
	"github.com/hraxis/hr_payroll_app/internal/utils/mapping"
)

type PgxScheduleRepository struct {
	BaseRepository
}

// newPgxScheduleRepository creates a new repository for the approval workflow data.
func newPgxScheduleRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.ScheduleRepositoryFacade {
	return &PgxScheduleRepository{
		BaseRepository: BaseRepository{Pool: pool, lockTimeoutMS: lockTimeoutMS},
	}
}

var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

const submissionColumns = `
	s.submission_id, s.employee_id, s.work_time_id, s.effective_date, s.end_date,
	s.repeat_type, s.repeat_days, s.priority, s.status, s.comment,
	s.lvl1_approver_id, s.lvl1_approved_at, s.lvl2_approver_id, s.applied_at,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by`

func scanSubmission(row pgx.Row) (*domain.ScheduleSubmission, error) {
	var m models.ScheduleSubmission
	err := row.Scan(
		&m.SubmissionID,
		&m.EmployeeID,
		&m.WorkTimeID,
		&m.EffectiveDate,
		&m.EndDate,
		&m.RepeatType,
		&m.RepeatDays,
		&m.Priority,
		&m.Status,
		&m.Comment,
		&m.Lvl1ApproverID,
		&m.Lvl1ApprovedAt,
		&m.Lvl2ApproverID,
		&m.AppliedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	submission := mapping.ToDomainScheduleSubmission(m)
	return &submission, nil
}

// FindSubmissionByID retrieves a submission by its ID.
func (r *PgxScheduleRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.ScheduleSubmission, error) {
	query := `SELECT` + submissionColumns + ` FROM schedule_submissions s WHERE s.submission_id = $1;`
	submission, err := scanSubmission(r.Pool.QueryRow(ctx, query, submissionID))
	if err != nil {
		return nil, mapPgError(err, "failed to find submission "+submissionID)
	}
	return submission, nil
}

// FindOpenSubmission retrieves the single non-terminal submission for an
// employee and effective date, if one exists.
func (r *PgxScheduleRepository) FindOpenSubmission(ctx context.Context, employeeID string, effectiveDate time.Time) (*domain.ScheduleSubmission, error) {
	query := `
		SELECT` + submissionColumns + `
		FROM schedule_submissions s
		WHERE s.employee_id = $1 AND s.effective_date = $2 AND s.status IN ('PENDING', 'LVL1_APPROVED');
	`
	submission, err := scanSubmission(r.Pool.QueryRow(ctx, query, employeeID, effectiveDate))
	if err != nil {
		return nil, mapPgError(err, "failed to find open submission for employee "+employeeID)
	}
	return submission, nil
}

// ListSubmissions retrieves submissions matching the filter, newest first. The
// branch filter resolves through the employee directory.
func (r *PgxScheduleRepository) ListSubmissions(ctx context.Context, filter portsrepo.ListSubmissionsFilter) ([]domain.ScheduleSubmission, error) {
	query := `SELECT` + submissionColumns + ` FROM schedule_submissions s`
	var args []any

	if filter.BranchID != nil {
		query += ` JOIN employees e ON e.employee_id = s.employee_id`
	}
	query += ` WHERE 1=1`
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += ` AND s.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		query += ` AND e.branch_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND s.status = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += ` AND s.effective_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateUntil != nil {
		args = append(args, *filter.DateUntil)
		query += ` AND s.effective_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY s.created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	query += `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to list submissions")
	}
	defer rows.Close()

	var submissions []models.ScheduleSubmission
	for rows.Next() {
		var m models.ScheduleSubmission
		if err := rows.Scan(
			&m.SubmissionID,
			&m.EmployeeID,
			&m.WorkTimeID,
			&m.EffectiveDate,
			&m.EndDate,
			&m.RepeatType,
			&m.RepeatDays,
			&m.Priority,
			&m.Status,
			&m.Comment,
			&m.Lvl1ApproverID,
			&m.Lvl1ApprovedAt,
			&m.Lvl2ApproverID,
			&m.AppliedAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, mapPgError(err, "failed to scan submission")
		}
		submissions = append(submissions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to read submissions")
	}
	return mapping.ToDomainScheduleSubmissionSlice(submissions), nil
}

// FindSubmissionForUpdate loads a submission row and locks it for the duration of tx.
func (r *PgxScheduleRepository) FindSubmissionForUpdate(ctx context.Context, tx pgx.Tx, submissionID string) (*domain.ScheduleSubmission, error) {
	query := `SELECT` + submissionColumns + ` FROM schedule_submissions s WHERE s.submission_id = $1 FOR UPDATE;`
	submission, err := scanSubmission(tx.QueryRow(ctx, query, submissionID))
	if err != nil {
		return nil, mapPgError(err, "failed to lock submission "+submissionID)
	}
	return submission, nil
}

// FindSubmissionsForUpdate loads and locks several submissions in one read.
// Ordering by id keeps concurrent batches from deadlocking on each other.
func (r *PgxScheduleRepository) FindSubmissionsForUpdate(ctx context.Context, tx pgx.Tx, submissionIDs []string) (map[string]domain.ScheduleSubmission, error) {
	query := `
		SELECT` + submissionColumns + `
		FROM schedule_submissions s
		WHERE s.submission_id = ANY($1)
		ORDER BY s.submission_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, submissionIDs)
	if err != nil {
		return nil, mapPgError(err, "failed to lock submissions")
	}
	defer rows.Close()

	locked := make(map[string]domain.ScheduleSubmission, len(submissionIDs))
	for rows.Next() {
		var m models.ScheduleSubmission
		if err := rows.Scan(
			&m.SubmissionID,
			&m.EmployeeID,
			&m.WorkTimeID,
			&m.EffectiveDate,
			&m.EndDate,
			&m.RepeatType,
			&m.RepeatDays,
			&m.Priority,
			&m.Status,
			&m.Comment,
			&m.Lvl1ApproverID,
			&m.Lvl1ApprovedAt,
			&m.Lvl2ApproverID,
			&m.AppliedAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, mapPgError(err, "failed to scan locked submission")
		}
		locked[m.SubmissionID] = mapping.ToDomainScheduleSubmission(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to read locked submissions")
	}
	return locked, nil
}

// InsertSubmission persists a new pending submission.
func (r *PgxScheduleRepository) InsertSubmission(ctx context.Context, submission domain.ScheduleSubmission) error {
	m := mapping.ToModelScheduleSubmission(submission)
	query := `
		INSERT INTO schedule_submissions (
			submission_id, employee_id, work_time_id, effective_date, end_date,
			repeat_type, repeat_days, priority, status, comment,
			lvl1_approver_id, lvl1_approved_at, lvl2_approver_id, applied_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SubmissionID,
		m.EmployeeID,
		m.WorkTimeID,
		m.EffectiveDate,
		m.EndDate,
		m.RepeatType,
		m.RepeatDays,
		m.Priority,
		m.Status,
		m.Comment,
		m.Lvl1ApproverID,
		m.Lvl1ApprovedAt,
		m.Lvl2ApproverID,
		m.AppliedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to insert submission "+m.SubmissionID)
	}
	return nil
}

// PatchSubmission updates an existing submission in place from the typed patch.
// The statement only touches non-terminal rows; a terminal row reports not-found.
func (r *PgxScheduleRepository) PatchSubmission(ctx context.Context, submissionID string, patch portsrepo.SubmissionPatch, now time.Time) error {
	set, args := buildSubmissionPatch(patch, now)
	args = append(args, submissionID)
	query := `
		UPDATE schedule_submissions
		SET ` + set + `
		WHERE submission_id = $` + strconv.Itoa(len(args)) + ` AND status IN ('PENDING', 'LVL1_APPROVED');
	`
	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err, "failed to patch submission "+submissionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateSubmissionStatus moves a locked submission to its next status,
// recording the approver trail for the level reached.
func (r *PgxScheduleRepository) UpdateSubmissionStatus(ctx context.Context, tx pgx.Tx, submission domain.ScheduleSubmission) error {
	m := mapping.ToModelScheduleSubmission(submission)
	query := `
		UPDATE schedule_submissions
		SET status = $2, comment = $3,
		    lvl1_approver_id = $4, lvl1_approved_at = $5,
		    lvl2_approver_id = $6, applied_at = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE submission_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.SubmissionID,
		m.Status,
		m.Comment,
		m.Lvl1ApproverID,
		m.Lvl1ApprovedAt,
		m.Lvl2ApproverID,
		m.AppliedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update status for submission "+m.SubmissionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAssignments clears the active assignment for every given key.
func (r *PgxScheduleRepository) DeactivateAssignments(ctx context.Context, tx pgx.Tx, keys []portsrepo.AssignmentKey, userID string, now time.Time) error {
	if len(keys) == 0 {
		return nil
	}
	query := `
		UPDATE schedule_assignments
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE employee_id = $1 AND effective_date = $2 AND is_active = TRUE;
	`
	batch := &pgx.Batch{}
	for _, key := range keys {
		batch.Queue(query, key.EmployeeID, key.EffectiveDate, now, userID)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapPgError(err, "failed to deactivate assignments")
	}
	return nil
}

// InsertAssignment materializes one schedule assignment within tx.
func (r *PgxScheduleRepository) InsertAssignment(ctx context.Context, tx pgx.Tx, assignment domain.ScheduleAssignment) error {
	m := mapping.ToModelScheduleAssignment(assignment)
	query := `
		INSERT INTO schedule_assignments (
			assignment_id, employee_id, work_time_id, effective_date, end_date,
			repeat_type, repeat_days, priority, is_active, submission_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.AssignmentID,
		m.EmployeeID,
		m.WorkTimeID,
		m.EffectiveDate,
		m.EndDate,
		m.RepeatType,
		m.RepeatDays,
		m.Priority,
		m.IsActive,
		m.SubmissionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to insert assignment "+m.AssignmentID)
	}
	return nil
}
