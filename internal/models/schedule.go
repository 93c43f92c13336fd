package models

import "time"

// SubmissionStatus mirrors domain.SubmissionStatus at the storage layer.
type SubmissionStatus string

const (
	SubmissionPending      SubmissionStatus = "PENDING"
	SubmissionLvl1Approved SubmissionStatus = "LVL1_APPROVED"
	SubmissionApplied      SubmissionStatus = "APPLIED"
	SubmissionRejected     SubmissionStatus = "REJECTED"
)

// ScheduleSubmission represents a row in the schedule_submissions table.
// work_time_id is NULL when the submission proposes clearing the shift.
type ScheduleSubmission struct {
	SubmissionID   string           `db:"submission_id"`
	EmployeeID     string           `db:"employee_id"`
	WorkTimeID     *string          `db:"work_time_id"`
	EffectiveDate  time.Time        `db:"effective_date"`
	EndDate        *time.Time       `db:"end_date"`
	RepeatType     string           `db:"repeat_type"`
	RepeatDays     string           `db:"repeat_days"`
	Priority       int              `db:"priority"`
	Status         SubmissionStatus `db:"status"`
	Comment        string           `db:"comment"`
	Lvl1ApproverID *string          `db:"lvl1_approver_id"`
	Lvl1ApprovedAt *time.Time       `db:"lvl1_approved_at"`
	Lvl2ApproverID *string          `db:"lvl2_approver_id"`
	AppliedAt      *time.Time       `db:"applied_at"`
	AuditFields
}

// ScheduleAssignment represents a row in the schedule_assignments table.
type ScheduleAssignment struct {
	AssignmentID  string     `db:"assignment_id"`
	EmployeeID    string     `db:"employee_id"`
	WorkTimeID    string     `db:"work_time_id"`
	EffectiveDate time.Time  `db:"effective_date"`
	EndDate       *time.Time `db:"end_date"`
	RepeatType    string     `db:"repeat_type"`
	RepeatDays    string     `db:"repeat_days"`
	Priority      int        `db:"priority"`
	IsActive      bool       `db:"is_active"`
	SubmissionID  string     `db:"submission_id"`
	AuditFields
}
