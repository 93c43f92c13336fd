package domain

import "time"

// SubmissionStatus is the state of a schedule change submission.
type SubmissionStatus string

const (
	SubmissionPending      SubmissionStatus = "PENDING"
	SubmissionLvl1Approved SubmissionStatus = "LVL1_APPROVED"
	SubmissionApplied      SubmissionStatus = "APPLIED"
	SubmissionRejected     SubmissionStatus = "REJECTED"
)

// submissionTransitions is the complete set of legal status transitions. Any
// transition absent from this table is rejected with a conflict at the single
// validation point in the schedule service.
var submissionTransitions = map[SubmissionStatus]map[SubmissionStatus]bool{
	SubmissionPending: {
		SubmissionLvl1Approved: true,
		SubmissionApplied:      true,
		SubmissionRejected:     true,
	},
	SubmissionLvl1Approved: {
		SubmissionApplied:  true,
		SubmissionRejected: true,
	},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	return submissionTransitions[s][next]
}

// IsTerminal reports whether no transition leaves s.
func (s SubmissionStatus) IsTerminal() bool {
	return len(submissionTransitions[s]) == 0
}

// RepeatType describes how a schedule assignment recurs.
type RepeatType string

const (
	RepeatNone   RepeatType = "NONE"
	RepeatWeekly RepeatType = "WEEKLY"
)

// ScheduleSubmission is a proposed schedule change awaiting approval. A nil
// WorkTimeID proposes clearing the employee's shift on the effective date.
// At most one non-terminal submission exists per (employee, effective date).
type ScheduleSubmission struct {
	SubmissionID   string           `json:"submissionID"`
	EmployeeID     string           `json:"employeeID"`
	WorkTimeID     *string          `json:"workTimeID"`
	EffectiveDate  time.Time        `json:"effectiveDate"`
	EndDate        *time.Time       `json:"endDate"`
	RepeatType     RepeatType       `json:"repeatType"`
	RepeatDays     string           `json:"repeatDays"` // Comma-separated ISO weekday numbers for WEEKLY.
	Priority       int              `json:"priority"`
	Status         SubmissionStatus `json:"status"`
	Comment        string           `json:"comment"`
	Lvl1ApproverID *string          `json:"lvl1ApproverID"`
	Lvl1ApprovedAt *time.Time       `json:"lvl1ApprovedAt"`
	Lvl2ApproverID *string          `json:"lvl2ApproverID"`
	AppliedAt      *time.Time       `json:"appliedAt"`
	AuditFields
}

// ScheduleAssignment is the materialized schedule record produced by a final
// approval. Keyed by (employee, effective date); only one active row per key.
type ScheduleAssignment struct {
	AssignmentID  string     `json:"assignmentID"`
	EmployeeID    string     `json:"employeeID"`
	WorkTimeID    string     `json:"workTimeID"`
	EffectiveDate time.Time  `json:"effectiveDate"`
	EndDate       *time.Time `json:"endDate"`
	RepeatType    RepeatType `json:"repeatType"`
	RepeatDays    string     `json:"repeatDays"`
	Priority      int        `json:"priority"`
	IsActive      bool       `json:"isActive"`
	SubmissionID  string     `json:"submissionID"`
	AuditFields
}
