package dto

import (
	"time"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
)

// SubmitScheduleChangeRequest proposes a schedule change for approval. A nil
// WorkTimeID proposes clearing the employee's shift on the effective date.
type SubmitScheduleChangeRequest struct {
	EmployeeID    string  `json:"employeeID" binding:"required"`
	WorkTimeID    *string `json:"workTimeID"`
	EffectiveDate string  `json:"effectiveDate" binding:"required"`
	EndDate       *string `json:"endDate"`
	RepeatType    string  `json:"repeatType" binding:"omitempty,oneof=NONE WEEKLY"`
	RepeatDays    string  `json:"repeatDays"`
	Priority      int     `json:"priority"`
	Comment       string  `json:"comment"`
}

// RejectSubmissionRequest carries the reviewer's comment.
type RejectSubmissionRequest struct {
	Comment string `json:"comment"`
}

// BulkSubmissionRequest targets several submissions at once.
type BulkSubmissionRequest struct {
	SubmissionIDs []string `json:"submissionIDs" binding:"required,min=1"`
	Comment       string   `json:"comment"`
}

// BulkRejectResult is the per-item outcome of a bulk reject.
type BulkRejectResult struct {
	SubmissionID string `json:"submissionID"`
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
}

// ListSubmissionsParams filters a submission listing.
type ListSubmissionsParams struct {
	EmployeeID string `form:"employeeID"`
	BranchID   string `form:"branchID"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING LVL1_APPROVED APPLIED REJECTED"`
	DateFrom   string `form:"dateFrom"`
	DateUntil  string `form:"dateUntil"`
	Limit      int    `form:"limit"`
}

// SubmissionResponse is the read model for a schedule submission.
type SubmissionResponse struct {
	SubmissionID   string     `json:"submissionID"`
	EmployeeID     string     `json:"employeeID"`
	WorkTimeID     *string    `json:"workTimeID"`
	EffectiveDate  time.Time  `json:"effectiveDate"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	RepeatType     string     `json:"repeatType"`
	RepeatDays     string     `json:"repeatDays,omitempty"`
	Priority       int        `json:"priority"`
	Status         string     `json:"status"`
	Comment        string     `json:"comment,omitempty"`
	Lvl1ApproverID *string    `json:"lvl1ApproverID,omitempty"`
	Lvl1ApprovedAt *time.Time `json:"lvl1ApprovedAt,omitempty"`
	Lvl2ApproverID *string    `json:"lvl2ApproverID,omitempty"`
	AppliedAt      *time.Time `json:"appliedAt,omitempty"`
}

// ToSubmissionResponse converts a domain submission to its read model.
func ToSubmissionResponse(s *domain.ScheduleSubmission) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:   s.SubmissionID,
		EmployeeID:     s.EmployeeID,
		WorkTimeID:     s.WorkTimeID,
		EffectiveDate:  s.EffectiveDate,
		EndDate:        s.EndDate,
		RepeatType:     string(s.RepeatType),
		RepeatDays:     s.RepeatDays,
		Priority:       s.Priority,
		Status:         string(s.Status),
		Comment:        s.Comment,
		Lvl1ApproverID: s.Lvl1ApproverID,
		Lvl1ApprovedAt: s.Lvl1ApprovedAt,
		Lvl2ApproverID: s.Lvl2ApproverID,
		AppliedAt:      s.AppliedAt,
	}
}

// ToSubmissionResponses converts a slice of domain submissions to read models.
func ToSubmissionResponses(subs []domain.ScheduleSubmission) []SubmissionResponse {
	responses := make([]SubmissionResponse, len(subs))
	for i := range subs {
		responses[i] = ToSubmissionResponse(&subs[i])
	}
	return responses
}
