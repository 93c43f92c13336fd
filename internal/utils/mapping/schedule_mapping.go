package mapping

import (
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	"github.com/hraxis/hr_payroll_app/internal/models"
)

// ToModelScheduleSubmission converts a domain submission to its storage model.
func ToModelScheduleSubmission(d domain.ScheduleSubmission) models.ScheduleSubmission {
	return models.ScheduleSubmission{
		SubmissionID:   d.SubmissionID,
		EmployeeID:     d.EmployeeID,
		WorkTimeID:     d.WorkTimeID,
		EffectiveDate:  d.EffectiveDate,
		EndDate:        d.EndDate,
		RepeatType:     string(d.RepeatType),
		RepeatDays:     d.RepeatDays,
		Priority:       d.Priority,
		Status:         models.SubmissionStatus(d.Status),
		Comment:        d.Comment,
		Lvl1ApproverID: d.Lvl1ApproverID,
		Lvl1ApprovedAt: d.Lvl1ApprovedAt,
		Lvl2ApproverID: d.Lvl2ApproverID,
		AppliedAt:      d.AppliedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScheduleSubmission converts a storage submission to its domain form.
func ToDomainScheduleSubmission(m models.ScheduleSubmission) domain.ScheduleSubmission {
	return domain.ScheduleSubmission{
		SubmissionID:   m.SubmissionID,
		EmployeeID:     m.EmployeeID,
		WorkTimeID:     m.WorkTimeID,
		EffectiveDate:  m.EffectiveDate,
		EndDate:        m.EndDate,
		RepeatType:     domain.RepeatType(m.RepeatType),
		RepeatDays:     m.RepeatDays,
		Priority:       m.Priority,
		Status:         domain.SubmissionStatus(m.Status),
		Comment:        m.Comment,
		Lvl1ApproverID: m.Lvl1ApproverID,
		Lvl1ApprovedAt: m.Lvl1ApprovedAt,
		Lvl2ApproverID: m.Lvl2ApproverID,
		AppliedAt:      m.AppliedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainScheduleSubmissionSlice converts a slice of storage submissions to domain form.
func ToDomainScheduleSubmissionSlice(ms []models.ScheduleSubmission) []domain.ScheduleSubmission {
	ds := make([]domain.ScheduleSubmission, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainScheduleSubmission(m)
	}
	return ds
}

// ToModelScheduleAssignment converts a domain assignment to its storage model.
func ToModelScheduleAssignment(d domain.ScheduleAssignment) models.ScheduleAssignment {
	return models.ScheduleAssignment{
		AssignmentID:  d.AssignmentID,
		EmployeeID:    d.EmployeeID,
		WorkTimeID:    d.WorkTimeID,
		EffectiveDate: d.EffectiveDate,
		EndDate:       d.EndDate,
		RepeatType:    string(d.RepeatType),
		RepeatDays:    d.RepeatDays,
		Priority:      d.Priority,
		IsActive:      d.IsActive,
		SubmissionID:  d.SubmissionID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScheduleAssignment converts a storage assignment to its domain form.
func ToDomainScheduleAssignment(m models.ScheduleAssignment) domain.ScheduleAssignment {
	return domain.ScheduleAssignment{
		AssignmentID:  m.AssignmentID,
		EmployeeID:    m.EmployeeID,
		WorkTimeID:    m.WorkTimeID,
		EffectiveDate: m.EffectiveDate,
		EndDate:       m.EndDate,
		RepeatType:    domain.RepeatType(m.RepeatType),
		RepeatDays:    m.RepeatDays,
		Priority:      m.Priority,
		IsActive:      m.IsActive,
		SubmissionID:  m.SubmissionID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
