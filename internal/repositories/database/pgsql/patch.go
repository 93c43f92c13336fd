package pgsql

import (
	"strconv"
	"strings"
	"time"

	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
)

// buildSubmissionPatch renders the SET clause for a submission update from the
// typed patch. Only fields declared on SubmissionPatch can appear in the
// statement. Resubmitting resets the approval trail back to pending unless the
// patch is marked refresh-only. Returns the clause and its ordered arguments;
// the caller appends the WHERE binding after them.
func buildSubmissionPatch(patch portsrepo.SubmissionPatch, now time.Time) (string, []any) {
	var set []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}

	if patch.WorkTimeID != nil {
		add("work_time_id", *patch.WorkTimeID)
	}
	if patch.EndDate != nil {
		add("end_date", *patch.EndDate)
	}
	if patch.RepeatType != nil {
		add("repeat_type", string(*patch.RepeatType))
	}
	if patch.RepeatDays != nil {
		add("repeat_days", *patch.RepeatDays)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.Comment != nil {
		add("comment", *patch.Comment)
	}

	if !patch.RefreshOnly {
		add("status", "PENDING")
		add("lvl1_approver_id", nil)
		add("lvl1_approved_at", nil)
		add("lvl2_approver_id", nil)
		add("applied_at", nil)
	}
	add("last_updated_at", now)
	if patch.SubmittedBy != nil {
		add("last_updated_by", *patch.SubmittedBy)
	}

	return strings.Join(set, ", "), args
}
