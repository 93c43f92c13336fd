package pgsql

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
)

func TestBuildSubmissionPatch_ResetsApprovalTrail(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	userID := "user-1"

	set, args := buildSubmissionPatch(portsrepo.SubmissionPatch{SubmittedBy: &userID}, now)

	assert.Contains(t, set, "status = $1")
	assert.Contains(t, set, "lvl1_approver_id = $2")
	assert.Contains(t, set, "lvl1_approved_at = $3")
	assert.Contains(t, set, "lvl2_approver_id = $4")
	assert.Contains(t, set, "applied_at = $5")
	require.Len(t, args, 7)
	assert.Equal(t, "PENDING", args[0])
	assert.Nil(t, args[1])
	assert.Equal(t, now, args[5])
	assert.Equal(t, userID, args[6])
}

func TestBuildSubmissionPatch_FieldOrderMatchesPlaceholders(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	workTimeID := "wt-9"
	workTimePtr := &workTimeID
	repeatType := domain.RepeatWeekly
	repeatDays := "1,3,5"
	priority := 2
	comment := "swap shift"
	userID := "user-2"

	set, args := buildSubmissionPatch(portsrepo.SubmissionPatch{
		WorkTimeID:  &workTimePtr,
		RepeatType:  &repeatType,
		RepeatDays:  &repeatDays,
		Priority:    &priority,
		Comment:     &comment,
		SubmittedBy: &userID,
	}, now)

	clauses := strings.Split(set, ", ")
	require.Len(t, clauses, 12)
	assert.Equal(t, "work_time_id = $1", clauses[0])
	assert.Equal(t, "repeat_type = $2", clauses[1])
	assert.Equal(t, "repeat_days = $3", clauses[2])
	assert.Equal(t, "priority = $4", clauses[3])
	assert.Equal(t, "comment = $5", clauses[4])

	require.Len(t, args, 12)
	assert.Equal(t, workTimePtr, args[0])
	assert.Equal(t, "WEEKLY", args[1])
	assert.Equal(t, priority, args[3])
}

func TestBuildSubmissionPatch_RefreshOnlyKeepsApprovalTrail(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	comment := "same shift again"
	userID := "user-3"

	set, args := buildSubmissionPatch(portsrepo.SubmissionPatch{
		Comment:     &comment,
		SubmittedBy: &userID,
		RefreshOnly: true,
	}, now)

	assert.NotContains(t, set, "status")
	assert.NotContains(t, set, "lvl1_approver_id")
	assert.NotContains(t, set, "applied_at")
	require.Len(t, args, 3)
	assert.Equal(t, comment, args[0])
	assert.Equal(t, now, args[1])
	assert.Equal(t, userID, args[2])
}

func TestBuildSubmissionPatch_ClearingShift(t *testing.T) {
	now := time.Now().UTC()
	var cleared *string

	set, args := buildSubmissionPatch(portsrepo.SubmissionPatch{WorkTimeID: &cleared}, now)

	assert.True(t, strings.HasPrefix(set, "work_time_id = $1"))
	require.NotEmpty(t, args)
	assert.Equal(t, cleared, args[0])
}
