package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	portsrepo "github.com/hraxis/hr_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/hraxis/hr_payroll_app/internal/core/ports/services"
	"github.com/hraxis/hr_payroll_app/internal/core/services"
	"github.com/hraxis/hr_payroll_app/internal/dto"
)

// --- Mock ScheduleRepository ---
type MockScheduleRepository struct {
	mock.Mock
}

var _ portsrepo.ScheduleRepositoryFacade = (*MockScheduleRepository)(nil)

func (m *MockScheduleRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.ScheduleSubmission, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleSubmission), args.Error(1)
}

func (m *MockScheduleRepository) FindOpenSubmission(ctx context.Context, employeeID string, effectiveDate time.Time) (*domain.ScheduleSubmission, error) {
	args := m.Called(ctx, employeeID, effectiveDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleSubmission), args.Error(1)
}

func (m *MockScheduleRepository) ListSubmissions(ctx context.Context, filter portsrepo.ListSubmissionsFilter) ([]domain.ScheduleSubmission, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleSubmission), args.Error(1)
}

func (m *MockScheduleRepository) FindSubmissionForUpdate(ctx context.Context, tx pgx.Tx, submissionID string) (*domain.ScheduleSubmission, error) {
	args := m.Called(ctx, tx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleSubmission), args.Error(1)
}

func (m *MockScheduleRepository) FindSubmissionsForUpdate(ctx context.Context, tx pgx.Tx, submissionIDs []string) (map[string]domain.ScheduleSubmission, error) {
	args := m.Called(ctx, tx, submissionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ScheduleSubmission), args.Error(1)
}

func (m *MockScheduleRepository) InsertSubmission(ctx context.Context, submission domain.ScheduleSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockScheduleRepository) PatchSubmission(ctx context.Context, submissionID string, patch portsrepo.SubmissionPatch, now time.Time) error {
	args := m.Called(ctx, submissionID, patch, now)
	return args.Error(0)
}

func (m *MockScheduleRepository) UpdateSubmissionStatus(ctx context.Context, tx pgx.Tx, submission domain.ScheduleSubmission) error {
	args := m.Called(ctx, tx, submission)
	return args.Error(0)
}

func (m *MockScheduleRepository) DeactivateAssignments(ctx context.Context, tx pgx.Tx, keys []portsrepo.AssignmentKey, userID string, now time.Time) error {
	args := m.Called(ctx, tx, keys, userID, now)
	return args.Error(0)
}

func (m *MockScheduleRepository) InsertAssignment(ctx context.Context, tx pgx.Tx, assignment domain.ScheduleAssignment) error {
	args := m.Called(ctx, tx, assignment)
	return args.Error(0)
}

func (m *MockScheduleRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockScheduleRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockScheduleRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock WorkTimeReader ---
type MockWorkTimeReader struct {
	mock.Mock
}

var _ portsrepo.WorkTimeReader = (*MockWorkTimeReader)(nil)

func (m *MockWorkTimeReader) FindWorkTimeByID(ctx context.Context, workTimeID string) (*domain.WorkTime, error) {
	args := m.Called(ctx, workTimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkTime), args.Error(1)
}

// --- Test Suite Setup ---
type ScheduleServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockScheduleRepository
	mockEmployee *MockEmployeeReader
	mockWorkTime *MockWorkTimeReader
	service      portssvc.ScheduleSvcFacade
	employeeID   string
	workTimeID   string
	approverID   string
	userID       string
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockScheduleRepository)
	suite.mockEmployee = new(MockEmployeeReader)
	suite.mockWorkTime = new(MockWorkTimeReader)
	suite.service = services.NewScheduleService(suite.mockRepo, suite.mockEmployee, suite.mockWorkTime)
	suite.employeeID = uuid.NewString()
	suite.workTimeID = uuid.NewString()
	suite.approverID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ScheduleServiceTestSuite) submission(status domain.SubmissionStatus) *domain.ScheduleSubmission {
	return &domain.ScheduleSubmission{
		SubmissionID:  uuid.NewString(),
		EmployeeID:    suite.employeeID,
		WorkTimeID:    &suite.workTimeID,
		EffectiveDate: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		RepeatType:    domain.RepeatNone,
		Status:        status,
	}
}

func (suite *ScheduleServiceTestSuite) expectTx() {
	suite.mockRepo.On("Begin", mock.Anything).Return(nil, nil)
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.mockRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *ScheduleServiceTestSuite) expectActiveEmployee() {
	suite.mockEmployee.On("FindEmployeeByID", mock.Anything, suite.employeeID).Return(&domain.Employee{
		EmployeeID:  suite.employeeID,
		BasicSalary: decimal.NewFromInt(2500),
		IsActive:    true,
	}, nil)
}

func (suite *ScheduleServiceTestSuite) expectActiveWorkTime() {
	suite.mockWorkTime.On("FindWorkTimeByID", mock.Anything, suite.workTimeID).Return(&domain.WorkTime{
		WorkTimeID: suite.workTimeID,
		Name:       "Morning",
		IsActive:   true,
	}, nil)
}

// --- Test Cases ---

func (suite *ScheduleServiceTestSuite) TestSubmitChange_CreatesPending() {
	ctx := context.Background()
	suite.expectActiveEmployee()
	suite.expectActiveWorkTime()
	suite.mockRepo.On("FindOpenSubmission", ctx, suite.employeeID, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	var inserted domain.ScheduleSubmission
	suite.mockRepo.On("InsertSubmission", ctx, mock.AnythingOfType("domain.ScheduleSubmission")).
		Run(func(args mock.Arguments) { inserted = args.Get(1).(domain.ScheduleSubmission) }).Return(nil).Once()

	created, err := suite.service.SubmitChange(ctx, dto.SubmitScheduleChangeRequest{
		EmployeeID:    suite.employeeID,
		WorkTimeID:    &suite.workTimeID,
		EffectiveDate: "2026-05-04",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.SubmissionPending, created.Status)
	suite.Equal(domain.RepeatNone, created.RepeatType)
	suite.Equal(domain.SubmissionPending, inserted.Status)
	suite.Equal(suite.userID, inserted.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestSubmitChange_UpdatesOpenSubmission() {
	ctx := context.Background()
	existing := suite.submission(domain.SubmissionPending)
	suite.expectActiveEmployee()
	suite.expectActiveWorkTime()

	var captured portsrepo.SubmissionPatch
	suite.mockRepo.On("FindOpenSubmission", ctx, suite.employeeID, mock.Anything).Return(existing, nil).Once()
	suite.mockRepo.On("PatchSubmission", ctx, existing.SubmissionID, mock.AnythingOfType("repositories.SubmissionPatch"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(portsrepo.SubmissionPatch)
		}).Return(nil).Once()
	suite.mockRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).Return(existing, nil).Once()

	otherWorkTimeID := uuid.NewString()
	suite.mockWorkTime.On("FindWorkTimeByID", mock.Anything, otherWorkTimeID).Return(&domain.WorkTime{
		WorkTimeID: otherWorkTimeID,
		IsActive:   true,
	}, nil).Maybe()

	updated, err := suite.service.SubmitChange(ctx, dto.SubmitScheduleChangeRequest{
		EmployeeID:    suite.employeeID,
		WorkTimeID:    &otherWorkTimeID,
		EffectiveDate: "2026-05-04",
		Comment:       "second thoughts",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(existing.SubmissionID, updated.SubmissionID)
	suite.False(captured.RefreshOnly)
	suite.Require().NotNil(captured.WorkTimeID)
	suite.Require().NotNil(*captured.WorkTimeID)
	suite.Equal(otherWorkTimeID, **captured.WorkTimeID)
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertSubmission", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestSubmitChange_SameShiftKeepsApprovalProgress() {
	ctx := context.Background()
	existing := suite.submission(domain.SubmissionLvl1Approved)
	suite.expectActiveEmployee()
	suite.expectActiveWorkTime()

	var captured portsrepo.SubmissionPatch
	suite.mockRepo.On("FindOpenSubmission", ctx, suite.employeeID, mock.Anything).Return(existing, nil).Once()
	suite.mockRepo.On("PatchSubmission", ctx, existing.SubmissionID, mock.AnythingOfType("repositories.SubmissionPatch"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(portsrepo.SubmissionPatch)
		}).Return(nil).Once()
	suite.mockRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).Return(existing, nil).Once()

	updated, err := suite.service.SubmitChange(ctx, dto.SubmitScheduleChangeRequest{
		EmployeeID:    suite.employeeID,
		WorkTimeID:    &suite.workTimeID,
		EffectiveDate: "2026-05-04",
		Comment:       "same shift, new reason",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(existing.SubmissionID, updated.SubmissionID)
	suite.True(captured.RefreshOnly)
	suite.Nil(captured.WorkTimeID)
	suite.Require().NotNil(captured.Comment)
	suite.Equal("same shift, new reason", *captured.Comment)
}

func (suite *ScheduleServiceTestSuite) TestSubmitChange_InactiveEmployeeRejected() {
	ctx := context.Background()
	suite.mockEmployee.On("FindEmployeeByID", mock.Anything, suite.employeeID).Return(&domain.Employee{
		EmployeeID: suite.employeeID,
		IsActive:   false,
	}, nil).Once()

	_, err := suite.service.SubmitChange(ctx, dto.SubmitScheduleChangeRequest{
		EmployeeID:    suite.employeeID,
		EffectiveDate: "2026-05-04",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ScheduleServiceTestSuite) TestSubmitChange_WeeklyNeedsRepeatDays() {
	ctx := context.Background()

	_, err := suite.service.SubmitChange(ctx, dto.SubmitScheduleChangeRequest{
		EmployeeID:    suite.employeeID,
		EffectiveDate: "2026-05-04",
		RepeatType:    "WEEKLY",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployee.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestApproveLevel1_MovesPending() {
	ctx := context.Background()
	pending := suite.submission(domain.SubmissionPending)
	suite.expectTx()
	suite.mockRepo.On("FindSubmissionForUpdate", mock.Anything, mock.Anything, pending.SubmissionID).Return(pending, nil).Once()

	var written domain.ScheduleSubmission
	suite.mockRepo.On("UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.AnythingOfType("domain.ScheduleSubmission")).
		Run(func(args mock.Arguments) { written = args.Get(2).(domain.ScheduleSubmission) }).Return(nil).Once()

	approved, err := suite.service.ApproveLevel1(ctx, pending.SubmissionID, suite.approverID)

	suite.Require().NoError(err)
	suite.Equal(domain.SubmissionLvl1Approved, approved.Status)
	suite.Equal(domain.SubmissionLvl1Approved, written.Status)
	suite.Require().NotNil(written.Lvl1ApproverID)
	suite.Equal(suite.approverID, *written.Lvl1ApproverID)
	suite.NotNil(written.Lvl1ApprovedAt)
}

func (suite *ScheduleServiceTestSuite) TestApproveLevel1_TwiceConflicts() {
	ctx := context.Background()
	already := suite.submission(domain.SubmissionLvl1Approved)
	suite.expectTx()
	suite.mockRepo.On("FindSubmissionForUpdate", mock.Anything, mock.Anything, already.SubmissionID).Return(already, nil).Once()

	_, err := suite.service.ApproveLevel1(ctx, already.SubmissionID, suite.approverID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestApproveLevel2_MaterializesAssignment() {
	ctx := context.Background()
	approved := suite.submission(domain.SubmissionLvl1Approved)
	suite.expectTx()
	suite.mockRepo.On("FindSubmissionForUpdate", mock.Anything, mock.Anything, approved.SubmissionID).Return(approved, nil).Once()
	suite.mockRepo.On("UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.AnythingOfType("domain.ScheduleSubmission")).Return(nil).Once()
	suite.mockRepo.On("DeactivateAssignments", mock.Anything, mock.Anything, mock.AnythingOfType("[]repositories.AssignmentKey"), suite.approverID, mock.Anything).Return(nil).Once()

	var assignment domain.ScheduleAssignment
	suite.mockRepo.On("InsertAssignment", mock.Anything, mock.Anything, mock.AnythingOfType("domain.ScheduleAssignment")).
		Run(func(args mock.Arguments) { assignment = args.Get(2).(domain.ScheduleAssignment) }).Return(nil).Once()

	applied, err := suite.service.ApproveLevel2(ctx, approved.SubmissionID, suite.approverID)

	suite.Require().NoError(err)
	suite.Equal(domain.SubmissionApplied, applied.Status)
	suite.NotNil(applied.AppliedAt)
	suite.Equal(approved.SubmissionID, assignment.SubmissionID)
	suite.Equal(suite.workTimeID, assignment.WorkTimeID)
	suite.True(assignment.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestApproveLevel2_ClearingShiftSkipsInsert() {
	ctx := context.Background()
	pending := suite.submission(domain.SubmissionPending)
	pending.WorkTimeID = nil
	suite.expectTx()
	suite.mockRepo.On("FindSubmissionForUpdate", mock.Anything, mock.Anything, pending.SubmissionID).Return(pending, nil).Once()
	suite.mockRepo.On("UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.AnythingOfType("domain.ScheduleSubmission")).Return(nil).Once()
	suite.mockRepo.On("DeactivateAssignments", mock.Anything, mock.Anything, mock.AnythingOfType("[]repositories.AssignmentKey"), suite.approverID, mock.Anything).Return(nil).Once()

	applied, err := suite.service.ApproveLevel2(ctx, pending.SubmissionID, suite.approverID)

	suite.Require().NoError(err)
	suite.Equal(domain.SubmissionApplied, applied.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertAssignment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestReject_TerminalConflicts() {
	ctx := context.Background()
	rejected := suite.submission(domain.SubmissionRejected)
	suite.expectTx()
	suite.mockRepo.On("FindSubmissionForUpdate", mock.Anything, mock.Anything, rejected.SubmissionID).Return(rejected, nil).Once()

	_, err := suite.service.Reject(ctx, rejected.SubmissionID, suite.approverID, "no")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ScheduleServiceTestSuite) TestApproveLevel2Bulk_SingleDeactivationPass() {
	ctx := context.Background()
	first := suite.submission(domain.SubmissionLvl1Approved)
	second := suite.submission(domain.SubmissionLvl1Approved)
	second.EmployeeID = uuid.NewString()
	ids := []string{first.SubmissionID, second.SubmissionID}

	suite.expectTx()
	suite.mockRepo.On("FindSubmissionsForUpdate", mock.Anything, mock.Anything, ids).Return(map[string]domain.ScheduleSubmission{
		first.SubmissionID:  *first,
		second.SubmissionID: *second,
	}, nil).Once()

	var capturedKeys []portsrepo.AssignmentKey
	suite.mockRepo.On("DeactivateAssignments", mock.Anything, mock.Anything, mock.Anything, suite.approverID, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedKeys = args.Get(2).([]portsrepo.AssignmentKey)
		}).Return(nil).Once()
	suite.mockRepo.On("InsertAssignment", mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
	suite.mockRepo.On("UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.AnythingOfType("domain.ScheduleSubmission")).Return(nil).Twice()

	applied, err := suite.service.ApproveLevel2Bulk(ctx, ids, suite.approverID)

	suite.Require().NoError(err)
	suite.Require().Len(applied, 2)
	suite.Require().Len(capturedKeys, 2)
	suite.Equal(first.EmployeeID, capturedKeys[0].EmployeeID)
	suite.Equal(second.EmployeeID, capturedKeys[1].EmployeeID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestApproveLevel2Bulk_AllOrNothing() {
	ctx := context.Background()
	first := suite.submission(domain.SubmissionLvl1Approved)
	second := suite.submission(domain.SubmissionApplied) // Already terminal, must sink the batch.
	ids := []string{first.SubmissionID, second.SubmissionID}

	suite.expectTx()
	suite.mockRepo.On("FindSubmissionsForUpdate", mock.Anything, mock.Anything, ids).Return(map[string]domain.ScheduleSubmission{
		first.SubmissionID:  *first,
		second.SubmissionID: *second,
	}, nil).Once()
	suite.mockRepo.On("UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.AnythingOfType("domain.ScheduleSubmission")).Return(nil).Maybe()
	suite.mockRepo.On("DeactivateAssignments", mock.Anything, mock.Anything, mock.Anything, suite.approverID, mock.Anything).Return(nil).Maybe()
	suite.mockRepo.On("InsertAssignment", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := suite.service.ApproveLevel2Bulk(ctx, ids, suite.approverID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRepo.AssertCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestApproveLevel2Bulk_MissingIDFailsBatch() {
	ctx := context.Background()
	first := suite.submission(domain.SubmissionLvl1Approved)
	missing := uuid.NewString()
	ids := []string{first.SubmissionID, missing}

	suite.expectTx()
	suite.mockRepo.On("FindSubmissionsForUpdate", mock.Anything, mock.Anything, ids).Return(map[string]domain.ScheduleSubmission{
		first.SubmissionID: *first,
	}, nil).Once()
	suite.mockRepo.On("UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.mockRepo.On("DeactivateAssignments", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.mockRepo.On("InsertAssignment", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := suite.service.ApproveLevel2Bulk(ctx, ids, suite.approverID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestRejectBulk_PerItemOutcomes() {
	ctx := context.Background()
	good := suite.submission(domain.SubmissionPending)
	bad := suite.submission(domain.SubmissionApplied)

	suite.mockRepo.On("Begin", mock.Anything).Return(nil, nil)
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil)
	suite.mockRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockRepo.On("FindSubmissionForUpdate", mock.Anything, mock.Anything, good.SubmissionID).Return(good, nil).Once()
	suite.mockRepo.On("FindSubmissionForUpdate", mock.Anything, mock.Anything, bad.SubmissionID).Return(bad, nil).Once()
	suite.mockRepo.On("UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.AnythingOfType("domain.ScheduleSubmission")).Return(nil).Once()

	results := suite.service.RejectBulk(ctx, []string{good.SubmissionID, bad.SubmissionID}, suite.approverID, "cleanup")

	suite.Require().Len(results, 2)
	suite.True(results[0].Success)
	suite.False(results[1].Success)
	suite.Contains(results[1].Message, "conflict")
}

func (suite *ScheduleServiceTestSuite) TestRejectBulk_StoreFailureMasked() {
	ctx := context.Background()
	target := suite.submission(domain.SubmissionPending)

	suite.mockRepo.On("Begin", mock.Anything).Return(nil, nil)
	suite.mockRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockRepo.On("FindSubmissionForUpdate", mock.Anything, mock.Anything, target.SubmissionID).
		Return(nil, fmt.Errorf("%w: connection reset by peer", apperrors.ErrStore)).Once()

	results := suite.service.RejectBulk(ctx, []string{target.SubmissionID}, suite.approverID, "cleanup")

	suite.Require().Len(results, 1)
	suite.False(results[0].Success)
	suite.Equal("internal error", results[0].Message)
	suite.NotContains(results[0].Message, "connection reset")
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
