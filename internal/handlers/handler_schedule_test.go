package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/core/domain"
	portssvc "github.com/hraxis/hr_payroll_app/internal/core/ports/services"
	"github.com/hraxis/hr_payroll_app/internal/dto"
	"github.com/hraxis/hr_payroll_app/internal/handlers"
	"github.com/hraxis/hr_payroll_app/internal/middleware"
)

// --- Mock ScheduleService ---
type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) SubmitChange(ctx context.Context, req dto.SubmitScheduleChangeRequest, userID string) (*domain.ScheduleSubmission, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleSubmission), args.Error(1)
}
func (m *MockScheduleService) ApproveLevel1(ctx context.Context, submissionID string, approverID string) (*domain.ScheduleSubmission, error) {
	args := m.Called(ctx, submissionID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleSubmission), args.Error(1)
}
func (m *MockScheduleService) ApproveLevel2(ctx context.Context, submissionID string, approverID string) (*domain.ScheduleSubmission, error) {
	args := m.Called(ctx, submissionID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleSubmission), args.Error(1)
}
func (m *MockScheduleService) Reject(ctx context.Context, submissionID string, approverID string, comment string) (*domain.ScheduleSubmission, error) {
	args := m.Called(ctx, submissionID, approverID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleSubmission), args.Error(1)
}
func (m *MockScheduleService) ApproveLevel2Bulk(ctx context.Context, submissionIDs []string, approverID string) ([]domain.ScheduleSubmission, error) {
	args := m.Called(ctx, submissionIDs, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleSubmission), args.Error(1)
}
func (m *MockScheduleService) RejectBulk(ctx context.Context, submissionIDs []string, approverID string, comment string) []dto.BulkRejectResult {
	args := m.Called(ctx, submissionIDs, approverID, comment)
	return args.Get(0).([]dto.BulkRejectResult)
}
func (m *MockScheduleService) ListSubmissions(ctx context.Context, params dto.ListSubmissionsParams) ([]domain.ScheduleSubmission, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleSubmission), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ScheduleSvcFacade = (*MockScheduleService)(nil)

// --- Test Suite ---
type ScheduleHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockScheduleService *MockScheduleService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT carrying the given approval level.
func (suite *ScheduleHandlerTestSuite) generateTestToken(userID string, approvalLevel int) string {
	claims := middleware.CapabilityClaims{
		ApprovalLevel: approvalLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "hrp-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockScheduleService = new(MockScheduleService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterScheduleRoutes(v1, suite.mockScheduleService)
}

func (suite *ScheduleHandlerTestSuite) doJSON(method, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.NoError(err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ScheduleHandlerTestSuite) TestSubmitChange_Success() {
	employeeID := uuid.NewString()
	userID := uuid.NewString()
	workTimeID := uuid.NewString()

	reqBody := dto.SubmitScheduleChangeRequest{
		EmployeeID:    employeeID,
		WorkTimeID:    &workTimeID,
		EffectiveDate: "2026-09-01",
	}
	created := &domain.ScheduleSubmission{
		SubmissionID:  uuid.NewString(),
		EmployeeID:    employeeID,
		WorkTimeID:    &workTimeID,
		EffectiveDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		RepeatType:    domain.RepeatNone,
		Status:        domain.SubmissionPending,
	}

	suite.mockScheduleService.On("SubmitChange",
		mock.Anything,
		mock.MatchedBy(func(r dto.SubmitScheduleChangeRequest) bool {
			return r.EmployeeID == employeeID && r.EffectiveDate == "2026-09-01"
		}),
		userID,
	).Return(created, nil).Once()

	token := suite.generateTestToken(userID, 0)
	w := suite.doJSON(http.MethodPost, "/api/v1/schedule-submissions", reqBody, token)

	suite.Equal(http.StatusCreated, w.Code)

	var envelope struct {
		Success bool                   `json:"success"`
		Data    dto.SubmissionResponse `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.True(envelope.Success)
	suite.Equal(created.SubmissionID, envelope.Data.SubmissionID)
	suite.Equal("PENDING", envelope.Data.Status)

	suite.mockScheduleService.AssertExpectations(suite.T())
}

func (suite *ScheduleHandlerTestSuite) TestSubmitChange_MissingEmployeeIDRejected() {
	token := suite.generateTestToken(uuid.NewString(), 0)
	reqBody := map[string]any{"effectiveDate": "2026-09-01"}

	w := suite.doJSON(http.MethodPost, "/api/v1/schedule-submissions", reqBody, token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockScheduleService.AssertNotCalled(suite.T(), "SubmitChange")
}

func (suite *ScheduleHandlerTestSuite) TestApproveLevel1_InsufficientLevelForbidden() {
	submissionID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString(), 0)

	url := fmt.Sprintf("/api/v1/schedule-submissions/%s/approve-lvl1", submissionID)
	w := suite.doJSON(http.MethodPost, url, nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockScheduleService.AssertNotCalled(suite.T(), "ApproveLevel1")
}

func (suite *ScheduleHandlerTestSuite) TestApproveLevel2_Level1TokenForbidden() {
	submissionID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString(), 1)

	url := fmt.Sprintf("/api/v1/schedule-submissions/%s/approve", submissionID)
	w := suite.doJSON(http.MethodPost, url, nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockScheduleService.AssertNotCalled(suite.T(), "ApproveLevel2")
}

func (suite *ScheduleHandlerTestSuite) TestApproveLevel2_ConflictMapsTo409() {
	submissionID := uuid.NewString()
	approverID := uuid.NewString()

	suite.mockScheduleService.On("ApproveLevel2", mock.Anything, submissionID, approverID).
		Return(nil, fmt.Errorf("%w: cannot move submission %s from APPLIED to APPLIED", apperrors.ErrConflict, submissionID)).Once()

	token := suite.generateTestToken(approverID, 2)
	url := fmt.Sprintf("/api/v1/schedule-submissions/%s/approve", submissionID)
	w := suite.doJSON(http.MethodPost, url, nil, token)

	suite.Equal(http.StatusConflict, w.Code)

	var envelope dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	suite.NoError(err)
	suite.False(envelope.Success)

	suite.mockScheduleService.AssertExpectations(suite.T())
}

func (suite *ScheduleHandlerTestSuite) TestReject_EmptyBodySucceeds() {
	submissionID := uuid.NewString()
	approverID := uuid.NewString()
	rejected := &domain.ScheduleSubmission{
		SubmissionID: submissionID,
		EmployeeID:   uuid.NewString(),
		Status:       domain.SubmissionRejected,
	}

	suite.mockScheduleService.On("Reject", mock.Anything, submissionID, approverID, "").
		Return(rejected, nil).Once()

	token := suite.generateTestToken(approverID, 1)
	url := fmt.Sprintf("/api/v1/schedule-submissions/%s/reject", submissionID)
	w := suite.doJSON(http.MethodPost, url, nil, token)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockScheduleService.AssertExpectations(suite.T())
}

func (suite *ScheduleHandlerTestSuite) TestBulkApprove_NotFoundMapsTo404() {
	submissionIDs := []string{uuid.NewString(), uuid.NewString()}
	approverID := uuid.NewString()

	suite.mockScheduleService.On("ApproveLevel2Bulk", mock.Anything, submissionIDs, approverID).
		Return(nil, fmt.Errorf("%w: submission %s", apperrors.ErrNotFound, submissionIDs[1])).Once()

	token := suite.generateTestToken(approverID, 2)
	reqBody := dto.BulkSubmissionRequest{SubmissionIDs: submissionIDs}
	w := suite.doJSON(http.MethodPost, "/api/v1/schedule-submissions/bulk/approve", reqBody, token)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockScheduleService.AssertExpectations(suite.T())
}

func (suite *ScheduleHandlerTestSuite) TestListSubmissions_MissingTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/schedule-submissions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockScheduleService.AssertNotCalled(suite.T(), "ListSubmissions")
}

// --- Run Test Suite ---
func TestScheduleHandler(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
