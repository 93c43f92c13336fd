package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hraxis/hr_payroll_app/internal/core/ports/services"
	"github.com/hraxis/hr_payroll_app/internal/dto"
	"github.com/hraxis/hr_payroll_app/internal/middleware"
)

// scheduleHandler handles HTTP requests for the schedule approval workflow.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

func newScheduleHandler(scheduleService portssvc.ScheduleSvcFacade) *scheduleHandler {
	return &scheduleHandler{scheduleService: scheduleService}
}

// listSubmissions godoc
// @Summary List schedule submissions
// @Tags schedule
// @Produce json
// @Param employeeID query string false "Employee filter"
// @Param branchID query string false "Branch filter"
// @Param status query string false "Status filter"
// @Param dateFrom query string false "Effective date lower bound (YYYY-MM-DD)"
// @Param dateUntil query string false "Effective date upper bound (YYYY-MM-DD)"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} dto.Response{data=[]dto.SubmissionResponse}
// @Router /schedule-submissions [get]
func (h *scheduleHandler) listSubmissions(c *gin.Context) {
	var params dto.ListSubmissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	submissions, err := h.scheduleService.ListSubmissions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSubmissionResponses(submissions)))
}

// submitChange godoc
// @Summary Submit a schedule change for approval
// @Description Creates a pending submission, or updates the open submission for the same employee and effective date.
// @Tags schedule
// @Accept json
// @Produce json
// @Param submission body dto.SubmitScheduleChangeRequest true "Proposed change"
// @Success 201 {object} dto.Response{data=dto.SubmissionResponse}
// @Failure 400 {object} dto.Response
// @Router /schedule-submissions [post]
func (h *scheduleHandler) submitChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitScheduleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	submission, err := h.scheduleService.SubmitChange(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Debug("Schedule change submitted", slog.String("submission_id", submission.SubmissionID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToSubmissionResponse(submission)))
}

// approveLevel1 godoc
// @Summary First-level approve a pending submission
// @Tags schedule
// @Produce json
// @Param submissionID path string true "Submission ID"
// @Success 200 {object} dto.Response{data=dto.SubmissionResponse}
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /schedule-submissions/{submissionID}/approve-lvl1 [post]
func (h *scheduleHandler) approveLevel1(c *gin.Context) {
	if !requireApprovalLevel(c, 1) {
		return
	}
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	submission, err := h.scheduleService.ApproveLevel1(c.Request.Context(), c.Param("submissionID"), approverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSubmissionResponse(submission)))
}

// approveLevel2 godoc
// @Summary Apply a submission, materializing the schedule assignment
// @Tags schedule
// @Produce json
// @Param submissionID path string true "Submission ID"
// @Success 200 {object} dto.Response{data=dto.SubmissionResponse}
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /schedule-submissions/{submissionID}/approve [post]
func (h *scheduleHandler) approveLevel2(c *gin.Context) {
	if !requireApprovalLevel(c, 2) {
		return
	}
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	submission, err := h.scheduleService.ApproveLevel2(c.Request.Context(), c.Param("submissionID"), approverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSubmissionResponse(submission)))
}

// reject godoc
// @Summary Reject a non-terminal submission
// @Tags schedule
// @Accept json
// @Produce json
// @Param submissionID path string true "Submission ID"
// @Param body body dto.RejectSubmissionRequest false "Reviewer comment"
// @Success 200 {object} dto.Response{data=dto.SubmissionResponse}
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /schedule-submissions/{submissionID}/reject [post]
func (h *scheduleHandler) reject(c *gin.Context) {
	if !requireApprovalLevel(c, 1) {
		return
	}
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.RejectSubmissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	submission, err := h.scheduleService.Reject(c.Request.Context(), c.Param("submissionID"), approverID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSubmissionResponse(submission)))
}

// bulkApprove godoc
// @Summary Apply several submissions in one transaction
// @Description All-or-nothing: any failure rolls back the whole batch.
// @Tags schedule
// @Accept json
// @Produce json
// @Param body body dto.BulkSubmissionRequest true "Submission ids"
// @Success 200 {object} dto.Response{data=[]dto.SubmissionResponse}
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /schedule-submissions/bulk/approve [post]
func (h *scheduleHandler) bulkApprove(c *gin.Context) {
	if !requireApprovalLevel(c, 2) {
		return
	}
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.BulkSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	applied, err := h.scheduleService.ApproveLevel2Bulk(c.Request.Context(), req.SubmissionIDs, approverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSubmissionResponses(applied)))
}

// bulkReject godoc
// @Summary Reject several submissions with per-item outcomes
// @Tags schedule
// @Accept json
// @Produce json
// @Param body body dto.BulkSubmissionRequest true "Submission ids and comment"
// @Success 200 {object} dto.Response{data=[]dto.BulkRejectResult}
// @Failure 403 {object} dto.Response
// @Router /schedule-submissions/bulk/reject [post]
func (h *scheduleHandler) bulkReject(c *gin.Context) {
	if !requireApprovalLevel(c, 1) {
		return
	}
	approverID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.BulkSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	results := h.scheduleService.RejectBulk(c.Request.Context(), req.SubmissionIDs, approverID, req.Comment)
	c.JSON(http.StatusOK, dto.OK(results))
}

// RegisterScheduleRoutes registers approval workflow routes.
func RegisterScheduleRoutes(group *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	handler := newScheduleHandler(scheduleService)

	submissions := group.Group("/schedule-submissions")
	{
		submissions.GET("", handler.listSubmissions)
		submissions.POST("", handler.submitChange)
		submissions.POST("/bulk/approve", handler.bulkApprove)
		submissions.POST("/bulk/reject", handler.bulkReject)
		submissions.POST("/:submissionID/approve-lvl1", handler.approveLevel1)
		submissions.POST("/:submissionID/approve", handler.approveLevel2)
		submissions.POST("/:submissionID/reject", handler.reject)
	}
}
