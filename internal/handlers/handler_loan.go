package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hraxis/hr_payroll_app/internal/core/ports/services"
	"github.com/hraxis/hr_payroll_app/internal/dto"
	"github.com/hraxis/hr_payroll_app/internal/middleware"
)

// loanHandler handles HTTP requests for the loan ledger.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(loanService portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: loanService}
}

// getLoan godoc
// @Summary Get a loan with its derived balance
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Success 200 {object} dto.Response{data=dto.LoanResponse}
// @Failure 404 {object} dto.Response
// @Router /loans/{loanID} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	loan, err := h.loanService.GetLoan(c.Request.Context(), c.Param("loanID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToLoanResponse(loan)))
}

// listLoanEntries godoc
// @Summary List the journal entries of a loan
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param dateUntil query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=[]dto.LoanEntryResponse}
// @Failure 404 {object} dto.Response
// @Router /loans/{loanID}/entries [get]
func (h *loanHandler) listLoanEntries(c *gin.Context) {
	var params dto.ListLoanEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	entries, err := h.loanService.ListLoanEntries(c.Request.Context(), c.Param("loanID"), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToLoanEntryResponses(entries)))
}

// appendLoanEntry godoc
// @Summary Append a journal entry and reconcile the loan
// @Tags loans
// @Accept json
// @Produce json
// @Param loanID path string true "Loan ID"
// @Param entry body dto.CreateLoanEntryRequest true "Entry"
// @Success 201 {object} dto.Response{data=dto.LoanEntryResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /loans/{loanID}/entries [post]
func (h *loanHandler) appendLoanEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLoanEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	entry, err := h.loanService.AppendLoanEntry(c.Request.Context(), c.Param("loanID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Debug("Loan entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToLoanEntryResponse(entry)))
}

// editLoanEntry godoc
// @Summary Edit a journal entry, reversing and reapplying its effect
// @Tags loans
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateLoanEntryRequest true "Changed fields"
// @Success 200 {object} dto.Response{data=dto.LoanEntryResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /loan-entries/{entryID} [put]
func (h *loanHandler) editLoanEntry(c *gin.Context) {
	var req dto.UpdateLoanEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	entry, err := h.loanService.EditLoanEntry(c.Request.Context(), c.Param("entryID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToLoanEntryResponse(entry)))
}

// deleteLoanEntry godoc
// @Summary Delete a journal entry, reversing its effect on the loan
// @Tags loans
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /loan-entries/{entryID} [delete]
func (h *loanHandler) deleteLoanEntry(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.loanService.DeleteLoanEntry(c.Request.Context(), c.Param("entryID"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("entry deleted"))
}

// RegisterLoanRoutes registers loan ledger routes.
func RegisterLoanRoutes(group *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	handler := newLoanHandler(loanService)

	loans := group.Group("/loans")
	{
		loans.GET("/:loanID", handler.getLoan)
		loans.GET("/:loanID/entries", handler.listLoanEntries)
		loans.POST("/:loanID/entries", handler.appendLoanEntry)
	}

	entries := group.Group("/loan-entries")
	{
		entries.PUT("/:entryID", handler.editLoanEntry)
		entries.DELETE("/:entryID", handler.deleteLoanEntry)
	}
}
