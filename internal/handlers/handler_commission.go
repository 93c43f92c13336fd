package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hraxis/hr_payroll_app/internal/core/ports/services"
	"github.com/hraxis/hr_payroll_app/internal/dto"
)

// commissionHandler handles HTTP requests for the commission ledger.
type commissionHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

func newCommissionHandler(commissionService portssvc.CommissionSvcFacade) *commissionHandler {
	return &commissionHandler{commissionService: commissionService}
}

// getCommission godoc
// @Summary Get a commission header with its derived total and classification
// @Tags commissions
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Success 200 {object} dto.Response{data=dto.CommissionResponse}
// @Failure 404 {object} dto.Response
// @Router /commissions/{commissionID} [get]
func (h *commissionHandler) getCommission(c *gin.Context) {
	commission, err := h.commissionService.GetCommission(c.Request.Context(), c.Param("commissionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCommissionResponse(commission)))
}

// listCommissionEntries godoc
// @Summary List the daily entries of a commission
// @Tags commissions
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Success 200 {object} dto.Response{data=[]dto.CommissionEntryResponse}
// @Failure 404 {object} dto.Response
// @Router /commissions/{commissionID}/entries [get]
func (h *commissionHandler) listCommissionEntries(c *gin.Context) {
	entries, err := h.commissionService.ListCommissionEntries(c.Request.Context(), c.Param("commissionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCommissionEntryResponses(entries)))
}

// appendCommissionEntry godoc
// @Summary Append a daily entry and resum the commission total
// @Tags commissions
// @Accept json
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Param entry body dto.CreateCommissionEntryRequest true "Entry"
// @Success 201 {object} dto.Response{data=dto.CommissionEntryResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /commissions/{commissionID}/entries [post]
func (h *commissionHandler) appendCommissionEntry(c *gin.Context) {
	var req dto.CreateCommissionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	entry, err := h.commissionService.AppendCommissionEntry(c.Request.Context(), c.Param("commissionID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToCommissionEntryResponse(entry)))
}

// editCommissionEntry godoc
// @Summary Edit a daily entry and resum the commission total
// @Tags commissions
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateCommissionEntryRequest true "Changed fields"
// @Success 200 {object} dto.Response{data=dto.CommissionEntryResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /commission-entries/{entryID} [put]
func (h *commissionHandler) editCommissionEntry(c *gin.Context) {
	var req dto.UpdateCommissionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	entry, err := h.commissionService.EditCommissionEntry(c.Request.Context(), c.Param("entryID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCommissionEntryResponse(entry)))
}

// deleteCommissionEntry godoc
// @Summary Delete a daily entry and resum the commission total
// @Tags commissions
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /commission-entries/{entryID} [delete]
func (h *commissionHandler) deleteCommissionEntry(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.commissionService.DeleteCommissionEntry(c.Request.Context(), c.Param("entryID"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("entry deleted"))
}

// updateCommissionRange godoc
// @Summary Replace the commission's date range and total, regenerating daily entries
// @Tags commissions
// @Accept json
// @Produce json
// @Param commissionID path string true "Commission ID"
// @Param range body dto.UpdateCommissionRangeRequest true "New range and total"
// @Success 200 {object} dto.Response{data=dto.CommissionResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /commissions/{commissionID}/range [put]
func (h *commissionHandler) updateCommissionRange(c *gin.Context) {
	var req dto.UpdateCommissionRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	commission, err := h.commissionService.UpdateCommissionRange(c.Request.Context(), c.Param("commissionID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCommissionResponse(commission)))
}

// RegisterCommissionRoutes registers commission ledger routes.
func RegisterCommissionRoutes(group *gin.RouterGroup, commissionService portssvc.CommissionSvcFacade) {
	handler := newCommissionHandler(commissionService)

	commissions := group.Group("/commissions")
	{
		commissions.GET("/:commissionID", handler.getCommission)
		commissions.GET("/:commissionID/entries", handler.listCommissionEntries)
		commissions.POST("/:commissionID/entries", handler.appendCommissionEntry)
		commissions.PUT("/:commissionID/range", handler.updateCommissionRange)
	}

	entries := group.Group("/commission-entries")
	{
		entries.PUT("/:entryID", handler.editCommissionEntry)
		entries.DELETE("/:entryID", handler.deleteCommissionEntry)
	}
}
