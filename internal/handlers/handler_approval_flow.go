package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
	"github.com/SscSPs/expense_approval_app/internal/dto"
	"github.com/SscSPs/expense_approval_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// approvalFlowHandler handles HTTP requests related to approval flows.
type approvalFlowHandler struct {
	baseHandler
	flowService portssvc.ApprovalFlowSvcFacade
}

func newApprovalFlowHandler(fs portssvc.ApprovalFlowSvcFacade, exposeErrorDetails bool) *approvalFlowHandler {
	return &approvalFlowHandler{
		baseHandler: baseHandler{exposeErrorDetails: exposeErrorDetails},
		flowService: fs,
	}
}

// registerApprovalFlowRoutes registers the admin routes for approval flows.
func registerApprovalFlowRoutes(rg *gin.RouterGroup, flowService portssvc.ApprovalFlowSvcFacade, exposeErrorDetails bool) {
	h := newApprovalFlowHandler(flowService, exposeErrorDetails)

	flows := rg.Group("/approval-flows")
	{
		flows.POST("", h.createFlow)
		flows.GET("", h.listFlows)
		flows.PUT("/:flowID", h.updateFlow)
		flows.DELETE("/:flowID", h.deactivateFlow)
	}
}

// createFlow godoc
// @Summary Create an approval flow
// @Description Creates an active approval flow for the caller's company. Admin only. The amount range must not overlap another active flow.
// @Tags approval-flows
// @Accept  json
// @Produce  json
// @Param   flow body dto.CreateApprovalFlowRequest true "Approval flow details"
// @Success 201 {object} dto.ApprovalFlowResponse
// @Failure 400 {object} dto.ErrorResponse "ValidationError, InvalidLevels or OverlappingRange"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /approval-flows [post]
func (h *approvalFlowHandler) createFlow(c *gin.Context) {
	var req dto.CreateApprovalFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	flow, err := h.flowService.CreateFlow(c.Request.Context(), actorID, req)
	if err != nil {
		h.respondError(c, err, "Failed to create approval flow")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Approval flow created", slog.String("flow_id", flow.FlowID))
	c.JSON(http.StatusCreated, dto.ToApprovalFlowResponse(flow))
}

// listFlows godoc
// @Summary List approval flows
// @Description Lists every approval flow of the caller's company, active or not, ordered by minimum amount.
// @Tags approval-flows
// @Produce  json
// @Success 200 {object} dto.ListApprovalFlowsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is inactive"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /approval-flows [get]
func (h *approvalFlowHandler) listFlows(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	flows, err := h.flowService.ListFlows(c.Request.Context(), actorID)
	if err != nil {
		h.respondError(c, err, "Failed to list approval flows")
		return
	}

	c.JSON(http.StatusOK, dto.ToListApprovalFlowsResponse(flows))
}

// updateFlow godoc
// @Summary Update an approval flow
// @Description Applies a partial update to an approval flow. Expenses already in a workflow are not affected. Admin only.
// @Tags approval-flows
// @Accept  json
// @Produce  json
// @Param   flowID path string true "Approval flow ID"
// @Param   flow body dto.UpdateApprovalFlowRequest true "Fields to change"
// @Success 200 {object} dto.ApprovalFlowResponse
// @Failure 400 {object} dto.ErrorResponse "ValidationError, InvalidLevels or OverlappingRange"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} dto.ErrorResponse "Flow not found"
// @Failure 409 {object} dto.ErrorResponse "Flow changed concurrently"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /approval-flows/{flowID} [put]
func (h *approvalFlowHandler) updateFlow(c *gin.Context) {
	flowID := c.Param("flowID")

	var req dto.UpdateApprovalFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	flow, err := h.flowService.UpdateFlow(c.Request.Context(), actorID, flowID, req)
	if err != nil {
		h.respondError(c, err, "Failed to update approval flow")
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalFlowResponse(flow))
}

// deactivateFlow godoc
// @Summary Deactivate an approval flow
// @Description Marks an approval flow inactive. Flows are never deleted. Admin only.
// @Tags approval-flows
// @Param   flowID path string true "Approval flow ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} dto.ErrorResponse "Flow not found"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /approval-flows/{flowID} [delete]
func (h *approvalFlowHandler) deactivateFlow(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.flowService.DeactivateFlow(c.Request.Context(), actorID, c.Param("flowID")); err != nil {
		h.respondError(c, err, "Failed to deactivate approval flow")
		return
	}

	c.Status(http.StatusNoContent)
}
