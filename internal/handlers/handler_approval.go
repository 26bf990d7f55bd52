package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
	"github.com/SscSPs/expense_approval_app/internal/dto"
	"github.com/SscSPs/expense_approval_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// approvalHandler handles approver decisions and the approver inbox.
type approvalHandler struct {
	baseHandler
	approvalService portssvc.ApprovalSvcFacade
}

func newApprovalHandler(as portssvc.ApprovalSvcFacade, exposeErrorDetails bool) *approvalHandler {
	return &approvalHandler{
		baseHandler:     baseHandler{exposeErrorDetails: exposeErrorDetails},
		approvalService: as,
	}
}

func registerApprovalRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade, exposeErrorDetails bool) {
	h := newApprovalHandler(approvalService, exposeErrorDetails)

	approvals := rg.Group("/approvals")
	{
		approvals.GET("/pending", h.listPending)
		approvals.POST("/:expenseID/approve", h.approve)
		approvals.POST("/:expenseID/reject", h.reject)
	}
}

// listPending godoc
// @Summary List pending approvals
// @Description Lists the expenses waiting on the caller at their current level, oldest first. Managers and admins only.
// @Tags approvals
// @Produce  json
// @Success 200 {object} dto.ListPendingApprovalsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller cannot approve"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /approvals/pending [get]
func (h *approvalHandler) listPending(c *gin.Context) {
	approverID, ok := requireUserID(c)
	if !ok {
		return
	}

	pending, err := h.approvalService.ListPendingApprovals(c.Request.Context(), approverID)
	if err != nil {
		h.respondError(c, err, "Failed to list pending approvals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPendingApprovalsResponse(pending))
}

// approve godoc
// @Summary Approve an expense
// @Description Records the caller's approval at the expense's current level. The expense advances to the next level or becomes approved.
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   decision body dto.ApprovalDecisionRequest false "Optional comments"
// @Success 200 {object} dto.ApprovalResultResponse
// @Failure 400 {object} dto.ErrorResponse "StaleApprovalLevel"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is inactive or cannot approve"
// @Failure 404 {object} dto.ErrorResponse "NotFoundOrNotAuthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /approvals/{expenseID}/approve [post]
func (h *approvalHandler) approve(c *gin.Context) {
	var req dto.ApprovalDecisionRequest
	// The body is optional for approvals.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.bindError(c, err)
			return
		}
	}

	approverID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.approvalService.Approve(c.Request.Context(), c.Param("expenseID"), approverID, req.Comments)
	if err != nil {
		h.respondError(c, err, "Failed to approve expense")
		return
	}

	h.logDecision(c, expense)
	c.JSON(http.StatusOK, dto.ToApprovalResultResponse(expense))
}

// reject godoc
// @Summary Reject an expense
// @Description Records the caller's rejection. Comments are required. Every remaining approval level is closed and the expense becomes rejected.
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   decision body dto.RejectionRequest true "Rejection reason"
// @Success 200 {object} dto.ApprovalResultResponse
// @Failure 400 {object} dto.ErrorResponse "MissingComments or StaleApprovalLevel"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is inactive or cannot approve"
// @Failure 404 {object} dto.ErrorResponse "NotFoundOrNotAuthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /approvals/{expenseID}/reject [post]
func (h *approvalHandler) reject(c *gin.Context) {
	var req dto.RejectionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.bindError(c, err)
			return
		}
	}

	approverID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.approvalService.Reject(c.Request.Context(), c.Param("expenseID"), approverID, req.Comments)
	if err != nil {
		h.respondError(c, err, "Failed to reject expense")
		return
	}

	h.logDecision(c, expense)
	c.JSON(http.StatusOK, dto.ToApprovalResultResponse(expense))
}

func (h *approvalHandler) logDecision(c *gin.Context, expense *domain.Expense) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Approval decision recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("status", string(expense.Status)),
		slog.Int("level", expense.CurrentApprovalLevel))
}
