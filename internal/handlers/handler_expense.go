package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_approval_app/internal/core/ports/services"
	"github.com/SscSPs/expense_approval_app/internal/dto"
	"github.com/SscSPs/expense_approval_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	baseHandler
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade, exposeErrorDetails bool) *expenseHandler {
	return &expenseHandler{
		baseHandler:    baseHandler{exposeErrorDetails: exposeErrorDetails},
		expenseService: es,
	}
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, exposeErrorDetails bool) {
	h := newExpenseHandler(expenseService, exposeErrorDetails)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpense)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Submit an expense
// @Description Submits an expense. When an active approval flow covers the amount the expense enters its approval chain, otherwise it stays pending.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "ValidationError or NoApproverAvailable"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	submitterID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), submitterID, req)
	if err != nil {
		h.respondError(c, err, "Failed to submit expense")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expense submitted",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("status", string(expense.Status)))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists the expenses visible to the caller: employees see their own, managers add their direct reports, admins see the whole company.
// @Tags expenses
// @Produce  json
// @Param   status query string false "Status filter" Enums(pending, processing, approved, rejected)
// @Param   category query string false "Category filter"
// @Param   from query string false "Earliest expense date (YYYY-MM-DD)"
// @Param   to query string false "Latest expense date (YYYY-MM-DD)"
// @Param   limit query int false "Page size (default 50, max 200)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expenses, nextToken, err := h.expenseService.ListExpenses(c.Request.Context(), userID, params)
	if err != nil {
		h.respondError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses, nextToken))
}

// getExpense godoc
// @Summary Get an expense
// @Description Returns an expense with its approval history ordered by level.
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not visible to the caller"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 500 {object} dto.ErrorResponse "Internal error"
// @Security BearerAuth
// @Router /expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, ledger, err := h.expenseService.GetExpense(c.Request.Context(), userID, c.Param("expenseID"))
	if err != nil {
		h.respondError(c, err, "Failed to get expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseDetailResponse(expense, ledger))
}

// updateExpense godoc
// @Summary Update a pending expense
// @Description Edits an expense of the caller that has not entered an approval workflow.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or expense not pending"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the expense"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Failure 409 {object} dto.ErrorResponse "Expense changed concurrently"
// @Security BearerAuth
// @Router /expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, c.Param("expenseID"), req)
	if err != nil {
		h.respondError(c, err, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete a pending expense
// @Description Deletes an expense of the caller that has not entered an approval workflow.
// @Tags expenses
// @Param   expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Expense not pending"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller does not own the expense"
// @Failure 404 {object} dto.ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, c.Param("expenseID")); err != nil {
		h.respondError(c, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}
