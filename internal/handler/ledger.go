package handler

import (
	"net/http"
	"strconv"

	"sportsbook-settlement/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const maxPageSize = 100

// CreateTransaction
// @Summary Append a manual ledger transaction
// @Description Deposits, withdrawals and bonuses made outside of betting. An idempotency key makes retries safe.
// @Tags transactions
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param X-User-Role header string true "Caller role" Enums(admin)
// @Param id path string true "User ID"
// @Param transaction body model.TransactionRequest true "Transaction details"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Router /admin/users/{id}/transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req model.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.handleError(c, model.ErrInvalidAmount)
		return
	}
	status := req.Status
	if status == "" {
		status = string(model.StatusSuccess)
	}

	trans, err := h.ledgerService.Append(c.Request.Context(), &model.AppendRequest{
		UserID:         c.Param("id"),
		Type:           model.TransactionType(req.Type),
		Amount:         amount,
		Status:         model.TransactionStatus(status),
		Category:       "manual",
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trans)
}

// UpdateTransactionStatus
// @Summary Move a pending transaction to success or failed
// @Tags transactions
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param X-User-Role header string true "Caller role" Enums(admin)
// @Param id path string true "Transaction ID"
// @Param status body model.UpdateStatusRequest true "New status"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Failure 409 {object} model.ErrorResponse "Status is terminal"
// @Router /admin/transactions/{id}/status [patch]
func (h *Handler) UpdateTransactionStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	trans, err := h.ledgerService.MarkStatus(c.Request.Context(), c.Param("id"), model.TransactionStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trans)
}

// GetBalance
// @Summary Get user balance
// @Description Returns the balance folded from the user's successful transactions
// @Tags users
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param id path string true "User ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID := c.Param("id")
	if !canAccessUser(c, userID) {
		forbidden(c)
		return
	}

	balance, err := h.ledgerService.GetDisplayBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.BalanceResponse{
		UserID:  userID,
		Balance: balance.StringFixed(2),
	})
}

// GetTransactionsByUser
// @Summary Get user transactions
// @Description Returns a paginated list of transactions for a user, newest first
// @Tags users
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param id path string true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/transactions [get]
func (h *Handler) GetTransactionsByUser(c *gin.Context) {
	userID := c.Param("id")
	if !canAccessUser(c, userID) {
		forbidden(c)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > maxPageSize {
		badRequest(c, "limit must be between 1 and 100")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(c, "offset must not be negative")
		return
	}

	transactions, err := h.ledgerService.GetTransactionsByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Limit:        limit,
		Offset:       offset,
	})
}

// GetStatusHistory
// @Summary Get the status history of a transaction
// @Tags transactions
// @Produce json
// @Param X-User-ID header string true "Caller id"
// @Param X-User-Role header string true "Caller role" Enums(admin)
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.StatusHistoryResponse
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Router /transactions/{id}/history [get]
func (h *Handler) GetStatusHistory(c *gin.Context) {
	transactionID := c.Param("id")
	history, err := h.ledgerService.GetStatusHistory(c.Request.Context(), transactionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StatusHistoryResponse{
		TransactionID: transactionID,
		History:       history,
	})
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, model.ErrorResponse{
		Error: "not allowed to access this user",
		Code:  "FORBIDDEN",
	})
}
