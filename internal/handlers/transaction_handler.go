package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hucha/internal/models"
	"hucha/internal/money"
	"hucha/internal/services"
)

// TransactionHandler handles general transaction requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Type          string       `json:"type" binding:"required,transaction_type"`
	Amount        money.Amount `json:"amount" binding:"required,gt=0"`
	Category      string       `json:"category" binding:"required,max=255"`
	Description   string       `json:"description"`
	Date          string       `json:"date" binding:"required"`
	SavingsFundID *uint        `json:"savings_fund_id"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction
type UpdateTransactionRequest struct {
	ID            uint          `json:"id" binding:"required"`
	Type          *string       `json:"type" binding:"omitempty,transaction_type"`
	Amount        *money.Amount `json:"amount" binding:"omitempty,gt=0"`
	Category      *string       `json:"category" binding:"omitempty,max=255"`
	Description   *string       `json:"description"`
	Date          *string       `json:"date"`
	SavingsFundID *uint         `json:"savings_fund_id"`
}

// DeleteTransactionRequest represents the request payload for deleting a transaction
type DeleteTransactionRequest struct {
	ID uint `json:"id" binding:"required"`
}

// transactionData shapes a transaction for the response envelope.
func transactionData(t *models.Transaction) gin.H {
	return gin.H{
		"id":              t.ID,
		"type":            t.Type,
		"amount":          t.Amount,
		"category":        t.Category,
		"description":     t.Description,
		"date":            t.Date,
		"savings_fund_id": t.SavingsFundID,
		"created_at":      t.CreatedAt,
	}
}

// GetUserTransactions lists the user's transactions, date descending
// @Summary     List transactions
// @Description Get all transactions of the authenticated user, date descending
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "List of transactions"
// @Failure     401 {object} map[string]interface{} "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data := make([]gin.H, 0, len(transactions))
	for i := range transactions {
		data = append(data, transactionData(&transactions[i]))
	}

	respondSuccess(c, http.StatusOK, "", data)
}

// CreateTransaction creates a new income or expense record
// @Summary     Create a transaction
// @Description Create an income or expense record; an optional savings_fund_id links a fund without affecting its balance
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} map[string]interface{} "Transaction created"
// @Failure     404 {object} map[string]interface{} "Referenced fund not found or not owned"
// @Failure     422 {object} map[string]interface{} "Validation error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(
		userID,
		models.TransactionType(req.Type),
		req.Amount,
		req.Category,
		req.Description,
		date,
		req.SavingsFundID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Transacción creada exitosamente", transactionData(transaction))
}

// UpdateTransaction partially updates a transaction
// @Summary     Update a transaction
// @Description Update any of a transaction's fields; a new fund reference is ownership-checked
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Transaction updated"
// @Failure     404 {object} map[string]interface{} "Not found or not owned"
// @Failure     422 {object} map[string]interface{} "Validation error"
// @Router      /transactions/update [post]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	fields := services.TransactionUpdateFields{
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		SavingsFundID: req.SavingsFundID,
	}
	if req.Type != nil {
		txType := models.TransactionType(*req.Type)
		fields.Type = &txType
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		fields.Date = &date
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, req.ID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	body := transactionData(transaction)
	delete(body, "created_at")
	body["updated_at"] = transaction.UpdatedAt
	respondSuccess(c, http.StatusOK, "Transacción actualizada exitosamente", body)
}

// DeleteTransaction deletes a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction; no cascades and no balance effect
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteTransactionRequest true "Transaction id"
// @Success     200 {object} map[string]interface{} "Transaction deleted"
// @Failure     404 {object} map[string]interface{} "Not found or not owned"
// @Router      /transactions/delete [post]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DeleteTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, req.ID); err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Transacción eliminada exitosamente", nil)
}
