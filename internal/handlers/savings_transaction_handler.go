package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hucha/internal/models"
	"hucha/internal/money"
	"hucha/internal/services"
)

// SavingsTransactionHandler handles ledger-entry requests
type SavingsTransactionHandler struct {
	ledgerService services.SavingsTransactionServicer
}

// NewSavingsTransactionHandler creates a new SavingsTransactionHandler
func NewSavingsTransactionHandler(ledgerService services.SavingsTransactionServicer) *SavingsTransactionHandler {
	return &SavingsTransactionHandler{ledgerService: ledgerService}
}

// CreateSavingsTransactionRequest represents the request payload for a
// deposit or withdrawal
type CreateSavingsTransactionRequest struct {
	SavingsFundID uint         `json:"savings_fund_id" binding:"required"`
	Type          string       `json:"type" binding:"required,savings_transaction_type"`
	Amount        money.Amount `json:"amount" binding:"required,gt=0"`
	Description   string       `json:"description"`
	Date          string       `json:"date" binding:"required"`
}

// GetUserSavingsTransactions lists the user's ledger entries with fund info
// @Summary     List savings transactions
// @Description Get all deposits and withdrawals of the authenticated user with the fund's name and color
// @Tags        savings-transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "List of savings transactions"
// @Failure     401 {object} map[string]interface{} "Unauthorized"
// @Router      /savings-transactions [get]
func (h *SavingsTransactionHandler) GetUserSavingsTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.ledgerService.GetUserSavingsTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		data = append(data, gin.H{
			"id":              entry.ID,
			"savings_fund_id": entry.SavingsFundID,
			"fund_name":       entry.SavingsFund.Name,
			"fund_color":      entry.SavingsFund.Color,
			"type":            entry.Type,
			"amount":          entry.Amount,
			"description":     entry.Description,
			"date":            entry.Date,
			"created_at":      entry.CreatedAt,
		})
	}

	respondSuccess(c, http.StatusOK, "", data)
}

// CreateSavingsTransaction applies a deposit or withdrawal to a fund
// @Summary     Create a savings transaction
// @Description Apply a deposit or withdrawal; the ledger entry and the fund's balance commit atomically
// @Tags        savings-transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSavingsTransactionRequest true "Savings transaction details"
// @Success     201 {object} map[string]interface{} "Savings transaction created"
// @Failure     404 {object} map[string]interface{} "Fund not found or not owned"
// @Failure     422 {object} map[string]interface{} "Validation error or insufficient funds"
// @Failure     500 {object} map[string]interface{} "Atomic apply failed"
// @Router      /savings-transactions [post]
func (h *SavingsTransactionHandler) CreateSavingsTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSavingsTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entry, fund, err := h.ledgerService.Apply(
		userID,
		req.SavingsFundID,
		models.SavingsTransactionType(req.Type),
		req.Amount,
		req.Description,
		date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Transacción de ahorro creada exitosamente", gin.H{
		"id":              entry.ID,
		"savings_fund_id": entry.SavingsFundID,
		"type":            entry.Type,
		"amount":          entry.Amount,
		"description":     entry.Description,
		"date":            entry.Date,
		"created_at":      entry.CreatedAt,
		"fund_balance":    fund.Balance,
	})
}
