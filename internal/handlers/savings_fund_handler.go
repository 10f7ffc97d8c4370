package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hucha/internal/services"
)

// SavingsFundHandler handles savings-fund requests
type SavingsFundHandler struct {
	fundService services.SavingsFundServicer
}

// NewSavingsFundHandler creates a new SavingsFundHandler
func NewSavingsFundHandler(fundService services.SavingsFundServicer) *SavingsFundHandler {
	return &SavingsFundHandler{fundService: fundService}
}

// CreateSavingsFundRequest represents the request payload for creating a fund
type CreateSavingsFundRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"required,max=7,hex_color"`
}

// UpdateSavingsFundRequest represents the request payload for updating a fund.
// The balance is not updatable here; only the ledger moves it.
type UpdateSavingsFundRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,max=7,hex_color"`
}

// DeleteSavingsFundRequest represents the request payload for deleting a fund
type DeleteSavingsFundRequest struct {
	ID uint `json:"id" binding:"required"`
}

// GetUserFunds lists the user's savings funds, newest first
// @Summary     List savings funds
// @Description Get all savings funds of the authenticated user, newest first
// @Tags        savings-funds
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "List of savings funds"
// @Failure     401 {object} map[string]interface{} "Unauthorized"
// @Router      /savings-funds [get]
func (h *SavingsFundHandler) GetUserFunds(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	funds, err := h.fundService.GetUserFunds(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data := make([]gin.H, 0, len(funds))
	for _, fund := range funds {
		data = append(data, gin.H{
			"id":          fund.ID,
			"name":        fund.Name,
			"description": fund.Description,
			"color":       fund.Color,
			"balance":     fund.Balance,
			"created_at":  fund.CreatedAt,
		})
	}

	respondSuccess(c, http.StatusOK, "", data)
}

// CreateFund creates a new savings fund with balance 0
// @Summary     Create a savings fund
// @Description Create a new savings fund; the balance starts at zero
// @Tags        savings-funds
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSavingsFundRequest true "Fund details"
// @Success     201 {object} map[string]interface{} "Fund created"
// @Failure     422 {object} map[string]interface{} "Validation error or duplicate name"
// @Router      /savings-funds [post]
func (h *SavingsFundHandler) CreateFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSavingsFundRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.CreateFund(userID, req.Name, req.Description, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Caja de ahorro creada exitosamente", gin.H{
		"id":          fund.ID,
		"name":        fund.Name,
		"description": fund.Description,
		"color":       fund.Color,
		"balance":     fund.Balance,
		"created_at":  fund.CreatedAt,
	})
}

// UpdateFund partially updates a fund's metadata
// @Summary     Update a savings fund
// @Description Update the name, description and/or color of a fund
// @Tags        savings-funds
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSavingsFundRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Fund updated"
// @Failure     404 {object} map[string]interface{} "Not found or not owned"
// @Failure     422 {object} map[string]interface{} "Validation error or duplicate name"
// @Router      /savings-funds/update [post]
func (h *SavingsFundHandler) UpdateFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSavingsFundRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.UpdateFund(userID, req.ID, services.FundUpdateFields{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Fondo de ahorro actualizado exitosamente", gin.H{
		"id":          fund.ID,
		"name":        fund.Name,
		"description": fund.Description,
		"color":       fund.Color,
		"balance":     fund.Balance,
		"updated_at":  fund.UpdatedAt,
	})
}

// DeleteFund deletes a fund with zero balance
// @Summary     Delete a savings fund
// @Description Delete a fund; refused unless the balance is exactly zero
// @Tags        savings-funds
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteSavingsFundRequest true "Fund id"
// @Success     200 {object} map[string]interface{} "Fund deleted"
// @Failure     404 {object} map[string]interface{} "Not found or not owned"
// @Failure     422 {object} map[string]interface{} "Fund still has balance"
// @Router      /savings-funds/delete [post]
func (h *SavingsFundHandler) DeleteFund(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DeleteSavingsFundRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.fundService.DeleteFund(userID, req.ID); err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Fondo de ahorro eliminado exitosamente", nil)
}
