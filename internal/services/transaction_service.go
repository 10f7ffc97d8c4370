package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "hucha/internal/errors"
	"hucha/internal/models"
	"hucha/internal/money"
)

// transactionService handles general income/expense transactions. These
// records are independent of fund balances: the optional savings_fund_id is
// an informational link only.
type transactionService struct {
	db          *gorm.DB
	fundService SavingsFundServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, fundService SavingsFundServicer) TransactionServicer {
	return &transactionService{
		db:          db,
		fundService: fundService,
	}
}

// CreateTransaction creates a new transaction for a user. When a savings
// fund is referenced, existence alone is not enough: ownership is re-checked
// so that a fund id belonging to another user reads as not-found.
func (s *transactionService) CreateTransaction(
	userID uint,
	txType models.TransactionType,
	amount money.Amount,
	category string,
	description string,
	date time.Time,
	savingsFundID *uint,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "El monto debe ser mayor que cero")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "La categoría es obligatoria")
	}
	if date.IsZero() {
		date = time.Now()
	}

	if savingsFundID != nil {
		if _, err := s.fundService.GetFundByID(userID, *savingsFundID); err != nil {
			return nil, err
		}
	}

	transaction := &models.Transaction{
		UserID:        userID,
		Type:          txType,
		Amount:        amount,
		Category:      category,
		Description:   description,
		Date:          date,
		SavingsFundID: savingsFundID,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves the user's transactions, most recent date
// first, ties broken by creation time.
func (s *transactionService) GetUserTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update. A new fund reference goes
// through the same ownership check as on create.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if fields.SavingsFundID != nil {
		if _, err := s.fundService.GetFundByID(userID, *fields.SavingsFundID); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}
	if fields.Amount != nil {
		if *fields.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "El monto debe ser mayor que cero")
		}
		updates["amount"] = *fields.Amount
	}
	if fields.Category != nil {
		updates["category"] = *fields.Category
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Date != nil {
		updates["date"] = *fields.Date
	}
	if fields.SavingsFundID != nil {
		updates["savings_fund_id"] = *fields.SavingsFundID
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// DeleteTransaction hard-deletes a transaction. No cascades, no balance
// effect.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
