package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "hucha/internal/errors"
	"hucha/internal/models"
	"hucha/internal/money"
)

// savingsTransactionService is the ledger for savings funds. Apply is the
// single write path: a ledger entry and its balance effect commit together
// or not at all, so the fund's balance always equals the signed sum of its
// entries.
type savingsTransactionService struct {
	db          *gorm.DB
	fundService SavingsFundServicer
}

// NewSavingsTransactionService creates a new SavingsTransactionServicer.
func NewSavingsTransactionService(db *gorm.DB, fundService SavingsFundServicer) SavingsTransactionServicer {
	return &savingsTransactionService{
		db:          db,
		fundService: fundService,
	}
}

// Apply records a deposit or withdrawal against a fund and updates the
// fund's balance in one atomic unit. Preconditions run first: the amount
// must be positive, the fund must belong to the acting user, and a
// withdrawal must not exceed the current balance. Inside the database
// transaction the fund row is re-read under a row lock and the sufficiency
// check repeated, so two concurrent withdrawals against the same fund
// serialize instead of both passing the check on a stale balance.
func (s *savingsTransactionService) Apply(
	userID, fundID uint,
	entryType models.SavingsTransactionType,
	amount money.Amount,
	description string,
	date time.Time,
) (*models.SavingsTransaction, *models.SavingsFund, error) {
	if amount <= 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrValidation, "El monto debe ser mayor que cero")
	}
	if date.IsZero() {
		date = time.Now()
	}

	fund, err := s.fundService.GetFundByID(userID, fundID)
	if err != nil {
		return nil, nil, err
	}
	if entryType == models.SavingsTransactionTypeWithdrawal && fund.Balance < amount {
		return nil, nil, apperrors.ErrInsufficientFunds
	}

	var entry *models.SavingsTransaction
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var locked models.SavingsFund
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", fundID, userID).
			First(&locked).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFundNotFound
			}
			return apperrors.Wrap(apperrors.ErrLedgerApply, err)
		}

		// The balance may have moved between the precondition check and
		// taking the lock; the sufficiency check must hold under the lock.
		if entryType == models.SavingsTransactionTypeWithdrawal && locked.Balance < amount {
			return apperrors.ErrInsufficientFunds
		}

		entry = &models.SavingsTransaction{
			UserID:        userID,
			SavingsFundID: locked.ID,
			Type:          entryType,
			Amount:        amount,
			Description:   description,
			Date:          date,
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrLedgerApply, err)
		}

		switch entryType {
		case models.SavingsTransactionTypeDeposit:
			locked.Balance += amount
		case models.SavingsTransactionTypeWithdrawal:
			locked.Balance -= amount
			// Unconditional floor. Unreachable given the checks above, but
			// the invariant is balance >= 0 at every commit point.
			if locked.Balance < 0 {
				locked.Balance = 0
			}
		}

		if err := tx.Model(&locked).Update("balance", locked.Balance).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrLedgerApply, err)
		}

		*fund = locked
		return nil
	})
	if err != nil {
		// A commit failure comes back as a bare driver error; the caller
		// only ever sees the generic ledger failure.
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			err = apperrors.Wrap(apperrors.ErrLedgerApply, err)
		}
		return nil, nil, err
	}

	return entry, fund, nil
}

// GetUserSavingsTransactions retrieves the user's ledger entries with their
// fund preloaded, most recent date first, ties broken by creation time.
func (s *savingsTransactionService) GetUserSavingsTransactions(userID uint) ([]models.SavingsTransaction, error) {
	var entries []models.SavingsTransaction
	if err := s.db.Preload("SavingsFund").
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}
