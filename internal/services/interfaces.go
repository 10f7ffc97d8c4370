package services

import (
	"time"

	"hucha/internal/models"
	"hucha/internal/money"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name, color string) (*models.Category, error)
	GetUserCategories(userID uint) ([]models.Category, error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, fields CategoryUpdateFields) (*models.Category, error)
	DeleteCategory(userID, categoryID uint) error
}

// CategoryUpdateFields holds the optional fields of a partial category update.
// Nil means "leave unchanged".
type CategoryUpdateFields struct {
	Name  *string
	Color *string
}

// SavingsFundServicer defines the contract for savings-fund business logic.
type SavingsFundServicer interface {
	CreateFund(userID uint, name, description, color string) (*models.SavingsFund, error)
	GetUserFunds(userID uint) ([]models.SavingsFund, error)
	GetFundByID(userID, fundID uint) (*models.SavingsFund, error)
	UpdateFund(userID, fundID uint, fields FundUpdateFields) (*models.SavingsFund, error)
	DeleteFund(userID, fundID uint) error
}

// FundUpdateFields holds the optional fields of a partial fund update.
// The balance is deliberately absent: it is only ever touched by the ledger.
type FundUpdateFields struct {
	Name        *string
	Description *string
	Color       *string
}

// TransactionServicer defines the contract for general transaction business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, txType models.TransactionType, amount money.Amount, category, description string, date time.Time, savingsFundID *uint) (*models.Transaction, error)
	GetUserTransactions(userID uint) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// TransactionUpdateFields holds the optional fields of a partial transaction update.
type TransactionUpdateFields struct {
	Type          *models.TransactionType
	Amount        *money.Amount
	Category      *string
	Description   *string
	Date          *time.Time
	SavingsFundID *uint
}

// SavingsTransactionServicer defines the contract for the savings ledger.
// Apply is the only way a ledger entry comes into existence and the only
// code path that mutates a fund's balance.
type SavingsTransactionServicer interface {
	Apply(userID, fundID uint, entryType models.SavingsTransactionType, amount money.Amount, description string, date time.Time) (*models.SavingsTransaction, *models.SavingsFund, error)
	GetUserSavingsTransactions(userID uint) ([]models.SavingsTransaction, error)
}
