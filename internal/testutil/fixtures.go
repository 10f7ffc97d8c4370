package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hucha/internal/models"
	"hucha/internal/money"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Color:  "#ff5733",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestFund creates a savings fund with zero balance.
func CreateTestFund(t *testing.T, db *gorm.DB, userID uint) *models.SavingsFund {
	t.Helper()
	return CreateTestFundWithBalance(t, db, userID, 0)
}

// CreateTestFundWithBalance creates a savings fund with the given balance (in cents).
func CreateTestFundWithBalance(t *testing.T, db *gorm.DB, userID uint, balance money.Amount) *models.SavingsFund {
	t.Helper()

	fund := &models.SavingsFund{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Fund %d", nextID()),
		Color:   "#33c1ff",
		Balance: balance,
	}
	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test fund: %v", err)
	}
	return fund
}

// CreateTestTransaction creates an expense transaction with the given category name.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, category string, amount money.Amount) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Type:     models.TransactionTypeExpense,
		Amount:   amount,
		Category: category,
		Date:     time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestSavingsTransaction creates a ledger entry directly, bypassing the
// atomic apply. Only use this to seed list/read tests; it does not touch the
// fund's balance.
func CreateTestSavingsTransaction(t *testing.T, db *gorm.DB, userID, fundID uint, entryType models.SavingsTransactionType, amount money.Amount) *models.SavingsTransaction {
	t.Helper()

	entry := &models.SavingsTransaction{
		UserID:        userID,
		SavingsFundID: fundID,
		Type:          entryType,
		Amount:        amount,
		Date:          time.Now(),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test savings transaction: %v", err)
	}
	return entry
}
