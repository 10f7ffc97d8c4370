package models

import (
	"time"

	"hucha/internal/money"
)

// TransactionType represents the type of a general transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction is a general income/expense record scoped to one user.
// Category is a free-text label, not a foreign key. SavingsFundID is a weak
// reference: existence and ownership are checked on write, but the link has
// no balance effect and is nulled out when the fund disappears.
type Transaction struct {
	Base
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	Type          TransactionType `gorm:"size:10;not null" json:"type"`
	Amount        money.Amount    `gorm:"type:bigint;not null" json:"amount"`
	Category      string          `gorm:"size:255;not null" json:"category"`
	Description   string          `json:"description"`
	Date          time.Time       `gorm:"not null" json:"date"`
	SavingsFundID *uint           `json:"savings_fund_id,omitempty"`

	SavingsFund *SavingsFund `gorm:"foreignKey:SavingsFundID;constraint:OnDelete:SET NULL" json:"savings_fund,omitempty"`
}
