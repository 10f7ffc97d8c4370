package models

import (
	"time"

	"hucha/internal/money"
)

// SavingsTransactionType represents the type of a ledger entry.
type SavingsTransactionType string

const (
	SavingsTransactionTypeDeposit    SavingsTransactionType = "deposit"
	SavingsTransactionTypeWithdrawal SavingsTransactionType = "withdrawal"
)

// SavingsTransaction is an immutable ledger entry: a deposit or withdrawal
// against exactly one savings fund. Entries are created only through the
// ledger's atomic apply, never updated, and are deleted only by the cascade
// when their fund is removed. The fund's balance must equal the signed sum
// of its entries at every commit point.
type SavingsTransaction struct {
	Base
	UserID        uint                   `gorm:"not null;index" json:"user_id"`
	SavingsFundID uint                   `gorm:"not null;index" json:"savings_fund_id"`
	Type          SavingsTransactionType `gorm:"size:10;not null" json:"type"`
	Amount        money.Amount           `gorm:"type:bigint;not null" json:"amount"`
	Description   string                 `json:"description"`
	Date          time.Time              `gorm:"not null" json:"date"`

	SavingsFund SavingsFund `gorm:"foreignKey:SavingsFundID;constraint:OnDelete:CASCADE" json:"-"`
}
