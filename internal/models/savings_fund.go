package models

import "hucha/internal/money"

// SavingsFund is a named bucket holding a user's saved money. The balance
// column is a cached aggregate of the fund's savings transactions and is
// only ever mutated inside the ledger's atomic apply; it never goes
// negative. Funds are created with balance 0 and can only be deleted once
// the balance is back to 0.
type SavingsFund struct {
	Base
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	Name        string       `gorm:"size:255;not null" json:"name"`
	Description string       `json:"description"`
	Color       string       `gorm:"size:7;not null" json:"color"`
	Balance     money.Amount `gorm:"type:bigint;not null;default:0" json:"balance"`

	SavingsTransactions []SavingsTransaction `gorm:"foreignKey:SavingsFundID" json:"savings_transactions,omitempty"`
}
