package models

// User represents the user model in the database. A user owns every other
// entity in the system and is the only actor authorized to touch them.
type User struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Categories          []Category           `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	SavingsFunds        []SavingsFund        `gorm:"foreignKey:UserID" json:"savings_funds,omitempty"`
	Transactions        []Transaction        `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	SavingsTransactions []SavingsTransaction `gorm:"foreignKey:UserID" json:"savings_transactions,omitempty"`
}
