package models

// Category is a named, colored label scoped to one user. Names are unique
// per owner (case-sensitive). Transactions reference categories by name,
// not by id: renaming a category does not rewrite existing transactions,
// their category text is a snapshot of the label at creation time.
type Category struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Color  string `gorm:"size:7;not null" json:"color"`
}
