package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hucha/internal/errors"
	"hucha/internal/models"
)

// savingsFundService handles savings-fund business logic. Balance changes
// are out of its reach: metadata edits never touch the balance column.
type savingsFundService struct {
	db *gorm.DB
}

// NewSavingsFundService creates a new SavingsFundServicer.
func NewSavingsFundService(db *gorm.DB) SavingsFundServicer {
	return &savingsFundService{db: db}
}

// CreateFund creates a new savings fund with balance 0.
func (s *savingsFundService) CreateFund(userID uint, name, description, color string) (*models.SavingsFund, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "El nombre del fondo es obligatorio")
	}

	taken, err := s.nameTaken(userID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateFund
	}

	fund := &models.SavingsFund{
		UserID:      userID,
		Name:        name,
		Description: description,
		Color:       color,
		Balance:     0,
	}

	if err := s.db.Create(fund).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return fund, nil
}

// GetUserFunds retrieves the user's savings funds, newest first.
func (s *savingsFundService) GetUserFunds(userID uint) ([]models.SavingsFund, error) {
	var funds []models.SavingsFund
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&funds).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return funds, nil
}

// GetFundByID retrieves a fund by ID for a specific user. Missing and
// not-owned collapse into the same not-found error.
func (s *savingsFundService) GetFundByID(userID, fundID uint) (*models.SavingsFund, error) {
	var fund models.SavingsFund
	if err := s.db.Where("id = ? AND user_id = ?", fundID, userID).First(&fund).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &fund, nil
}

// UpdateFund applies a partial update of name/description/color.
func (s *savingsFundService) UpdateFund(userID, fundID uint, fields FundUpdateFields) (*models.SavingsFund, error) {
	fund, err := s.GetFundByID(userID, fundID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != fund.Name {
		taken, err := s.nameTaken(userID, *fields.Name, fund.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrDuplicateFund
		}
		updates["name"] = *fields.Name
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Color != nil {
		updates["color"] = *fields.Color
	}

	if len(updates) > 0 {
		if err := s.db.Model(fund).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return fund, nil
}

// DeleteFund hard-deletes a fund and its ledger entries. Deletion is refused
// while the balance is not exactly zero; once the fund is removable its
// entries are exclusively owned and go with it, atomically.
func (s *savingsFundService) DeleteFund(userID, fundID uint) error {
	fund, err := s.GetFundByID(userID, fundID)
	if err != nil {
		return err
	}

	if fund.Balance != 0 {
		return apperrors.ErrFundHasBalance
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("savings_fund_id = ?", fund.ID).
			Delete(&models.SavingsTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(fund).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// nameTaken reports whether another fund of the owner already uses the name,
// excluding excludeID when non-zero.
func (s *savingsFundService) nameTaken(userID uint, name string, excludeID uint) (bool, error) {
	q := s.db.Model(&models.SavingsFund{}).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}
