package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hucha/internal/errors"
	"hucha/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category. Names are unique per owner,
// case-sensitive exact match.
func (s *categoryService) CreateCategory(userID uint, name, color string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "El nombre de la categoría es obligatorio")
	}

	taken, err := s.nameTaken(userID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Color:  color,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves the user's categories ordered by name.
func (s *categoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID for a specific user. A missing
// row and a row owned by someone else yield the same not-found error.
func (s *categoryService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory applies a partial update. Renaming to a name already used
// by another of the owner's categories is refused; renaming to the current
// name is a no-op, not a conflict.
func (s *categoryService) UpdateCategory(userID, categoryID uint, fields CategoryUpdateFields) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != category.Name {
		taken, err := s.nameTaken(userID, *fields.Name, category.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrDuplicateCategory
		}
		updates["name"] = *fields.Name
	}
	if fields.Color != nil {
		updates["color"] = *fields.Color
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return category, nil
}

// DeleteCategory hard-deletes a category. Deletion is refused while any of
// the owner's transactions still carries the category's name: the link is by
// label, so removing the row would orphan that label's canonical color.
func (s *categoryService) DeleteCategory(userID, categoryID uint) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}

	var inUse int64
	if err := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND category = ?", userID, category.Name).
		Count(&inUse).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if inUse > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// nameTaken reports whether another category of the owner already uses the
// name, excluding excludeID when non-zero.
func (s *categoryService) nameTaken(userID uint, name string, excludeID uint) (bool, error) {
	q := s.db.Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}
