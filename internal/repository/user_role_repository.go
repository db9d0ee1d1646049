package repository

import (
	"errors"
	"trade_manager/internal/models"

	"gorm.io/gorm"
)

type UserRoleRepository interface {
	Create(link *models.UserRole) error
	// GetByUserID returns the first role link of the user, nil when the
	// user has none.
	GetByUserID(userID uint) (*models.UserRole, error)
	DeleteByUserID(userID uint) error
	WithTx(tx *gorm.DB) UserRoleRepository
}

type userRoleRepository struct {
	db *gorm.DB
}

func NewUserRoleRepository(db *gorm.DB) UserRoleRepository {
	return &userRoleRepository{db: db}
}

func (r *userRoleRepository) WithTx(tx *gorm.DB) UserRoleRepository {
	return &userRoleRepository{db: tx}
}

func (r *userRoleRepository) Create(link *models.UserRole) error {
	return r.db.Create(link).Error
}

func (r *userRoleRepository) GetByUserID(userID uint) (*models.UserRole, error) {
	var link models.UserRole
	err := r.db.Where("user_id = ?", userID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *userRoleRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error
}
