package repository

import (
	"errors"
	"trade_manager/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	Create(item *models.OrderItem) error
	// GetFirstByOrderID returns the order's line item. Orders carry a
	// single item by convention; the first row wins.
	GetFirstByOrderID(orderID uint) (*models.OrderItem, error)
	Update(item *models.OrderItem) error
	WithTx(tx *gorm.DB) OrderItemRepository
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) WithTx(tx *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: tx}
}

func (r *orderItemRepository) Create(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *orderItemRepository) GetFirstByOrderID(orderID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) Update(item *models.OrderItem) error {
	return r.db.Save(item).Error
}
