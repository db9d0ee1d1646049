package repository

import (
	"errors"
	"trade_manager/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.ClientOrder) error
	GetByID(id uint) (*models.ClientOrder, error)
	GetByClientID(clientID uint) ([]models.ClientOrder, error)
	GetAll() ([]models.ClientOrder, error)
	Update(order *models.ClientOrder) error
	WithTx(tx *gorm.DB) OrderRepository
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.ClientOrder) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.ClientOrder, error) {
	var order models.ClientOrder
	err := r.db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByClientID(clientID uint) ([]models.ClientOrder, error) {
	var orders []models.ClientOrder
	err := r.db.Where("client_id = ?", clientID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.ClientOrder, error) {
	var orders []models.ClientOrder
	err := r.db.Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.ClientOrder) error {
	return r.db.Save(order).Error
}
