package services

import (
	"time"
	"trade_manager/internal/models"
	"trade_manager/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService interface {
	// RecordPayment attaches the single payment an order may have and
	// moves a freshly created or awaiting_payment order into processing.
	RecordPayment(orderID uint, amount float64, method models.PaymentMethod) (*models.Payment, error)
	ListPayments() ([]models.Payment, error)
}

type paymentService struct {
	db          *gorm.DB
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	logger      *zap.Logger
}

func NewPaymentService(
	db *gorm.DB,
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	logger *zap.Logger,
) PaymentService {
	return &paymentService{db: db, paymentRepo: paymentRepo, orderRepo: orderRepo, logger: logger}
}

func (s *paymentService) RecordPayment(orderID uint, amount float64, method models.PaymentMethod) (*models.Payment, error) {
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	payment := &models.Payment{
		OrderID:       orderID,
		Amount:        amount,
		PaymentDate:   time.Now(),
		PaymentMethod: method,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		paymentRepo := s.paymentRepo.WithTx(tx)
		existing, err := paymentRepo.GetByOrderID(orderID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicatePayment
		}

		if err := paymentRepo.Create(payment); err != nil {
			return err
		}

		if order.Status == models.OrderCreated || order.Status == models.OrderAwaitingPayment {
			order.Status = models.OrderProcessing
			return orderRepo.Update(order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.Uint("order_id", orderID),
		zap.Float64("amount", amount),
		zap.String("method", string(method)))
	return payment, nil
}

func (s *paymentService) ListPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}
