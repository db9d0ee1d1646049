package services

import (
	"strconv"
	"strings"
	"time"
	"trade_manager/internal/models"
	"trade_manager/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderDetails is an order with its line item attached.
type OrderDetails struct {
	Order models.ClientOrder `json:"order"`
	Item  *models.OrderItem  `json:"item,omitempty"`
}

type OrderService interface {
	// CreateOrder takes the quantity as the raw form string, like the
	// dialog it replaces: non-numeric or non-positive input is rejected
	// before anything is written.
	CreateOrder(clientID, productID uint, quantity string) (*OrderDetails, error)
	// EditOrder applies role-gated changes: quantity for
	// sales_manager/director, status for production_worker/director.
	// Empty newStatus / newQuantity leave the field untouched.
	EditOrder(orderID uint, role string, newStatus models.OrderStatus, newQuantity string) error
	ListOrders(clientID *uint) ([]models.ClientOrder, error)
	GetOrder(orderID uint) (*OrderDetails, error)
}

type orderService struct {
	db            *gorm.DB
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	productRepo   repository.ProductRepository
	clientRepo    repository.ClientRepository
	logger        *zap.Logger
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		clientRepo:    clientRepo,
		logger:        logger,
	}
}

func parseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		return 0, ErrInvalidQuantity
	}
	return qty, nil
}

func (s *orderService) CreateOrder(clientID, productID uint, quantity string) (*OrderDetails, error) {
	qty, err := parseQuantity(quantity)
	if err != nil {
		return nil, err
	}

	var details *OrderDetails
	err = s.db.Transaction(func(tx *gorm.DB) error {
		client, err := s.clientRepo.WithTx(tx).GetByID(clientID)
		if err != nil {
			return err
		}
		if client == nil || client.IsDeleted {
			return ErrClientNotFound
		}

		productRepo := s.productRepo.WithTx(tx)
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if product.StockQuantity < qty {
			return ErrInsufficientStock
		}

		order := &models.ClientOrder{
			ClientID:  clientID,
			OrderDate: time.Now(),
			Status:    models.OrderCreated,
		}
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}

		item := &models.OrderItem{
			OrderID:   order.ID,
			ProductID: productID,
			Quantity:  qty,
			Price:     product.Price * float64(qty),
		}
		if err := s.orderItemRepo.WithTx(tx).Create(item); err != nil {
			return err
		}

		product.StockQuantity -= qty
		if err := productRepo.Update(product); err != nil {
			return err
		}

		details = &OrderDetails{Order: *order, Item: item}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("order_id", details.Order.ID),
		zap.Uint("client_id", clientID),
		zap.Int("quantity", qty))
	return details, nil
}

func (s *orderService) EditOrder(orderID uint, role string, newStatus models.OrderStatus, newQuantity string) error {
	canQuantity := Can(role, ActionEditOrderQuantity)
	canStatus := Can(role, ActionEditOrderStatus)
	if !canQuantity && !canStatus {
		return ErrForbidden
	}
	if newQuantity != "" && !canQuantity {
		return ErrForbidden
	}
	if newStatus != "" && !canStatus {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		if newQuantity != "" {
			qty, err := parseQuantity(newQuantity)
			if err != nil {
				return err
			}

			itemRepo := s.orderItemRepo.WithTx(tx)
			item, err := itemRepo.GetFirstByOrderID(orderID)
			if err != nil {
				return err
			}
			if item == nil {
				return ErrOrderNotFound
			}

			productRepo := s.productRepo.WithTx(tx)
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrProductNotFound
			}

			diff := qty - item.Quantity
			if diff > 0 && product.StockQuantity < diff {
				return ErrInsufficientStock
			}

			item.Quantity = qty
			item.Price = product.Price * float64(qty)
			product.StockQuantity -= diff
			if err := itemRepo.Update(item); err != nil {
				return err
			}
			if err := productRepo.Update(product); err != nil {
				return err
			}
		}

		if newStatus != "" {
			if !newStatus.Valid() {
				return ErrInvalidStatus
			}
			order.Status = newStatus
			if err := orderRepo.Update(order); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *orderService) ListOrders(clientID *uint) ([]models.ClientOrder, error) {
	if clientID != nil {
		return s.orderRepo.GetByClientID(*clientID)
	}
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrder(orderID uint) (*OrderDetails, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	item, err := s.orderItemRepo.GetFirstByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetails{Order: *order, Item: item}, nil
}
