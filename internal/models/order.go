package models

import "time"

type OrderStatus string

const (
	OrderCreated          OrderStatus = "created"
	OrderAwaitingPayment  OrderStatus = "awaiting_payment"
	OrderProcessing       OrderStatus = "processing"
	OrderAwaitingDelivery OrderStatus = "awaiting_delivery"
	OrderCompleted        OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderCreated, OrderAwaitingPayment, OrderProcessing, OrderAwaitingDelivery, OrderCompleted:
		return true
	}
	return false
}

type ClientOrder struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	ClientID  uint        `json:"client_id" gorm:"not null;index"`
	OrderDate time.Time   `json:"order_date"`
	Status    OrderStatus `json:"status" gorm:"size:20;not null"`
}

func (ClientOrder) TableName() string { return "client_orders" }

// OrderItem snapshots the price at creation time: Price is product price
// times quantity and is recomputed only when the quantity is edited. The
// schema allows several items per order but every flow works with the
// first one.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
