package services_test

import (
	"testing"

	"trade_manager/internal/models"
	"trade_manager/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *env) createOrder(t *testing.T) *services.OrderDetails {
	t.Helper()
	client := e.createIndividual(t, "buyer@example.com", "Иван", "Петров")
	product := e.createProduct(t, "Мёд липовый", 500.0, 100)
	order, err := e.orders.CreateOrder(client.Client.ID, product.ID, "2")
	require.NoError(t, err)
	return order
}

func TestRecordPaymentAdvancesOrder(t *testing.T) {
	e := newEnv(t)
	order := e.createOrder(t)

	payment, err := e.payments.RecordPayment(order.Order.ID, 1000.0, models.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, order.Order.ID, payment.OrderID)

	got, err := e.orders.GetOrder(order.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderProcessing, got.Order.Status)

	payments, err := e.payments.ListPayments()
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.InDelta(t, 1000.0, payments[0].Amount, 0.001)
}

func TestRecordPaymentDuplicate(t *testing.T) {
	e := newEnv(t)
	order := e.createOrder(t)

	_, err := e.payments.RecordPayment(order.Order.ID, 1000.0, models.PaymentCash)
	require.NoError(t, err)

	_, err = e.payments.RecordPayment(order.Order.ID, 500.0, models.PaymentBankTransfer)
	assert.ErrorIs(t, err, services.ErrDuplicatePayment)
}

func TestRecordPaymentKeepsLaterStatus(t *testing.T) {
	e := newEnv(t)
	order := e.createOrder(t)

	err := e.orders.EditOrder(order.Order.ID, models.RoleDirector, models.OrderCompleted, "")
	require.NoError(t, err)

	_, err = e.payments.RecordPayment(order.Order.ID, 1000.0, models.PaymentBankTransfer)
	require.NoError(t, err)

	got, err := e.orders.GetOrder(order.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, got.Order.Status)
}

func TestRecordPaymentValidation(t *testing.T) {
	e := newEnv(t)
	order := e.createOrder(t)

	_, err := e.payments.RecordPayment(order.Order.ID, 1000.0, models.PaymentMethod("barter"))
	assert.ErrorIs(t, err, services.ErrInvalidPaymentMethod)

	_, err = e.payments.RecordPayment(order.Order.ID, 0, models.PaymentCash)
	assert.ErrorIs(t, err, services.ErrInvalidAmount)

	_, err = e.payments.RecordPayment(order.Order.ID, -5, models.PaymentCash)
	assert.ErrorIs(t, err, services.ErrInvalidAmount)
}

func TestRecordPaymentUnknownOrder(t *testing.T) {
	e := newEnv(t)

	_, err := e.payments.RecordPayment(9999, 100.0, models.PaymentCash)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}
