package services_test

import (
	"testing"

	"trade_manager/internal/models"
	"trade_manager/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIndividualClientRoundTrip(t *testing.T) {
	e := newEnv(t)

	created := e.createIndividual(t, "ivan@example.com", "Иван", "Петров")

	got, err := e.clients.GetClient(created.Client.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClientIndividual, got.Client.ClientType)
	assert.Equal(t, "ivan@example.com", got.Client.Email)
	require.NotNil(t, got.Individual)
	assert.Equal(t, "Иван", got.Individual.FirstName)
	assert.Equal(t, "Петров", got.Individual.LastName)
	assert.Nil(t, got.LegalEntity)
}

func TestCreateLegalEntityClientRoundTrip(t *testing.T) {
	e := newEnv(t)

	created, err := e.clients.CreateClient(services.ClientInput{
		Type:  models.ClientLegalEntity,
		Email: "office@romashka.ru",
		Phone: "+74950000001",
		LegalEntity: &services.LegalEntityFields{
			CompanyName: "ООО Ромашка",
			INN:         "7701234567",
			KPP:         "770101001",
			OGRN:        "1027700000001",
		},
	})
	require.NoError(t, err)

	got, err := e.clients.GetClient(created.Client.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LegalEntity)
	assert.Equal(t, "ООО Ромашка", got.LegalEntity.CompanyName)
	assert.Equal(t, "7701234567", got.LegalEntity.INN)
	assert.Nil(t, got.Individual)
}

func TestCreateClientMissingEmail(t *testing.T) {
	e := newEnv(t)

	_, err := e.clients.CreateClient(services.ClientInput{
		Type:       models.ClientIndividual,
		Email:      "   ",
		Individual: &services.IndividualFields{FirstName: "Иван", LastName: "Петров"},
	})
	assert.ErrorIs(t, err, services.ErrMissingEmail)
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	e := newEnv(t)

	e.createIndividual(t, "dup@example.com", "Иван", "Петров")

	_, err := e.clients.CreateClient(services.ClientInput{
		Type:       models.ClientIndividual,
		Email:      "dup@example.com",
		Individual: &services.IndividualFields{FirstName: "Пётр", LastName: "Иванов"},
	})
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
}

func TestCreateClientDuplicateEmailOfDeletedClient(t *testing.T) {
	e := newEnv(t)

	created := e.createIndividual(t, "gone@example.com", "Иван", "Петров")
	require.NoError(t, e.clients.DeleteClient(created.Client.ID))

	_, err := e.clients.CreateClient(services.ClientInput{
		Type:       models.ClientIndividual,
		Email:      "gone@example.com",
		Individual: &services.IndividualFields{FirstName: "Пётр", LastName: "Иванов"},
	})
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
}

func TestCreateClientMissingExtensionFields(t *testing.T) {
	e := newEnv(t)

	_, err := e.clients.CreateClient(services.ClientInput{
		Type:       models.ClientIndividual,
		Email:      "a@example.com",
		Individual: &services.IndividualFields{FirstName: "Иван"},
	})
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, err = e.clients.CreateClient(services.ClientInput{
		Type:        models.ClientLegalEntity,
		Email:       "b@example.com",
		LegalEntity: &services.LegalEntityFields{CompanyName: "ООО Тест"},
	})
	assert.ErrorIs(t, err, services.ErrMissingFields)
}

func TestCreateClientInvalidType(t *testing.T) {
	e := newEnv(t)

	_, err := e.clients.CreateClient(services.ClientInput{
		Type:  models.ClientType("partnership"),
		Email: "c@example.com",
	})
	assert.ErrorIs(t, err, services.ErrInvalidClientType)
}

func TestEditClientPhoneOnlyKeepsNames(t *testing.T) {
	e := newEnv(t)

	created := e.createIndividual(t, "ivan@example.com", "Иван", "Петров")

	err := e.clients.EditClient(created.Client.ID, services.ClientInput{
		Email:      "ivan@example.com",
		Phone:      "+70000000000",
		Individual: &services.IndividualFields{FirstName: "Иван", LastName: "Петров"},
	})
	require.NoError(t, err)

	got, err := e.clients.GetClient(created.Client.ID)
	require.NoError(t, err)
	assert.Equal(t, "+70000000000", got.Client.Phone)
	assert.Equal(t, "Иван", got.Individual.FirstName)
	assert.Equal(t, "Петров", got.Individual.LastName)
}

func TestEditClientDuplicateEmailExcludesSelf(t *testing.T) {
	e := newEnv(t)

	created := e.createIndividual(t, "ivan@example.com", "Иван", "Петров")
	e.createIndividual(t, "other@example.com", "Пётр", "Иванов")

	// Keeping its own email is fine.
	err := e.clients.EditClient(created.Client.ID, services.ClientInput{
		Email:      "ivan@example.com",
		Individual: &services.IndividualFields{FirstName: "Иван", LastName: "Петров"},
	})
	assert.NoError(t, err)

	// Taking another client's email is not.
	err = e.clients.EditClient(created.Client.ID, services.ClientInput{
		Email:      "other@example.com",
		Individual: &services.IndividualFields{FirstName: "Иван", LastName: "Петров"},
	})
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
}

func TestDeleteClientHidesFromListingButKeepsRow(t *testing.T) {
	e := newEnv(t)

	created := e.createIndividual(t, "ivan@example.com", "Иван", "Петров")
	product := e.createProduct(t, "Мёд липовый", 500.0, 100)
	order, err := e.orders.CreateOrder(created.Client.ID, product.ID, "2")
	require.NoError(t, err)

	require.NoError(t, e.clients.DeleteClient(created.Client.ID))

	rows, err := e.clients.ListClients(nil)
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotEqual(t, created.Client.ID, row.Client.ID)
	}

	// The row itself and its orders stay reachable.
	got, err := e.clients.GetClient(created.Client.ID)
	require.NoError(t, err)
	assert.True(t, got.Client.IsDeleted)

	orders, err := e.orders.ListOrders(&created.Client.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.Order.ID, orders[0].ID)
}

func TestListClientsTypeFilter(t *testing.T) {
	e := newEnv(t)

	e.createIndividual(t, "ivan@example.com", "Иван", "Петров")
	_, err := e.clients.CreateClient(services.ClientInput{
		Type:        models.ClientLegalEntity,
		Email:       "office@romashka.ru",
		LegalEntity: &services.LegalEntityFields{CompanyName: "ООО Ромашка", INN: "7701234567"},
	})
	require.NoError(t, err)

	filter := models.ClientLegalEntity
	rows, err := e.clients.ListClients(&filter)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.ClientLegalEntity, rows[0].Client.ClientType)
}

func TestListClientsStableBetweenCalls(t *testing.T) {
	e := newEnv(t)

	e.createIndividual(t, "a@example.com", "Иван", "Петров")
	e.createIndividual(t, "b@example.com", "Пётр", "Иванов")

	first, err := e.clients.ListClients(nil)
	require.NoError(t, err)
	second, err := e.clients.ListClients(nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
