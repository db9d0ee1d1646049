package services_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"trade_manager/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireReportFile(t *testing.T, path, entity string) {
	t.Helper()

	pattern := regexp.MustCompile(`^` + entity + `_report_\d{8}_\d{6}\.pdf$`)
	assert.Regexp(t, pattern, filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateClientsReport(t *testing.T) {
	e := newEnv(t)

	e.createIndividual(t, "ivan@example.com", "Иван", "Петров")
	_, err := e.clients.CreateClient(services.ClientInput{
		Type:        "legal_entity",
		Email:       "office@romashka.ru",
		LegalEntity: &services.LegalEntityFields{CompanyName: "ООО Ромашка", INN: "7701234567"},
	})
	require.NoError(t, err)

	path, err := e.reports.GenerateClientsReport()
	require.NoError(t, err)
	requireReportFile(t, path, "clients")
}

func TestGenerateOrdersReport(t *testing.T) {
	e := newEnv(t)

	client := e.createIndividual(t, "ivan@example.com", "Иван", "Петров")
	product := e.createProduct(t, "Мёд липовый", 500.0, 100)
	_, err := e.orders.CreateOrder(client.Client.ID, product.ID, "3")
	require.NoError(t, err)

	path, err := e.reports.GenerateOrdersReport(nil)
	require.NoError(t, err)
	requireReportFile(t, path, "orders")

	scoped, err := e.reports.GenerateOrdersReport(&client.Client.ID)
	require.NoError(t, err)
	requireReportFile(t, scoped, "orders")
}

func TestGenerateReportsWithEmptyTables(t *testing.T) {
	e := newEnv(t)

	path, err := e.reports.GenerateClientsReport()
	require.NoError(t, err)
	requireReportFile(t, path, "clients")

	path, err = e.reports.GenerateOrdersReport(nil)
	require.NoError(t, err)
	requireReportFile(t, path, "orders")
}
