package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"trade_manager/internal/migrations"
	"trade_manager/internal/models"
	"trade_manager/internal/redis"
	"trade_manager/internal/repository"
	"trade_manager/internal/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbCounter int64

// setupDB opens a fresh in-memory database, migrated and seeded with the
// default roles and admin user. Each test gets its own named memory DB so
// parallel tests cannot see each other's rows.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.RunMigrations(db, zap.NewNop()))
	return db
}

// fakeSessionStore keeps sessions in a map; TTL is ignored.
type fakeSessionStore struct {
	sessions map[string]*redis.SessionData
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*redis.SessionData)}
}

func (f *fakeSessionStore) SetSession(token string, data *redis.SessionData, _ time.Duration) error {
	f.sessions[token] = data
	return nil
}

func (f *fakeSessionStore) GetSession(token string) (*redis.SessionData, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, redis.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionStore) DeleteSession(token string) error {
	delete(f.sessions, token)
	return nil
}

type env struct {
	db       *gorm.DB
	store    *fakeSessionStore
	auth     services.AuthService
	users    services.UserService
	clients  services.ClientService
	products services.ProductService
	orders   services.OrderService
	payments services.PaymentService
	reports  services.ReportService

	userRepo     repository.UserRepository
	userRoleRepo repository.UserRoleRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := setupDB(t)
	logger := zap.NewNop()
	store := newFakeSessionStore()

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	return &env{
		db:       db,
		store:    store,
		auth:     services.NewAuthService(userRepo, userRoleRepo, roleRepo, store, time.Hour, logger),
		users:    services.NewUserService(db, userRepo, roleRepo, userRoleRepo, bcrypt.MinCost, logger),
		clients:  services.NewClientService(db, clientRepo, logger),
		products: services.NewProductService(productRepo),
		orders:   services.NewOrderService(db, orderRepo, orderItemRepo, productRepo, clientRepo, logger),
		payments: services.NewPaymentService(db, paymentRepo, orderRepo, logger),
		reports:  services.NewReportService(clientRepo, orderRepo, t.TempDir(), logger),

		userRepo:     userRepo,
		userRoleRepo: userRoleRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

func (e *env) createProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	t.Helper()
	product, err := e.products.CreateProduct(name, "", price, stock)
	require.NoError(t, err)
	return product
}

func (e *env) createIndividual(t *testing.T, email, first, last string) *services.ClientDetails {
	t.Helper()
	details, err := e.clients.CreateClient(services.ClientInput{
		Type:       models.ClientIndividual,
		Email:      email,
		Phone:      "+79991234567",
		Individual: &services.IndividualFields{FirstName: first, LastName: last},
	})
	require.NoError(t, err)
	return details
}

func (e *env) productStock(t *testing.T, id uint) int {
	t.Helper()
	product, err := e.productRepo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, product)
	return product.StockQuantity
}
