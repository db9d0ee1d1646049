package main

import (
	"trade_manager/internal/config"
	"trade_manager/internal/database"
	"trade_manager/internal/migrations"
	"trade_manager/internal/models"
	"trade_manager/internal/repository"
	"trade_manager/internal/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Rebuilds the schema from scratch and loads demo data. Destructive: meant
// for a fresh development database only.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	logger.Info("dropping existing tables")
	err = db.Migrator().DropTable(
		&models.UserRole{},
		&models.User{},
		&models.Role{},
		&models.Payment{},
		&models.OrderItem{},
		&models.ClientOrder{},
		&models.IndividualClient{},
		&models.LegalEntityClient{},
		&models.Client{},
		&models.Product{},
	)
	if err != nil {
		logger.Warn("error dropping tables", zap.Error(err))
	}

	if err := migrations.RunMigrations(db, logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := seedDemoData(db, logger); err != nil {
		logger.Fatal("failed to seed demo data", zap.Error(err))
	}

	logger.Info("database initialized")
}

func seedDemoData(db *gorm.DB, logger *zap.Logger) error {
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)

	userService := services.NewUserService(db, userRepo, roleRepo, userRoleRepo, 0, logger)
	clientService := services.NewClientService(db, clientRepo, logger)

	demoUsers := []struct{ username, password, role string }{
		{"sales", "sales123", models.RoleSalesManager},
		{"worker", "worker123", models.RoleProductionWorker},
		{"accountant", "acc123", models.RoleAccountant},
		{"director", "dir123", models.RoleDirector},
	}
	for _, u := range demoUsers {
		if _, err := userService.CreateUser(u.username, u.password, u.role); err != nil {
			return err
		}
	}

	products := []models.Product{
		{Name: "Мёд липовый", Description: "Натуральный липовый мёд, 1 кг", Price: 500.0, StockQuantity: 100},
		{Name: "Мёд гречишный", Description: "Натуральный гречишный мёд, 1 кг", Price: 450.0, StockQuantity: 80},
		{Name: "Прополис", Description: "Прополис очищенный, 50 г", Price: 300.0, StockQuantity: 40},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			return err
		}
	}

	_, err := clientService.CreateClient(services.ClientInput{
		Type:  models.ClientIndividual,
		Email: "ivan.petrov@example.com",
		Phone: "+79991234567",
		Individual: &services.IndividualFields{
			FirstName:  "Иван",
			LastName:   "Петров",
			MiddleName: "Сергеевич",
		},
	})
	if err != nil {
		return err
	}

	_, err = clientService.CreateClient(services.ClientInput{
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
	return err
}
